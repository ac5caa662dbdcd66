package geo

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DistrictRow is one row of the public states/districts dataset.
type DistrictRow struct {
	State    string `json:"State"`
	District string `json:"District"`
}

// Client fetches the public Indian states/districts reference data used to
// populate the Join-Us location dropdowns. Every call hits the remote
// endpoint; the dataset is small and rarely requested.
type Client struct {
	httpClient *resty.Client
	url        string
	logger     *zap.Logger
}

func NewClient(url string, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetTimeout(15 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{httpClient: httpClient, url: url, logger: logger}
}

func (c *Client) fetch() ([]DistrictRow, error) {
	var rows []DistrictRow
	resp, err := c.httpClient.R().
		SetResult(&rows).
		Get(c.url)
	if err != nil {
		c.logger.Error("geo data fetch failed", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch geo data: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("geo data endpoint returned error", zap.Int("status_code", resp.StatusCode()))
		return nil, fmt.Errorf("geo data endpoint error: status %d", resp.StatusCode())
	}
	return rows, nil
}

// States returns the sorted, de-duplicated state names.
func (c *Client) States() ([]string, error) {
	rows, err := c.fetch()
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, row := range rows {
		if row.State == "" {
			continue
		}
		if _, ok := seen[row.State]; ok {
			continue
		}
		seen[row.State] = struct{}{}
		out = append(out, row.State)
	}
	sort.Strings(out)
	return out, nil
}

// Districts returns the sorted district names for one state.
func (c *Client) Districts(state string) ([]string, error) {
	rows, err := c.fetch()
	if err != nil {
		return nil, err
	}

	out := make([]string, 0)
	for _, row := range rows {
		if row.State == state && row.District != "" {
			out = append(out, row.District)
		}
	}
	sort.Strings(out)
	return out, nil
}
