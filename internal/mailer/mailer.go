package mailer

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrNotConfigured signals that one or more dispatch settings are missing.
// Callers surface it to the admin instead of crashing; order state changes
// proceed regardless.
var ErrNotConfigured = errors.New("email dispatch is not configured")

// Sender dispatches templated notification emails.
type Sender interface {
	SendOrderStatus(confirmed bool, params map[string]string) error
}

// Client talks to an EmailJS-compatible HTTP API. Template selection is
// driven by the order outcome: one template for confirmations, another for
// rejections.
type Client struct {
	httpClient        *resty.Client
	serviceID         string
	confirmTemplateID string
	rejectTemplateID  string
	publicKey         string
	logger            *zap.Logger
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func NewClient(baseURL, serviceID, confirmTemplateID, rejectTemplateID, publicKey string, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:        httpClient,
		serviceID:         serviceID,
		confirmTemplateID: confirmTemplateID,
		rejectTemplateID:  rejectTemplateID,
		publicKey:         publicKey,
		logger:            logger,
	}
}

func (c *Client) configured() bool {
	return c.serviceID != "" && c.confirmTemplateID != "" && c.rejectTemplateID != "" && c.publicKey != ""
}

// SendOrderStatus sends the confirmation or rejection template with the
// given params. The caller treats failures as best-effort: the order status
// change is never rolled back on a send error.
func (c *Client) SendOrderStatus(confirmed bool, params map[string]string) error {
	if !c.configured() {
		return ErrNotConfigured
	}

	templateID := c.rejectTemplateID
	if confirmed {
		templateID = c.confirmTemplateID
	}

	body := sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     templateID,
		UserID:         c.publicKey,
		TemplateParams: params,
	}

	resp, err := c.httpClient.R().
		SetBody(body).
		Post("/api/v1.0/email/send")
	if err != nil {
		c.logger.Error("email dispatch failed",
			zap.String("template_id", templateID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to call email API: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("email API returned error",
			zap.String("template_id", templateID),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return fmt.Errorf("email API error: status %d", resp.StatusCode())
	}

	c.logger.Info("order status email sent",
		zap.String("template_id", templateID),
		zap.String("to", params["to_email"]),
	)
	return nil
}
