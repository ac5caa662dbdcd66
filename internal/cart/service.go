package cart

import (
	"math"
	"sort"

	"github.com/aquabluegroup/fishwaale-backend/internal/product"
)

// Cart is the enriched view returned to the client.
type Cart struct {
	Lines []Line  `json:"lines"`
	Total float64 `json:"total"`
}

type Service struct {
	repo     Repository
	products product.ServiceInterface
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

// Add adjusts a line's quantity by qty and returns the updated cart. The
// product must exist; zero qty just reads the current cart back.
func (s *Service) Add(userID, productID, qty int) (Cart, error) {
	if _, err := s.products.GetByID(productID); err != nil {
		return Cart{}, err
	}
	if qty == 0 {
		return s.Get(userID)
	}
	return s.enrich(s.repo.Add(userID, productID, qty))
}

func (s *Service) Get(userID int) (Cart, error) {
	return s.enrich(s.repo.Get(userID))
}

func (s *Service) Remove(userID, productID int) (Cart, error) {
	s.repo.Remove(userID, productID)
	return s.Get(userID)
}

func (s *Service) Clear(userID int) {
	s.repo.Clear(userID)
}

func (s *Service) enrich(quantities map[int]int) (Cart, error) {
	cart := Cart{Lines: make([]Line, 0, len(quantities))}
	for pid, qty := range quantities {
		p, err := s.products.GetByID(pid)
		if err != nil {
			// product was removed from the catalog after it entered the
			// cart; skip the stale line instead of failing the whole read
			continue
		}
		unit := p.FinalPrice()
		line := Line{
			ProductID: p.ID,
			Name:      p.Name,
			ImageURL:  p.ImageURL,
			UnitPrice: unit,
			Quantity:  qty,
			LineTotal: math.Round(unit*float64(qty)*100) / 100,
		}
		cart.Lines = append(cart.Lines, line)
		cart.Total += line.LineTotal
	}
	cart.Total = math.Round(cart.Total*100) / 100
	sort.Slice(cart.Lines, func(i, j int) bool { return cart.Lines[i].ProductID < cart.Lines[j].ProductID })
	return cart, nil
}
