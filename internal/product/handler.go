package product

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aquabluegroup/fishwaale-backend/internal/storage"
)

type Handler struct {
	service *Service
	store   storage.Store
}

func NewHandler(service *Service, store storage.Store) *Handler {
	return &Handler{service: service, store: store}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/:id<[0-9]+>", h.getProduct)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/products", h.getFilteredProducts)
	router.Post("/products", h.createProduct)
	router.Put("/products/:id", h.updateProduct)
	router.Delete("/products/:id", h.deleteProduct)
}

// productResponse adds the derived display price to the stored row.
type productResponse struct {
	Product
	FinalPrice float64 `json:"finalPrice"`
}

func toResponse(products []Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse{Product: p, FinalPrice: p.FinalPrice()})
	}
	return out
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	if slug := c.Query("subCategory"); slug != "" {
		return c.JSON(toResponse(h.service.ListBySubCategorySlug(slug)))
	}
	return c.JSON(toResponse(h.service.List()))
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(productResponse{Product: p, FinalPrice: p.FinalPrice()})
}

func (h *Handler) getFilteredProducts(c *fiber.Ctx) error {
	f := Filter{Query: c.Query("q")}
	if v, err := strconv.Atoi(c.Query("categoryId", "0")); err == nil {
		f.CategoryID = v
	}
	if v, err := strconv.Atoi(c.Query("subCategoryId", "0")); err == nil {
		f.SubCategoryID = v
	}
	return c.JSON(toResponse(h.service.ListFiltered(f)))
}

func validateProductPayload(p *Product) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if p.Price < 0 {
		errs["price"] = "price must be >= 0"
	}
	if p.SubCategoryID <= 0 {
		errs["subCategoryId"] = "subCategoryId is required"
	}
	if p.DiscountPrice != nil && p.DiscountPercentage != nil {
		errs["discount"] = "discountPrice and discountPercentage are mutually exclusive"
	}
	if p.DiscountPrice != nil && (*p.DiscountPrice < 0 || *p.DiscountPrice > p.Price) {
		errs["discountPrice"] = "discountPrice must be between 0 and price"
	}
	if p.DiscountPercentage != nil && (*p.DiscountPercentage < 0 || *p.DiscountPercentage > 100) {
		errs["discountPercentage"] = "discountPercentage must be between 0 and 100"
	}
	return errs
}

// parsePayload accepts either a JSON body or a multipart form with an
// optional image file. Uploaded images land in the product-images bucket
// and their public URL replaces imageUrl. Non-numeric form values come
// back as field errors in the returned map.
func (h *Handler) parsePayload(c *fiber.Ctx) (*Product, map[string]string, error) {
	p := new(Product)
	ves := map[string]string{}
	if strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		p.Name = c.FormValue("name")
		p.Description = c.FormValue("description")
		p.ImageURL = c.FormValue("imageUrl")
		if raw := c.FormValue("price"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				p.Price = v
			} else {
				ves["price"] = "price must be a number"
			}
		}
		if raw := c.FormValue("discountPrice"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				p.DiscountPrice = &v
			} else {
				ves["discountPrice"] = "discountPrice must be a number"
			}
		}
		if raw := c.FormValue("discountPercentage"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				p.DiscountPercentage = &v
			} else {
				ves["discountPercentage"] = "discountPercentage must be a number"
			}
		}
		if raw := c.FormValue("features"); raw != "" {
			for _, feat := range strings.Split(raw, "\n") {
				if feat = strings.TrimSpace(feat); feat != "" {
					p.Features = append(p.Features, feat)
				}
			}
		}
		if raw := c.FormValue("subCategoryId"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil {
				p.SubCategoryID = v
			} else {
				ves["subCategoryId"] = "subCategoryId must be a number"
			}
		}
		if file, err := c.FormFile("image"); err == nil {
			url, err := h.store.Save(file, storage.BucketProductImages)
			if err != nil {
				return nil, nil, err
			}
			p.ImageURL = url
		}
		return p, ves, nil
	}

	if err := c.BodyParser(p); err != nil {
		return nil, nil, err
	}
	return p, ves, nil
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	p, ves, err := h.parsePayload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	for field, msg := range validateProductPayload(p) {
		if _, ok := ves[field]; !ok {
			ves[field] = msg
		}
	}
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	if p.CreatedAt == "" {
		p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	created, err := h.service.Create(*p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(productResponse{Product: created, FinalPrice: created.FinalPrice()})
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	p, ves, err := h.parsePayload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	for field, msg := range validateProductPayload(p) {
		if _, ok := ves[field]; !ok {
			ves[field] = msg
		}
	}
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(id, *p)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Product not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(productResponse{Product: updated, FinalPrice: updated.FinalPrice()})
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := h.service.Delete(id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Product not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendString("Product deleted")
}
