package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/amjedmohammed836-ops/pubg-store/internal/core/domain"
	"github.com/amjedmohammed836-ops/pubg-store/internal/core/port"
)

type ProductHandler struct {
	Products port.ProductRepository
}

// ListProducts returns the active catalog.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.Products.ListActive(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "products": products})
}

type ProductRequest struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
	Price  int64  `json:"price"`
	Image  string `json:"image"`
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, err)
	}

	product := &domain.Product{
		ID:       uuid.New(),
		Name:     req.Name,
		Amount:   req.Amount,
		Price:    req.Price,
		Image:    req.Image,
		IsActive: true,
	}
	if err := h.Products.Insert(c.Context(), product); err != nil {
		return fail(c, err)
	}

	slog.Info("Product created", "product_id", product.ID, "name", product.Name)
	return c.JSON(fiber.Map{"success": true, "product": product})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	existing, err := h.Products.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, err)
	}

	existing.Name = req.Name
	existing.Amount = req.Amount
	existing.Price = req.Price
	existing.Image = req.Image

	product, err := h.Products.Update(c.Context(), existing)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "product": product})
}

// DeleteProduct soft-deletes a package: it disappears from the public
// listing but stays resolvable for historical orders.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	if err := h.Products.SoftDelete(c.Context(), id); err != nil {
		return fail(c, err)
	}

	slog.Info("Product deactivated", "product_id", id)
	return c.JSON(fiber.Map{"success": true, "message": "Product deleted"})
}
