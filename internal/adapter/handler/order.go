package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/amjedmohammed836-ops/pubg-store/internal/core/service"
)

type OrderHandler struct {
	Orders *service.OrderService
}

type CreateOrderRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	PlayerID  string `json:"playerId"`
	Amount    int64  `json:"amount"`
	Price     int64  `json:"price"`
}

// CreateOrder places a new pending order for the caller.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, err)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return fail(c, err)
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fail(c, err)
	}

	order, err := h.Orders.Create(c.Context(), userID, productID, req.PlayerID, req.Amount, req.Price)
	if err != nil {
		return fail(c, err)
	}

	slog.Info("Order created", "order_id", order.ID, "user_id", order.UserID, "price", order.Price)
	return c.JSON(fiber.Map{"success": true, "message": "Order created", "order": order})
}

// GetUserOrders returns one owner's orders with their products resolved.
func (h *OrderHandler) GetUserOrders(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return fail(c, err)
	}

	orders, err := h.Orders.ListByUser(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "orders": orders})
}
