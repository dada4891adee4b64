package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/amjedmohammed836-ops/pubg-store/internal/core/service"
)

type AdminHandler struct {
	Orders *service.OrderService
	Admin  *service.AdminService
	Stats  *service.StatsService
}

// GetAllOrders returns every order joined with its owner and product,
// newest first.
func (h *AdminHandler) GetAllOrders(c *fiber.Ctx) error {
	orders, err := h.Admin.ListOrders(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "orders": orders})
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus overwrites one order's status.
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return fail(c, err)
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, err)
	}

	order, err := h.Orders.UpdateStatus(c.Context(), orderID, req.Status)
	if err != nil {
		return fail(c, err)
	}

	slog.Info("Order status updated", "order_id", orderID, "status", order.Status)
	return c.JSON(fiber.Map{"success": true, "order": order})
}

// DeleteOrder removes an order. Deleting an unknown ID still succeeds.
func (h *AdminHandler) DeleteOrder(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return fail(c, err)
	}

	if err := h.Orders.Delete(c.Context(), orderID); err != nil {
		return fail(c, err)
	}

	slog.Info("Order deleted", "order_id", orderID)
	return c.JSON(fiber.Map{"success": true, "message": "Order deleted"})
}

// GetStats computes the dashboard numbers with a fresh scan.
func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.Stats.Compute(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "stats": stats})
}

// GetUsers lists all registered users without their credentials.
func (h *AdminHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.Admin.ListUsers(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "users": users})
}
