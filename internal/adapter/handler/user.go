package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/amjedmohammed836-ops/pubg-store/internal/core/domain"
	"github.com/amjedmohammed836-ops/pubg-store/internal/core/port"
)

type UserHandler struct {
	Users port.UserRepository
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. A taken email is reported in-band with
// success:false, not as an HTTP error.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, err)
	}

	_, err := h.Users.FindByEmail(c.Context(), req.Email)
	if err == nil {
		return c.JSON(fiber.Map{"success": false, "message": "Email already registered"})
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fail(c, err)
	}

	user := &domain.User{
		ID:        uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Users.Insert(c.Context(), user); err != nil {
		return fail(c, err)
	}

	slog.Info("User registered", "user_id", user.ID, "email", user.Email)
	return c.JSON(fiber.Map{"success": true, "message": "Registered successfully", "user": user})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, err)
	}

	user, err := h.Users.FindByCredentials(c.Context(), req.Email, req.Password)
	if errors.Is(err, domain.ErrUserNotFound) {
		return c.JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
	}
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Logged in", "user": user})
}
