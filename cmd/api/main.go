package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/amjedmohammed836-ops/pubg-store/internal/adapter/handler"
	"github.com/amjedmohammed836-ops/pubg-store/internal/adapter/storage"
	"github.com/amjedmohammed836-ops/pubg-store/internal/core/config"
	"github.com/amjedmohammed836-ops/pubg-store/internal/core/service"
)

func main() {
	cfg := config.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	dbPool, err := storage.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := storage.EnsureSchema(ctx, dbPool); err != nil {
		slog.Error("Schema setup failed", "error", err)
		os.Exit(1)
	}
	if err := storage.Seed(ctx, dbPool); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}

	orderRepo := storage.NewOrderRepository(dbPool)
	productRepo := storage.NewProductRepository(dbPool)
	userRepo := storage.NewUserRepository(dbPool)

	orderService := service.NewOrderService(orderRepo, productRepo)
	adminService := service.NewAdminService(orderRepo, userRepo, productRepo)
	statsService := service.NewStatsService(orderRepo, userRepo)

	orderHandler := &handler.OrderHandler{Orders: orderService}
	adminHandler := &handler.AdminHandler{Orders: orderService, Admin: adminService, Stats: statsService}
	productHandler := &handler.ProductHandler{Products: productRepo}
	userHandler := &handler.UserHandler{Users: userRepo}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("UC Store API Running")
	})

	api := app.Group("/api")

	api.Get("/products", productHandler.ListProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	api.Post("/register", userHandler.Register)
	api.Post("/login", userHandler.Login)

	api.Post("/orders", orderHandler.CreateOrder)
	api.Get("/orders/:userId", orderHandler.GetUserOrders)

	admin := api.Group("/admin")
	admin.Get("/users", adminHandler.GetUsers)
	admin.Get("/orders", adminHandler.GetAllOrders)
	admin.Put("/orders/:orderId", adminHandler.UpdateOrderStatus)
	admin.Delete("/orders/:orderId", adminHandler.DeleteOrder)
	admin.Get("/stats", adminHandler.GetStats)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "env", cfg.Env, "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutting down server")

	if err := app.Shutdown(); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	dbPool.Close()
	slog.Info("Database connection closed")
}
