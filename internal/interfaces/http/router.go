package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/auth"
	"github.com/jhoicas/caja-api/internal/application/usecase"
	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	SaleUC    *usecase.SaleUseCase
	ProductUC *usecase.ProductUseCase

	// AdminOnlyUsers exige rol admin en /auth/users.
	AdminOnlyUsers bool
	// DevRoutes monta /api/dev/* sin autenticación.
	DevRoutes bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	api.Get("/health", Health)

	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	saleHandler := NewSaleHandler(deps.SaleUC)
	productHandler := NewProductHandler(deps.ProductUC)
	gate := AuthMiddleware(deps.AuthUC)

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/verify", authHandler.Verify)
	authGroup.Post("/login", authHandler.Login)

	// Auth (protegido)
	authGroup.Get("/me", gate, authHandler.Me)
	users := authGroup.Group("/users", gate)
	if deps.AdminOnlyUsers {
		users.Use(RequireRole(deps.UserUC, entity.RoleAdmin))
	}
	users.Get("/", authHandler.ListUsers)
	users.Put("/:uid", authHandler.UpdateUser)
	users.Delete("/:uid", authHandler.DeleteUser)

	// Ventas (protegido)
	ventas := api.Group("/ventas", gate)
	ventas.Post("/", saleHandler.Create)
	ventas.Get("/", saleHandler.List)
	ventas.Get("/:id/recibo", saleHandler.Receipt)

	// Productos (protegido)
	productos := api.Group("/productos", gate)
	productos.Post("/", productHandler.Create)
	productos.Get("/", productHandler.List)

	if deps.DevRoutes {
		dev := api.Group("/dev")
		dev.Post("/register", authHandler.Register)
		dev.Get("/users", authHandler.ListUsers)
		dev.Post("/ventas", saleHandler.Create)
		dev.Get("/ventas", saleHandler.List)
		dev.Post("/productos", productHandler.Create)
		dev.Get("/productos", productHandler.List)
	}
}
