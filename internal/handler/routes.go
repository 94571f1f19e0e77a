package handler

import (
	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes mounts the account service routes. requireAuth is the
// access gate with no role restriction: any authenticated user passes.
func SetupAuthRoutes(
	app *fiber.App,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	healthHandler *HealthHandler,
	requireAuth fiber.Handler,
) {
	// Health checks (public)
	app.Get("/health", healthHandler.Health)
	app.Get("/ready", healthHandler.Ready)

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", requireAuth, userHandler.GetMe)

	// Address management (protected)
	auth.Get("/user/addresses", requireAuth, userHandler.GetAddresses)
	auth.Post("/user/addresses", requireAuth, userHandler.AddAddress)
	auth.Delete("/user/addresses/:addressID", requireAuth, userHandler.DeleteAddress)
}

// SetupCatalogRoutes mounts the catalog service routes. requireSeller gates
// on {admin, seller}; requireAuth admits any authenticated role.
func SetupCatalogRoutes(
	app *fiber.App,
	productHandler *ProductHandler,
	healthHandler *HealthHandler,
	requireSeller fiber.Handler,
	requireAuth fiber.Handler,
) {
	// Health checks (public)
	app.Get("/health", healthHandler.Health)
	app.Get("/ready", healthHandler.Ready)

	api := app.Group("/api/v1")

	product := api.Group("/product")
	product.Post("/", requireSeller, productHandler.Create)
	product.Get("/", requireAuth, productHandler.List)
	product.Get("/:id", productHandler.GetByID)
	product.Patch("/:id", requireSeller, productHandler.Update)
	product.Delete("/:id", requireSeller, productHandler.Delete)
}
