package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/littlelemon/backend/internal/api/handlers"
	"github.com/littlelemon/backend/internal/middleware"
	"github.com/littlelemon/backend/pkg/jwt"
	"github.com/littlelemon/backend/pkg/policy"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	GroupHandler   handlers.GroupHandler
	MenuHandler    handlers.MenuHandler
	CartHandler    handlers.CartHandler
	OrderHandler   handlers.OrderHandler
	PaymentHandler handlers.PaymentHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.Groups()
	c.Menu()
	c.Cart()
	c.Orders()
	c.GuestRoute()
}

func (c *Config) Users() {
	user := c.App.Group("/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Groups() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	crew := c.App.Group("/groups/delivery-crew", auth)
	crew.Put("/users/", c.Middleware.Require(policy.RequireAdminAndManager), c.GroupHandler.AssignDeliveryCrew)
	crew.All("/users/", handlers.MethodNotAllowed)

	users := c.App.Group("/groups/users", auth, c.Middleware.Require(policy.RequireAdmin))
	{
		users.Get("/:id/", c.GroupHandler.GetUserRole)
		users.Put("/:id/", c.GroupHandler.AssignGroup)
		users.Delete("/:id/", c.GroupHandler.RevokeGroup)
		users.All("/:id/", handlers.MethodNotAllowed)
	}
}

func (c *Config) Menu() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	menuItems := c.App.Group("/menu-items", auth)
	{
		// Fixed paths go first so ":id" cannot shadow them.
		menuItems.Put("/featured/", c.Middleware.Require(policy.RequireAdminAndManager), c.MenuHandler.SetFeatured)
		menuItems.All("/featured/", handlers.MethodNotAllowed)
		menuItems.Post("/image/", c.Middleware.Require(policy.RequireAdmin), c.MenuHandler.UploadItemImage)
		menuItems.All("/image/", handlers.MethodNotAllowed)

		menuItems.Post("/", c.Middleware.Require(policy.RequireAdmin), c.MenuHandler.AddMenuItem)
		menuItems.Get("/", c.Middleware.Require(policy.RequireAuthenticated), c.MenuHandler.GetMenuItems)

		role := c.Middleware.RequireMenuItemRole()
		menuItems.Get("/:id/", role, c.MenuHandler.GetMenuItem)
		menuItems.Put("/:id/", role, c.MenuHandler.UpdateMenuItem)
		menuItems.Patch("/:id/", role, c.MenuHandler.UpdateMenuItem)
		menuItems.Delete("/:id/", role, c.MenuHandler.DeleteMenuItem)
	}

	categories := c.App.Group("/categories", auth)
	{
		categories.Post("/", c.Middleware.Require(policy.RequireAdmin), c.MenuHandler.AddCategory)
		categories.Get("/", c.Middleware.Require(policy.RequireAuthenticated), c.MenuHandler.GetCategories)
	}
}

func (c *Config) Cart() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	cart := c.App.Group("/cart", auth, c.Middleware.Require(policy.RequireAuthenticated))
	{
		cart.Get("/", c.CartHandler.GetCart)
		cart.Post("/", c.CartHandler.AddToCart)
		cart.Delete("/remove/:itemId/", c.CartHandler.RemoveFromCart)
		cart.All("/remove/:itemId/", handlers.MethodNotAllowed)
	}
}

func (c *Config) Orders() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	orders := c.App.Group("/orders", auth)
	{
		orders.Post("/assign/", c.Middleware.Require(policy.RequireAdminAndManager), c.OrderHandler.AssignOrder)
		orders.All("/assign/", handlers.MethodNotAllowed)

		orders.Get("/crew/", c.Middleware.Require(policy.RequireAdminAndCrew), c.OrderHandler.GetAssignedOrders)
		orders.All("/crew/", handlers.MethodNotAllowed)

		orders.Put("/status/", c.Middleware.Require(policy.RequireAdminAndCrew), c.OrderHandler.UpdateOrderStatus)
		orders.All("/status/", handlers.MethodNotAllowed)

		orders.Get("/", c.Middleware.Require(policy.RequireAuthenticated), c.OrderHandler.GetOrders)
		orders.Post("/", c.Middleware.Require(policy.RequireAuthenticated), c.OrderHandler.PlaceOrder)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.PaymentHandler.MidtransWebhookHandler)
}
