package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/littlelemon/backend/internal/api/handlers"
	"github.com/littlelemon/backend/internal/api/routes"
	"github.com/littlelemon/backend/internal/middleware"
	"github.com/littlelemon/backend/internal/utils"
	"github.com/littlelemon/backend/internal/utils/mailing"
	"github.com/littlelemon/backend/internal/utils/storage"
	"github.com/littlelemon/backend/pkg/cart"
	"github.com/littlelemon/backend/pkg/jwt"
	"github.com/littlelemon/backend/pkg/menu"
	"github.com/littlelemon/backend/pkg/order"
	"github.com/littlelemon/backend/pkg/payment"
	"github.com/littlelemon/backend/pkg/policy"
	"github.com/littlelemon/backend/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	cartRepository := cart.NewCartRepository(db)
	orderRepository := order.NewOrderRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	menuService := menu.NewMenuService(menuRepository, s3)
	cartService := cart.NewCartService(cartRepository, menuRepository)
	paymentService := payment.NewPaymentService()
	orderService := order.NewOrderService(
		orderRepository,
		cartRepository,
		userRepository,
		paymentService,
		mailing.NewOrderMailer(),
	)

	middlewares := middleware.NewMiddleware(policy.Default(), userService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	groupHandler := handlers.NewGroupHandler(userService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	paymentHandler := handlers.NewPaymentHandler(orderService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		GroupHandler:   groupHandler,
		MenuHandler:    menuHandler,
		CartHandler:    cartHandler,
		OrderHandler:   orderHandler,
		PaymentHandler: paymentHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
