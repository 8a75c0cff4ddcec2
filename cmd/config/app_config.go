package config

import (
	"os"
	"streetbite-backend/internal/api/handlers"
	"streetbite-backend/internal/api/routes"
	"streetbite-backend/internal/middleware"
	"streetbite-backend/internal/utils"
	"streetbite-backend/internal/utils/storage"
	"streetbite-backend/pkg/area"
	"streetbite-backend/pkg/comment"
	"streetbite-backend/pkg/follow"
	"streetbite-backend/pkg/jwt"
	"streetbite-backend/pkg/menu"
	"streetbite-backend/pkg/promotion"
	"streetbite-backend/pkg/rating"
	"streetbite-backend/pkg/user"
	"streetbite-backend/pkg/vendor"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
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
		TimeZone:   "Asia/Jakarta",
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
	areaRepository := area.NewAreaRepository(db)
	vendorRepository := vendor.NewVendorRepository(db)
	ratingRepository := rating.NewRatingRepository(db)
	followRepository := follow.NewFollowRepository(db)
	commentRepository := comment.NewCommentRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	promotionRepository := promotion.NewPromotionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	areaService := area.NewAreaService(areaRepository)
	vendorService := vendor.NewVendorService(vendorRepository, userRepository, areaService, s3)
	ratingService := rating.NewRatingService(ratingRepository, vendorRepository)
	followService := follow.NewFollowService(followRepository, vendorRepository)
	commentService := comment.NewCommentService(commentRepository, userRepository, vendorService, vendorRepository)
	menuService := menu.NewMenuService(menuRepository, vendorRepository)
	promotionService := promotion.NewPromotionService(promotionRepository, vendorRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	areaHandler := handlers.NewAreaHandler(areaService)
	vendorHandler := handlers.NewVendorHandler(vendorService, validator)
	ratingHandler := handlers.NewRatingHandler(ratingService, validator)
	followHandler := handlers.NewFollowHandler(followService)
	commentHandler := handlers.NewCommentHandler(commentService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	promotionHandler := handlers.NewPromotionHandler(promotionService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		VendorHandler:    vendorHandler,
		AreaHandler:      areaHandler,
		RatingHandler:    ratingHandler,
		FollowHandler:    followHandler,
		CommentHandler:   commentHandler,
		MenuHandler:      menuHandler,
		PromotionHandler: promotionHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
