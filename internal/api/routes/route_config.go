package routes

import (
	"streetbite-backend/internal/api/handlers"
	"streetbite-backend/internal/middleware"
	"streetbite-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	VendorHandler    handlers.VendorHandler
	AreaHandler      handlers.AreaHandler
	RatingHandler    handlers.RatingHandler
	FollowHandler    handlers.FollowHandler
	CommentHandler   handlers.CommentHandler
	MenuHandler      handlers.MenuHandler
	PromotionHandler handlers.PromotionHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Vendors()
	c.Ratings()
	c.MenuItems()
	c.Comments()
	c.Areas()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Get("/me/following", c.Middleware.AuthMiddleware(c.JWTService), c.FollowHandler.ListFollowed)
	}
}

func (c *Config) Vendors() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	vendors := c.App.Group("/api/v1/vendors")

	vendors.Get("", c.VendorHandler.ListVendors)
	vendors.Post("", auth, c.VendorHandler.CreateVendor)

	// own-profile routes, registered before the wildcard ones
	vendors.Get("/me", auth, c.VendorHandler.GetOwnVendor)
	vendors.Patch("/me", auth, c.VendorHandler.UpdateVendor)
	vendors.Patch("/me/location", auth, c.VendorHandler.UpdateLocation)
	vendors.Post("/me/images", auth, c.VendorHandler.UploadVendorImage)
	vendors.Delete("/me/images/:id", auth, c.VendorHandler.DeleteVendorImage)
	vendors.Get("/me/comments", auth, c.CommentHandler.ListVendorAreaComments)
	vendors.Post("/me/menu", auth, c.MenuHandler.AddMenuItem)
	vendors.Get("/me/promotions", auth, c.PromotionHandler.GetVendorPromotions)
	vendors.Post("/me/promotions", auth, c.PromotionHandler.CreatePromotion)

	vendors.Get("/:id", c.VendorHandler.GetVendorDetails)
	vendors.Get("/:id/menu", c.MenuHandler.GetVendorMenu)
	vendors.Get("/:id/ratings", c.RatingHandler.GetVendorRatings)
	vendors.Post("/:id/follow", auth, c.FollowHandler.Follow)
	vendors.Delete("/:id/follow", auth, c.FollowHandler.Unfollow)
	vendors.Get("/:id/follow", auth, c.FollowHandler.FollowStatus)
	vendors.Get("/:id/comments", auth, c.CommentHandler.ListVendorComments)
}

func (c *Config) Ratings() {
	ratings := c.App.Group("/api/v1/ratings", c.Middleware.AuthMiddleware(c.JWTService))
	ratings.Post("", c.RatingHandler.SubmitRating)
}

func (c *Config) MenuItems() {
	menuItems := c.App.Group("/api/v1/menu-items", c.Middleware.AuthMiddleware(c.JWTService))
	menuItems.Patch("/:id", c.MenuHandler.UpdateMenuItem)
	menuItems.Delete("/:id", c.MenuHandler.DeleteMenuItem)
}

func (c *Config) Comments() {
	comments := c.App.Group("/api/v1/comments", c.Middleware.AuthMiddleware(c.JWTService))
	comments.Post("", c.CommentHandler.PostComment)
	comments.Get("", c.CommentHandler.ListAreaComments)
	comments.Post("/:id/like", c.CommentHandler.ToggleLike)
	comments.Delete("/:id", c.CommentHandler.DeleteComment)
}

func (c *Config) Areas() {
	areas := c.App.Group("/api/v1/areas")
	areas.Get("/resolve", c.AreaHandler.ResolveArea)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
	c.App.Post("/webhook/midtrans", c.PromotionHandler.HandleWebhook)
}
