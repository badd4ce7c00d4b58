package routes

import (
	"net/http"
	"time"

	"salonify/handlers"
	"salonify/middleware"
	"salonify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the catalog, site content and contact endpoints.
func RegisterPublicRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("/services", hb.Content.ListServices)
		catalog.GET("/services/:id", hb.Content.GetService)
		catalog.GET("/packages", hb.Content.ListPackages)
	}

	content := r.Group("/content")
	{
		content.GET("/hero", hb.Content.ListHero)
		content.GET("/gallery", hb.Content.ListGallery)
		content.GET("/reviews", hb.Content.ListReviews)
	}

	r.GET("/settings", hb.Content.GetSettings)
	r.POST("/contact", hb.Content.SubmitContact)
}

// RegisterAuthRoutes registers sign-up, sign-in and password reset endpoints.
func RegisterAuthRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", hb.Users.SignUp)
		auth.POST("/signin", hb.Users.SignIn)
		auth.POST("/reset", hb.Users.ResetPassword)
		auth.POST("/reset/confirm", hb.Users.ConfirmPasswordReset)

		// Protected routes (Require Authentication)
		auth.POST("/signout", userAuth(hb), hb.Users.SignOut)
	}
}

// RegisterUserRoutes registers the signed-in user's endpoints.
func RegisterUserRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	me := r.Group("/users/me")
	{
		me.Use(userAuth(hb))
		me.GET("", hb.Users.GetSession)
		me.PATCH("", hb.Users.UpdateProfile)
		me.PATCH("/settings", hb.Users.UpdateSettings)
		me.GET("/bookings", hb.Bookings.ListMyBookings)
		me.GET("/stream", hb.Streams.UserEvents)
	}
}

// RegisterBookingRoutes registers the customer booking flow.
func RegisterBookingRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/bookings")
	{
		bookingGroup.GET("/availability", hb.Bookings.Availability)
		bookingGroup.POST("", userAuth(hb), hb.Bookings.CreateBooking)
	}
}

// RegisterAIRoutes registers the style advisor and estimator.
func RegisterAIRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api := r.Group("/ai")
	{
		api.POST("/style", hb.AI.SuggestStyle)
		api.POST("/estimate", hb.AI.EstimateCustomService)
	}
}

// RegisterAdminRoutes sets up the admin console endpoints.
func RegisterAdminRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	r.POST("/admin/login", hb.Admin.Login)

	adminGroup := r.Group("/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.Tokens))
		adminGroup.GET("/users", hb.Admin.GetAllUsersHandler)

		adminGroup.GET("/bookings", hb.Bookings.ListBookings)
		adminGroup.GET("/bookings/stream", hb.Streams.AdminBookings)
		adminGroup.GET("/bookings/:id", hb.Bookings.GetBooking)
		adminGroup.PUT("/bookings/:id/status", hb.Bookings.UpdateStatus)
		adminGroup.PUT("/bookings/:id/schedule", hb.Bookings.Reschedule)
		adminGroup.DELETE("/bookings/:id", hb.Bookings.DeleteBooking)

		adminGroup.POST("/hero", hb.Content.CreateHero)
		adminGroup.POST("/hero/upload", hb.Content.UploadHero)
		adminGroup.DELETE("/hero/:id", hb.Content.DeleteHero)

		adminGroup.POST("/gallery", hb.Content.CreateGalleryItem)
		adminGroup.POST("/gallery/upload", hb.Content.UploadGalleryItem)
		adminGroup.DELETE("/gallery/:id", hb.Content.DeleteGalleryItem)

		adminGroup.POST("/reviews", hb.Content.CreateReview)
		adminGroup.DELETE("/reviews/:id", hb.Content.DeleteReview)

		adminGroup.GET("/contacts", hb.Content.ListContacts)
		adminGroup.DELETE("/contacts/:id", hb.Content.DeleteContact)

		adminGroup.PUT("/settings", hb.Content.UpdateSettings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm Salonify",
			"services": utils.GetHealthStatus(),
		})
	})
}

func userAuth(hb *handlers.HandlerBundle) gin.HandlerFunc {
	return middleware.JWTAuthUserMiddleware(hb.Tokens, hb.UserRepo, hb.AuthCache)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !(len(allowedOrigins) == 1 && allowedOrigins[0] == "*"),
		MaxAge:           12 * time.Hour,
	}))
	r.Use(handlers.RequestLogger())

	RegisterHealthRoute(r)

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(hb.RequestsPerMinute))

	RegisterPublicRoutes(api, hb)
	RegisterAuthRoutes(api, hb)
	RegisterUserRoutes(api, hb)
	RegisterBookingRoutes(api, hb)
	RegisterAIRoutes(api, hb)
	RegisterAdminRoutes(api, hb)
}
