package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sewakos-backend/controllers"
	"sewakos-backend/middleware"
	"sewakos-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	authC *controllers.AuthController,
	kosC *controllers.KosController,
	roomC *controllers.RoomController,
	bookingC *controllers.BookingController,
	paymentC *controllers.PaymentController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authC.Register)
			auth.POST("/login", authC.Login)
			auth.GET("/profile", middleware.RequireAuth(), authC.GetProfile)
			auth.PUT("/profile", middleware.RequireAuth(), authC.UpdateProfile)
		}

		kos := api.Group("/kos")
		{
			kos.GET("", kosC.List)
			kos.GET("/:id", kosC.Detail)
			kos.GET("/:id/rooms", roomC.ListByKos)

			ownerOnly := kos.Group("", middleware.RequireAuth(), middleware.RequireRole(models.RoleOwner))
			{
				ownerOnly.POST("", kosC.Create)
				ownerOnly.PUT("/:id", kosC.Update)
				ownerOnly.DELETE("/:id", kosC.Delete)
				ownerOnly.POST("/:id/rooms", roomC.Create)
			}
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("/:id", roomC.Detail)

			ownerOnly := rooms.Group("", middleware.RequireAuth(), middleware.RequireRole(models.RoleOwner))
			{
				ownerOnly.PUT("/:id", roomC.Update)
				ownerOnly.DELETE("/:id", roomC.Delete)
			}
		}

		bookings := api.Group("/bookings", middleware.RequireAuth())
		{
			bookings.POST("", middleware.RequireRole(models.RoleTenant), bookingC.Create)
			bookings.GET("", middleware.RequireRole(models.RoleTenant, models.RoleOwner), bookingC.List)
			bookings.GET("/:id", bookingC.Detail)
			bookings.PUT("/:id/status", middleware.RequireRole(models.RoleOwner), bookingC.UpdateStatus)

			bookings.POST("/:id/payments", middleware.RequireRole(models.RoleTenant), paymentC.Submit)
			bookings.GET("/:id/payments", paymentC.ListByBooking)
		}

		payments := api.Group("/payments", middleware.RequireAuth())
		{
			payments.PUT("/:id/verify", middleware.RequireRole(models.RoleOwner), paymentC.Verify)
			payments.GET("/:id/receipt", paymentC.Receipt)
		}
	}

	return r
}
