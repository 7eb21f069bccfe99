package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/ncastellanos/propiedadesbackend/controllers"
	"github.com/ncastellanos/propiedadesbackend/database"
	"github.com/ncastellanos/propiedadesbackend/middleware"
	"github.com/ncastellanos/propiedadesbackend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	ctx := context.Background()

	if err := database.EnsureIndexes(ctx); err != nil {
		log.Fatal("ensure indexes: ", err)
	}

	usersCol := database.OpenCollection("users")
	if err := utils.SeedAdminUser(ctx, usersCol); err != nil {
		log.Fatal(err)
	}

	if utils.InitRedis() {
		log.Println("Search cache enabled")
	} else {
		log.Println("REDIS_ADDR not set, search cache disabled")
	}

	r := gin.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	log.Printf("Allowed origins: %v", allowedOrigins)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestID())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.POST("/auth/login", controllers.Login())
	r.POST("/auth/refresh", controllers.Refresh())
	r.POST("/auth/logout", controllers.Logout())

	api := r.Group("/api")
	{
		api.GET("/search", controllers.AdvancedSearch())

		api.GET("/property", controllers.GetProperties())
		api.GET("/property/:id", controllers.GetProperty())

		api.GET("/featured", controllers.GetFeaturedCategories())
		api.GET("/featured/search/:slug", controllers.SearchFeaturedBySlug())
		api.GET("/featured/:id", controllers.GetFeaturedCategory())
	}

	authed := r.Group("/api")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/property/create", controllers.CreateProperty())
		authed.PATCH("/property/:id", controllers.UpdateProperty())
		authed.DELETE("/property/:id", controllers.DeleteProperty())

		authed.POST("/featured", controllers.AddFeaturedCategory())
		authed.PATCH("/featured/:id", controllers.UpdateFeaturedCategory())
		authed.DELETE("/featured/:id", controllers.DeleteFeaturedCategory())

		authed.POST("/featured/:id/properties", controllers.AssignProperties())
		authed.POST("/featured/:id/properties/:propertyId", controllers.AssignProperty())
		authed.DELETE("/featured/:id/properties/:propertyId", controllers.UnassignProperty())
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/users", controllers.CreateUser())
		admin.POST("/users/me/password", controllers.ChangeMyPassword())
	}

	// Listens on PORT if set, 8080 otherwise.
	r.Run()
}
