package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"blogging-api/api/auth"
	"blogging-api/api/handlers"
	"blogging-api/api/middleware"
	"blogging-api/db"
	"blogging-api/logger"
	"blogging-api/repositories"
	"blogging-api/services"
	_ "blogging-api/docs"
)

func New(jwtManager *auth.JWTManager, media services.MediaStore) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		// Try ping MongoDB
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			logger.WarnWithFields("health check degraded", logger.Fields{"error": err.Error()})
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	blogRepo := repositories.NewBlogRepository(db.Database())
	userRepo := repositories.NewUserRepository(db.Database())
	categoryRepo := repositories.NewCategoryRepository(db.Database())

	blogSvc := services.NewBlogService(blogRepo, userRepo, media)
	userSvc := services.NewUserService(userRepo, media, jwtManager)
	favouriteSvc := services.NewFavouriteService(userRepo, blogRepo)
	categorySvc := services.NewCategoryService(categoryRepo, userRepo)

	authRequired := middleware.RequireAuth(jwtManager)

	users := r.Group("/users")
	{
		users.POST("/register", handlers.RegisterHandler(userSvc))
		users.POST("/login", handlers.LoginHandler(userSvc))
		users.GET("/profile", authRequired, handlers.GetProfileHandler(userSvc))
		users.PUT("/profile", authRequired, handlers.UpdateProfileHandler(userSvc))

		users.GET("/categories/all", handlers.ListAllCategoriesHandler(categorySvc))
		users.GET("/categories", authRequired, handlers.GetSelectedCategoriesHandler(categorySvc))
		users.PUT("/categories", authRequired, handlers.UpdateSelectedCategoriesHandler(categorySvc))

		users.GET("/favourites", authRequired, handlers.ListFavouritesHandler(favouriteSvc))
		users.POST("/favourites/:blogId", authRequired, handlers.AddFavouriteHandler(favouriteSvc))
		users.DELETE("/favourites/:blogId", authRequired, handlers.RemoveFavouriteHandler(favouriteSvc))
	}

	blogs := r.Group("/blogs")
	{
		blogs.GET("/", handlers.ListBlogsHandler(blogSvc))
		blogs.GET("/search", handlers.SearchBlogsHandler(blogSvc))
		blogs.GET("/by-selected-categories", authRequired, handlers.ListBySelectedCategoriesHandler(blogSvc))
		blogs.GET("/my-blogs", authRequired, handlers.ListMyBlogsHandler(blogSvc))
		blogs.GET("/:id", handlers.GetBlogHandler(blogSvc))
		blogs.POST("/", authRequired, handlers.CreateBlogHandler(blogSvc))
		blogs.PUT("/:id", authRequired, handlers.ReplaceBlogHandler(blogSvc))
		blogs.PATCH("/:id", authRequired, handlers.PatchBlogHandler(blogSvc))
		blogs.DELETE("/:id", authRequired, handlers.DeleteBlogHandler(blogSvc))
	}

	return r
}

// corsMiddleware adapts rs/cors to gin.
func corsMiddleware() gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return func(gc *gin.Context) {
		c.HandlerFunc(gc.Writer, gc.Request)
		if gc.Request.Method == http.MethodOptions &&
			gc.GetHeader("Access-Control-Request-Method") != "" {
			gc.AbortWithStatus(http.StatusNoContent)
			return
		}
		gc.Next()
	}
}
