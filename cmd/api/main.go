package main

import (
	"context"
	"log"
	"net/http"

	"blogging-api/api/auth"
	"blogging-api/api/router"
	"blogging-api/config"
	"blogging-api/db"
	"blogging-api/logger"
	"blogging-api/repositories"
	"blogging-api/services"
	"blogging-api/storage"
	_ "blogging-api/docs" // swag will generate this package
)

// @title           Blogging API
// @version         1.0
// @description     REST backend for a blogging platform: accounts, posts, categories, favourites and media uploads
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal(err)
	}

	// Seed the global category enumeration; idempotent, a no-op for
	// already-present categories.
	categorySvc := services.NewCategoryService(
		repositories.NewCategoryRepository(db.Database()),
		repositories.NewUserRepository(db.Database()),
	)
	if err := categorySvc.Seed(ctx, cfg.Categories); err != nil {
		log.Fatal(err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	media, err := storage.NewClient(ctx, cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
	if err != nil {
		log.Fatal(err)
	}

	r := router.New(jwtManager, media)

	if err := r.Run(":8080"); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
