package main

import (
	"context"
	"log"

	"github.com/christine-ng23/bookstore-backend/internal/data/entity"
	"github.com/christine-ng23/bookstore-backend/internal/data/repository"
	"github.com/christine-ng23/bookstore-backend/pkg/database"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

// Seeds the initial admin account (admin/admin). Safe to run repeatedly.
func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repos := repository.NewRepository(db, logger)
	ctx := context.Background()

	existing, err := repos.User.FindByUsername(ctx, "admin")
	if err != nil {
		logger.Fatal("Failed to look up admin account", zap.Error(err))
	}
	if existing != nil {
		logger.Info("Admin account already exists", zap.Int64("user_id", existing.ID))
		return
	}

	hash, err := utils.HashPassword("admin")
	if err != nil {
		logger.Fatal("Failed to hash password", zap.Error(err))
	}

	admin := &entity.User{
		Username: "admin",
		Password: hash,
		Role:     entity.RoleAdmin,
	}
	if err := repos.User.Create(ctx, admin); err != nil {
		logger.Fatal("Failed to create admin account", zap.Error(err))
	}

	logger.Info("Admin account created", zap.Int64("user_id", admin.ID))
}
