package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/christine-ng23/bookstore-backend/internal/authcode"
	"github.com/christine-ng23/bookstore-backend/internal/data/repository"
	"github.com/christine-ng23/bookstore-backend/internal/wire"
	"github.com/christine-ng23/bookstore-backend/pkg/database"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

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

	logger.Info("Starting authorization server",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.AuthPort),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	codeTTL := time.Duration(config.OAuth.CodeTTLMinutes) * time.Minute
	var codes authcode.Store
	if config.Redis.Addr != "" {
		store := authcode.NewRedisStore(config.Redis.Addr, config.Redis.Password, codeTTL)
		defer store.Close()
		codes = store
		logger.Info("Using Redis authorization code store", zap.String("addr", config.Redis.Addr))
	} else {
		codes = authcode.NewMemoryStore(codeTTL)
		logger.Info("Using in-memory authorization code store")
	}

	repos := repository.NewRepository(db, logger)
	app := wire.AuthWiring(repos, codes, config, logger)

	addr := fmt.Sprintf(":%s", config.App.AuthPort)
	logger.Info("Starting HTTP server", zap.String("addr", addr))

	if err := http.ListenAndServe(addr, app.Router); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
