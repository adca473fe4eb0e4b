package main

import (
	"fmt"
	"log"
	"net/http"

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

	logger.Info("Starting resource server",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, config, logger)

	addr := fmt.Sprintf(":%s", config.App.Port)
	logger.Info("Starting HTTP server", zap.String("addr", addr))

	if err := http.ListenAndServe(addr, app.Router); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
