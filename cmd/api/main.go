package main

import (
	"os"

	_ "sobujigangas/docs"
	"sobujigangas/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           Só Bujigangas API
// @version         1.0
// @description     Inventory and order management for a small store: catalog, purchase orders with derived alerts, stock alerts, POS sales and user profiles. Backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("LOG_PRETTY") != "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	routes.Run()
}
