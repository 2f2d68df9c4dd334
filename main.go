package main

import (
	"flag"
	"log"
	"net/http"

	"nearby-search-system/api"
	"nearby-search-system/cache"
	"nearby-search-system/config"
	"nearby-search-system/database"
	"nearby-search-system/migration"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "run database migrations and exit")
	flag.Parse()

	// Initialize configuration
	config.InitConfig()

	if *migrateOnly {
		if err := migration.RunMigrations(); err != nil {
			log.Fatalf("Migration error: %v", err)
		}
		return
	}

	// Initialize database
	if err := database.InitDB(); err != nil {
		log.Fatal(err)
	}

	// Initialize Redis
	cache.InitRedis()

	// Register routes
	router := api.RegisterRoutes()

	// Start the server
	log.Println("Server started on :8080")
	log.Fatal(http.ListenAndServe(":8080", router))
}
