// Seeding harness: loads the demo catalog into MongoDB so the server can
// run with CATALOG_BACKEND=mongo.
package main

import (
	"log"

	"airlace/config"
	"airlace/database"
	catalogRepo "airlace/database/repository/catalog"
)

func main() {
	config.LoadConfig()
	database.InitDB()

	repo := catalogRepo.NewMongoCatalogRepo()
	properties := catalogRepo.SeedProperties()
	if err := repo.Seed(properties); err != nil {
		log.Fatalf("Failed to seed properties: %v", err)
	}
	log.Printf("Seeded %d properties", len(properties))
}
