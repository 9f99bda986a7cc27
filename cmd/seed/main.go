// Command main runs the database seeder for Chirp.
package main

import (
	"flag"
	"log"

	"chirp/internal/config"
	"chirp/internal/database"
	"chirp/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of demo users to create")
	tweetsPerUser := flag.Int("tweets", 5, "Number of tweets per demo user")
	fixtures := flag.String("fixtures", "", "Path to a YAML user fixtures file")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seeder := seed.NewSeeder(db)

	if *shouldClean {
		if err := seeder.Clean(); err != nil {
			log.Fatalf("Failed to clean database: %v", err)
		}
	}

	if *fixtures != "" {
		users, err := seeder.LoadFixtures(*fixtures)
		if err != nil {
			log.Fatalf("Failed to load fixtures: %v", err)
		}
		log.Printf("Created %d fixture users", len(users))
	}

	if *numUsers > 0 {
		if err := seeder.GenerateDemo(*numUsers, *tweetsPerUser); err != nil {
			log.Fatalf("Failed to generate demo data: %v", err)
		}
		log.Printf("Created %d demo users with %d tweets each", *numUsers, *tweetsPerUser)
	}

	log.Println("Seeding complete")
}
