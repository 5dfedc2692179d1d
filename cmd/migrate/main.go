package main

import (
	"database/sql"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/TontunHi/it-fund-vr/app/config"
	"github.com/TontunHi/it-fund-vr/app/database"
)

func main() {
	seed := flag.Bool("seed", false, "insert demo members and a starting balance after migrating")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	db, err := cfg.OpenDB()
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	if *seed {
		seedDemoData(db)
	}

	log.Println("Migration completed successfully!")
}

func seedDemoData(db *sql.DB) {
	seeds := []string{
		`INSERT INTO members (name, nickname, avatar_color)
		 SELECT 'สมชาย', 'ชาย', 'bg-blue-400'
		 WHERE NOT EXISTS (SELECT 1 FROM members)`,
		`INSERT INTO other_incomes (title, amount)
		 SELECT 'ยอดยกมา', 0
		 WHERE NOT EXISTS (SELECT 1 FROM other_incomes)`,
	}

	for _, s := range seeds {
		if _, err := db.Exec(s); err != nil {
			log.Printf("Error seeding demo data: %v", err)
		}
	}
	log.Println("Demo data seeded")
}
