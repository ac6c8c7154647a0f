package main

import (
	"flag"
	"log"
	"os"

	"github.com/bartek-filipiuk/dw-zizi/internal/auth"
	"github.com/bartek-filipiuk/dw-zizi/internal/content"
	"github.com/bartek-filipiuk/dw-zizi/internal/db"
	"github.com/bartek-filipiuk/dw-zizi/internal/seeds"
	"github.com/bartek-filipiuk/dw-zizi/internal/uploads"
	"github.com/joho/godotenv"
)

func main() {
	fixture := flag.String("fixture", "seeds/content.yaml", "path to the seed fixture")
	images := flag.String("images", "images", "directory holding the seed image files")
	flag.Parse()

	_ = godotenv.Load(".env.local")
	db.Connect()

	auth.Init()
	content.Init()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	store, err := uploads.NewStore(uploadDir)
	if err != nil {
		log.Fatal("Failed to open upload store: ", err)
	}

	if err := seeds.Run(store, *fixture, *images); err != nil {
		log.Fatal("Seed failed: ", err)
	}
	log.Println("Seed completed successfully!")
}
