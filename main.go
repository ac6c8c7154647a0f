package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/bartek-filipiuk/dw-zizi/internal/auth"
	"github.com/bartek-filipiuk/dw-zizi/internal/content"
	"github.com/bartek-filipiuk/dw-zizi/internal/db"
	"github.com/bartek-filipiuk/dw-zizi/internal/middleware"
	"github.com/bartek-filipiuk/dw-zizi/internal/uploads"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	auth.Init()
	content.Init()

	store, err := uploads.NewStore(uploadDir)
	if err != nil {
		log.Fatal("Failed to open upload store: ", err)
	}
	tm := auth.NewTokenManager(auth.ConfigFromEnv())

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)

	r.Mount("/api/auth", auth.SetupRoutes(tm))
	r.Mount("/api", content.SetupRoutes(tm, store))

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
