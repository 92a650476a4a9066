package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/WriteYourMP/WYM-Backend/internal/config"
	"github.com/WriteYourMP/WYM-Backend/internal/middleware"
	"github.com/WriteYourMP/WYM-Backend/internal/mplookup"
	"github.com/WriteYourMP/WYM-Backend/internal/submitlog"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	mplookup.Init(cfg)
	submitlog.Init(cfg)

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)

	r.Mount("/mp", mplookup.SetupRoutes())
	r.Mount("/submissions", submitlog.SetupRoutes())

	fmt.Printf("Server listening on port :%s...\n", cfg.Port)

	http.ListenAndServe("0.0.0.0:"+cfg.Port, r)
}
