package main

import (
	"log"
	"net/http"

	"github.com/adtc/araporanga/internal/config"
	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/web"
)

func main() {
	cfg := config.Load()

	if err := db.Init(cfg.DBPath); err != nil {
		log.Fatalf("db init: %v", err)
	}
	if err := db.Seed(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("db seed: %v", err)
	}

	r := web.Router()

	log.Printf("ADTC Araporanga listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
