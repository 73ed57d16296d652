package main

import (
	"log"
	"net/http"

	"github.com/minaorangina/doubledeck"
	"github.com/minaorangina/doubledeck/config"
	"github.com/minaorangina/doubledeck/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(doubledeck.NewInMemoryGameStore(cfg.MaxGames), server.ServerOpts{
		AllowedOrigins: cfg.AllowedOrigins,
		Seed:           cfg.FixedSeed(),
		IdleTimeout:    cfg.IdleTimeout,
	})

	log.Printf("Listening on %s...", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), s))
}
