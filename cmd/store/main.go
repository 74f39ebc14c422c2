package main

import (
	"log"

	"github.com/papakado/store/internal/app"
	"github.com/papakado/store/internal/config"
	"github.com/papakado/store/pgk/logger"
)

func main() {
	lg, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	cfg, err := config.Read()
	if err != nil {
		lg.Fatal(err)
	}

	if err := app.Run(cfg, lg); err != nil {
		lg.Fatal(err)
	}
}
