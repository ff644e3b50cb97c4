package main

import (
	"log"

	"github.com/Raimguhinov/alarmlog/internal/app"
	"github.com/Raimguhinov/alarmlog/internal/config"
)

func main() {
	cfg := config.GetConfig()

	if err := app.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
