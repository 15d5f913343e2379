package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/datachart/internal/server"
	"github.com/dmitrijs2005/datachart/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("datachart server init failed: %v", err)
		return
	}

	app.Run(ctx)

}
