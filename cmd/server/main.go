package main

import (
	"context"
	"log"

	"github.com/s1lver29/book-store/internal/server"
	"github.com/s1lver29/book-store/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
