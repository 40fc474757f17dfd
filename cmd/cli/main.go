package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/s1lver29/book-store/internal/client/api"
	"github.com/s1lver29/book-store/internal/client/cli"
)

func main() {

	server := flag.String("s", "http://localhost:8080", "server base URL")
	token := flag.String("token", "", "access token obtained with the login command")
	flag.Parse()

	client := api.New(*server)
	if *token != "" {
		client.SetToken(*token)
	}

	app := cli.NewApp(client)

	if err := app.Run(context.Background(), flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}
