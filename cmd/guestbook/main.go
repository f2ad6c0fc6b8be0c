package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/guestbook/internal/cli"
	"github.com/dmitrijs2005/guestbook/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, os.Stdout, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = app.Run(ctx, os.Args[1:])
	if cerr := app.Close(); cerr != nil {
		log.Printf("close error: %v", cerr)
	}
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
