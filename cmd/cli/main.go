package main

import (
	"context"
	"log"
	"os"

	"github.com/Shahzad-Ali-44/TaskMate/internal/buildinfo"
	"github.com/Shahzad-Ali-44/TaskMate/internal/client/cli"
	"github.com/Shahzad-Ali-44/TaskMate/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
