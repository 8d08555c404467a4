package main

import (
	"context"
	"log"
	"os"

	"github.com/Shahzad-Ali-44/TaskMate/internal/buildinfo"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
