package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/hrverify/internal/buildinfo"
	"github.com/dmitrijs2005/hrverify/internal/client/cli"
	"github.com/dmitrijs2005/hrverify/internal/client/config"
	"github.com/dmitrijs2005/hrverify/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
