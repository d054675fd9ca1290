package main

import (
	"context"
	"fmt"
	"os"

	"athwela/internal/cli"
	appconfig "athwela/internal/config"
	"athwela/internal/infrastructure/database"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	connect := func(ctx context.Context, cfg appconfig.Config) (database.TableCreator, error) {
		awsCfg, err := database.NewDynamoDBConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return database.NewDynamoDBClient(awsCfg), nil
	}

	if err := cli.NewRootCommand(connect).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
