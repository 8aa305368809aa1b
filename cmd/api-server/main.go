package main

import (
	"Shelf/config"
	"Shelf/pkg/database"
	"Shelf/pkg/log"
	"Shelf/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)

	var cfg *config.Config
	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "affiliate product catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   path,
				Usage:   "config file path",
				EnvVars: []string{"SHELF_CONFIG"},
			},
		},
		Before: func(ctx *cli.Context) error {
			cfg = config.New(ctx.String("config"))
			log.SetDebug(cfg.Debug())
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					if err := database.Migrate(database.NewDB(cfg)); err != nil {
						return err
					}
					log.L.Info("migrate finished")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "insert demo tags, products and settings",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "seed", Value: 42, Usage: "random seed"},
				},
				Action: func(ctx *cli.Context) error {
					_, err := InitSeeder(cfg).Run(ctx.Context, ctx.Int64("seed"))
					return err
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server exited", zap.Error(err))
	}
}
