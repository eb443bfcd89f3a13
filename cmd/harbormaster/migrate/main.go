package main

import (
	"context"
	"harbormaster/internal/app/config"
	"harbormaster/internal/app/dsn"
	"harbormaster/internal/app/repository"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	seed := pflag.Bool("seed", true, "insert sample rows into empty tables")
	pflag.Parse()

	config.LoadEnv()
	rep, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}
	defer rep.Close()

	ctx := context.Background()
	if err := rep.Migrate(ctx); err != nil {
		logrus.Fatalf("error migrating schema: %v", err)
	}
	if *seed {
		if err := rep.Seed(ctx); err != nil {
			logrus.Fatalf("error seeding database: %v", err)
		}
	}

	logrus.Info("Database migration completed")
}
