package main

// go run cmd/harbormaster/main.go

import (
	"context"
	"harbormaster/internal/app/config"
	"harbormaster/internal/app/dsn"
	"harbormaster/internal/app/handler"
	"harbormaster/internal/app/pkg"
	"harbormaster/internal/app/repository"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title        Harbormaster API
// @version      1.0
// @description  Dock, ship and hauler registry. Docks never hold more ships than their capacity.
// @BasePath     /

const bootstrapTimeout = 30 * time.Second

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}
	gin.SetMode(conf.GinMode)

	rep, errRep := repository.New(dsn.FromEnv())
	if errRep != nil {
		logrus.Fatalf("error initializing repository: %v", errRep)
	}
	defer rep.Close()

	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	defer cancel()

	if err := rep.Migrate(ctx); err != nil {
		logrus.Fatalf("error migrating schema: %v", err)
	}
	if conf.SeedOnStartup {
		if err := rep.Seed(ctx); err != nil {
			logrus.Fatalf("error seeding database: %v", err)
		}
	}

	if conf.RedisEndpoint != "" {
		cache, err := repository.DialHaulerCache(ctx, conf.RedisEndpoint, conf.RedisPassword, conf.HaulerCacheTTL)
		if err != nil {
			logrus.Warnf("redis unavailable, hauler cache disabled: %v", err)
		} else {
			defer cache.Close()
			rep.WithHaulerCache(cache)
		}
	}

	var photos *repository.PhotoStore
	if conf.MinioEndpoint != "" {
		photos, err = repository.NewPhotoStore(ctx, conf.MinioEndpoint, conf.MinioAccessKey, conf.MinioSecretKey, conf.MinioBucket, conf.MinioUseSSL)
		if err != nil {
			logrus.Warnf("minio unavailable, ship photos disabled: %v", err)
			photos = nil
		}
	}

	hand := handler.NewHandler(rep, photos)
	application := pkg.NewApp(conf, hand.NewRouter())
	if err := application.RunApp(); err != nil {
		logrus.Errorf("server error: %v", err)
	}
}
