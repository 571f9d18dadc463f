package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zvz23/valuation-app-sub001/internal/db"
	"github.com/zvz23/valuation-app-sub001/internal/maps"
	"github.com/zvz23/valuation-app-sub001/internal/server"
	"github.com/zvz23/valuation-app-sub001/internal/storage"
	"github.com/zvz23/valuation-app-sub001/internal/store"
	"github.com/zvz23/valuation-app-sub001/pkg/types"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	recordRepo := store.NewRecordRepository(pool)

	uploader, err := buildUploader(ctx, config)
	if err != nil {
		return err
	}

	mapsClient := maps.NewClient(config.GoogleMapsAPIKey, time.Duration(config.MapsTimeoutSec)*time.Second)

	srv := server.New(config, logger, recordRepo, uploader, mapsClient)

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}

func buildUploader(ctx context.Context, config *types.Config) (storage.Uploader, error) {
	if config.StorageProvider == "s3" {
		awsConfig, err := loadAWSConfig(ctx)
		if err != nil {
			return nil, err
		}

		s3Client := s3.NewFromConfig(awsConfig)
		return storage.NewS3Storage(s3Client, config.StorageBucketName, config.S3PublicBaseURL), nil
	}

	return storage.NewGraphStorage(
		config.GraphTenantID,
		config.GraphClientID,
		config.GraphClientSecret,
		config.GraphDriveID,
	), nil
}
