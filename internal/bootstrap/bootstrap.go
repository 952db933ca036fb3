package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/bigquery"

	"github.com/pinkswindowcleaning/pulse-backend/internal/config"
	"github.com/pinkswindowcleaning/pulse-backend/pkg/logger"
)

type Bootstrap struct {
	Log      *slog.Logger
	BigQuery *bigquery.Client
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	bs.BigQuery, err = InitBigQuery(applicationCtx, cfg.ProjectID)
	if err != nil {
		return bs, err
	}

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.BigQuery != nil {
		bs.BigQuery.Close()
	}
}
