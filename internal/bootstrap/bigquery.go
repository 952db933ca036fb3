package bootstrap

import (
	"context"

	"cloud.google.com/go/bigquery"
)

func InitBigQuery(ctx context.Context, projectID string) (*bigquery.Client, error) {
	return bigquery.NewClient(ctx, projectID)
}
