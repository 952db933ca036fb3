package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/pinkswindowcleaning/pulse-backend/internal/errs"
	"github.com/pinkswindowcleaning/pulse-backend/internal/kpi"
	"github.com/pinkswindowcleaning/pulse-backend/internal/models"
)

// warehouseStore reads the quote and job views from BigQuery. Query
// timeouts belong to the caller's context; the store itself imposes none.
type warehouseStore struct {
	client  *bigquery.Client
	dataset string
}

func NewWarehouseStore(client *bigquery.Client, dataset string) *warehouseStore {
	return &warehouseStore{client: client, dataset: dataset}
}

const quoteQuery = `
SELECT quote_number, client_name, salesperson, status, total_dollars,
       created_at, sent_date, converted_date, days_to_convert
FROM ` + "`%s.v_quotes`"

const jobQuery = `
SELECT Job_Number, Client_name, Date, Calculated_Value, Job_type,
       SalesPerson, Date_Converted
FROM ` + "`%s.v_jobs`"

func (s *warehouseStore) Quotes(ctx context.Context) ([]models.Quote, error) {
	rows, err := s.read(ctx, fmt.Sprintf(quoteQuery, s.dataset), "quotes")
	if err != nil {
		return nil, err
	}
	quotes := make([]models.Quote, 0, len(rows))
	for _, row := range rows {
		quotes = append(quotes, models.NormalizeQuote(row, kpi.Location()))
	}
	return quotes, nil
}

func (s *warehouseStore) Jobs(ctx context.Context) ([]models.Job, error) {
	rows, err := s.read(ctx, fmt.Sprintf(jobQuery, s.dataset), "jobs")
	if err != nil {
		return nil, err
	}
	jobs := make([]models.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, models.NormalizeJob(row, kpi.Location()))
	}
	return jobs, nil
}

// read runs a query and collects every row as a loose column map; the
// normalization layer owns type coercion, so the store never fails on a
// malformed value, only on query/iterator errors.
func (s *warehouseStore) read(ctx context.Context, sql, what string) ([]map[string]any, error) {
	it, err := s.client.Query(sql).Read(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("query", "failed to query "+what, err)
	}

	var rows []map[string]any
	for {
		var row map[string]bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to read "+what+" row", err)
		}
		loose := make(map[string]any, len(row))
		for k, v := range row {
			loose[k] = v
		}
		rows = append(rows, loose)
	}
	return rows, nil
}
