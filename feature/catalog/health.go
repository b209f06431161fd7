package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Budomar/ProductCatalog/core/database"
	"github.com/Budomar/ProductCatalog/feature/catalog/models"
	"github.com/Budomar/ProductCatalog/feature/catalog/snapshot"

	"go.uber.org/zap"
)

// Health statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// HealthReport is the result of a health check.
type HealthReport struct {
	Status    string         `json:"status"`
	Snapshot  SnapshotHealth `json:"snapshot"`
	Schema    SchemaHealth   `json:"schema"`
	Products  int64          `json:"products"`
	Errors    []string       `json:"errors"`
	CheckedAt time.Time      `json:"checked_at"`
}

// Healthy reports whether every check passed.
func (r *HealthReport) Healthy() bool {
	return r.Status == StatusOK
}

// SnapshotHealth describes the fallback snapshot.
type SnapshotHealth struct {
	Location    string     `json:"location,omitempty"`
	Present     bool       `json:"present"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	AgeHours    float64    `json:"age_hours,omitempty"`
	Records     int        `json:"records,omitempty"`
	Status      string     `json:"status"`
}

// SchemaHealth describes the products table.
type SchemaHealth struct {
	Table          string   `json:"table"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"`
}

// CheckHealth inspects the snapshot age and the store schema. Check failures
// end up in the report; only a nil service dependency is returned as an error.
func (s *Service) CheckHealth(ctx context.Context) (*HealthReport, error) {
	if s.store == nil {
		return nil, fmt.Errorf("store is not configured")
	}

	report := &HealthReport{
		Status:    StatusOK,
		Errors:    []string{},
		CheckedAt: time.Now(),
	}

	// 1. Snapshot freshness
	report.Snapshot = s.checkSnapshot(ctx, report)

	// 2. Schema
	report.Schema = SchemaHealth{
		Table:          models.Product{}.TableName(),
		MissingColumns: []string{},
		Status:         StatusOK,
	}
	missing, err := database.MissingColumns(s.store.DB(), report.Schema.Table, models.ProductColumns)
	switch {
	case err != nil:
		report.fail(fmt.Sprintf("Failed to inspect table %s: %v", report.Schema.Table, err))
		report.Schema.Status = StatusError
	case len(missing) > 0:
		report.fail(fmt.Sprintf("Table %s is missing columns", report.Schema.Table))
		report.Schema.MissingColumns = missing
		report.Schema.Status = StatusError
	}

	// 3. Product count
	if report.Schema.Status == StatusOK {
		st, err := s.store.Stats(ctx)
		if err != nil {
			report.fail(err.Error())
		} else {
			report.Products = st.Total
		}
	}

	if !report.Healthy() {
		s.logger.Warn("Catalog health check failed", zap.Strings("errors", report.Errors))
	}
	return report, nil
}

func (s *Service) checkSnapshot(ctx context.Context, report *HealthReport) SnapshotHealth {
	h := SnapshotHealth{Status: StatusOK}
	if s.snapshots == nil {
		h.Status = StatusError
		report.fail("No snapshot store configured")
		return h
	}
	h.Location = s.snapshots.Location()

	snap, err := s.snapshots.Load(ctx)
	switch {
	case errors.Is(err, snapshot.ErrNotFound):
		h.Status = StatusError
		report.fail("Snapshot has never been written")
		return h
	case err != nil:
		h.Status = StatusError
		report.fail(fmt.Sprintf("Snapshot unreadable: %v", err))
		return h
	}

	age := time.Since(snap.LastUpdated)
	h.Present = true
	h.LastUpdated = &snap.LastUpdated
	h.AgeHours = age.Hours()
	h.Records = len(snap.Records)
	if age > s.cfg.SnapshotMaxAge() {
		h.Status = StatusError
		report.fail(fmt.Sprintf("Snapshot is %.1f hours old", h.AgeHours))
	}
	return h
}

func (r *HealthReport) fail(msg string) {
	r.Status = StatusError
	r.Errors = append(r.Errors, msg)
}
