package sync

import (
	"github.com/Budomar/ProductCatalog/feature/catalog/classify"
	"github.com/Budomar/ProductCatalog/feature/catalog/extract"
	"github.com/Budomar/ProductCatalog/feature/catalog/models"
	"github.com/Budomar/ProductCatalog/feature/catalog/normalize"

	"go.uber.org/zap"
)

const descriptionPrefix = "Газовый котел "

// buildRecords derives a CanonicalRecord from every merged row.
func (o *Orchestrator) buildRecords(rows []models.MergedRow, log *zap.Logger) []models.CanonicalRecord {
	records := make([]models.CanonicalRecord, 0, len(rows))
	for _, row := range rows {
		attrs := extract.FromName(row.ModelName)
		category := classify.Category(row.ModelName)
		image, imageMatched := o.images.Ref(row.ModelName)

		rec := models.CanonicalRecord{
			Article:     row.Article,
			ModelName:   row.ModelName,
			Description: descriptionPrefix + row.ModelName,
			Price:       row.Price,
			Quantity:    row.Quantity,
			InStock:     row.Quantity > 0,
			Power:       attrs.Power,
			Contours:    attrs.Contours,
			WiFi:        attrs.WiFi,
			Category:    category,
			PowerTier:   classify.PowerTier(attrs.Power),
			ImageRef:    image,
			StatusLabel: classify.StatusLabel(row.Quantity),
		}

		if attrs.PowerRule == "" {
			o.defaulted(log, row, "power", string(rec.Power))
		}
		if attrs.ContoursRule == "" {
			o.defaulted(log, row, "contours", string(rec.Contours))
		}
		if category == models.CategoryOther {
			o.defaulted(log, row, "category", string(category))
		}
		if !imageMatched {
			o.defaulted(log, row, "image", image)
		}

		records = append(records, rec)
	}
	return records
}

func (o *Orchestrator) defaulted(log *zap.Logger, row models.MergedRow, field, value string) {
	o.metrics.FieldDefaulted(field)
	log.Debug("Attribute defaulted",
		zap.String("article", row.Article),
		zap.String("model", row.ModelName),
		zap.String("field", field),
		zap.String("value", value))
}

func (o *Orchestrator) logDegradations(log *zap.Logger, degraded []normalize.Degradation) {
	for _, d := range degraded {
		o.metrics.FieldDefaulted(d.Field)
		log.Warn("Cell degraded to default",
			zap.String("source", string(d.Source)),
			zap.Int("row", d.Row),
			zap.String("article", d.Article),
			zap.String("field", d.Field),
			zap.String("raw", d.Raw))
	}
}
