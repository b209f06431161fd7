package models

// PriceRow is a pricing line after cell parsing.
type PriceRow struct {
	Article   string
	ModelName string
	Price     float64
}

// StockRow is a stock line after cell parsing.
type StockRow struct {
	Article  string
	Quantity int
}

// MergedRow is a priced article joined with its stock quantity.
type MergedRow struct {
	Article   string
	ModelName string
	Price     float64
	Quantity  int
}

// Contours is the boiler circuit type.
type Contours string

const (
	ContoursSingle Contours = "single"
	ContoursDouble Contours = "double"
)

// Label returns the display label.
func (c Contours) Label() string {
	if c == ContoursSingle {
		return "Одноконтурный"
	}
	return "Двухконтурный"
}

// Category is the product family.
type Category string

const (
	CategoryMeteor   Category = "meteor"
	CategoryLaggartt Category = "laggartt"
	CategoryDevotion Category = "devotion"
	CategoryMK       Category = "mk"
	CategoryOther    Category = "other"
)

// PowerTier buckets the rated power.
type PowerTier string

const (
	PowerTierLow     PowerTier = "low"
	PowerTierMedium  PowerTier = "medium"
	PowerTierHigh    PowerTier = "high"
	PowerTierUnknown PowerTier = "unknown"
)

// PowerUnspecified is the power value when nothing in the name looks like a rating.
const PowerUnspecified = "unspecified"

// Status labels shown to customers.
const (
	StatusInStock    = "В наличии"
	StatusOutOfStock = "Нет в наличии"
)

// CanonicalRecord is the fully derived product built fresh on every sync.
type CanonicalRecord struct {
	Article     string    `json:"article"`
	ModelName   string    `json:"model_name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	InStock     bool      `json:"in_stock"`
	Power       string    `json:"power"`
	Contours    Contours  `json:"contours"`
	WiFi        bool      `json:"wifi"`
	Category    Category  `json:"category"`
	PowerTier   PowerTier `json:"power_tier"`
	ImageRef    string    `json:"image_ref"`
	StatusLabel string    `json:"status_label"`
}

// Key returns the reconciliation key.
func (r CanonicalRecord) Key() string {
	return r.Article
}
