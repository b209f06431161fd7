package models

import "time"

// Specifications is the structured attribute block stored as JSON.
type Specifications struct {
	Power    string `json:"power"`
	Contours string `json:"contours"`
	WiFi     string `json:"wifi"`
}

// Product is the persisted catalog entry. Article is the only reconciliation key;
// ID, CreatedAt and ViewsCount belong to the store and survive every sync.
type Product struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Article        string         `gorm:"size:50;uniqueIndex;not null" json:"article"`
	Name           string         `gorm:"size:300;not null" json:"name"`
	Description    string         `gorm:"type:text" json:"description"`
	Price          float64        `gorm:"not null;default:0" json:"price"`
	Category       string         `gorm:"size:100;index" json:"category"`
	ImageURL       string         `gorm:"size:500" json:"image_url"`
	Specifications Specifications `gorm:"serializer:json;type:text" json:"specifications"`
	InStock        bool           `gorm:"not null;default:false" json:"in_stock"`
	StockQuantity  int            `gorm:"not null;default:0" json:"stock_quantity"`
	Power          string         `gorm:"size:20" json:"power"`
	Contours       string         `gorm:"size:20" json:"contours"`
	WiFi           bool           `gorm:"column:wifi;not null;default:false" json:"wifi"`
	Status         string         `gorm:"size:50" json:"status"`
	PowerLevel     string         `gorm:"size:20" json:"power_level"`
	ViewsCount     int            `gorm:"not null;default:0" json:"views_count"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// TableName pins the table name.
func (Product) TableName() string {
	return "products"
}

// ProductColumns are the columns the store relies on.
var ProductColumns = []string{
	"id", "article", "name", "description", "price", "category", "image_url",
	"specifications", "in_stock", "stock_quantity", "power", "contours", "wifi",
	"status", "power_level", "views_count", "created_at", "updated_at",
}

// NewProduct seeds a product from a record with a zero view count.
func NewProduct(rec CanonicalRecord) Product {
	var p Product
	p.Apply(rec)
	return p
}

// Apply overwrites every record-derived field and leaves store-owned fields alone.
func (p *Product) Apply(rec CanonicalRecord) {
	p.Article = rec.Article
	p.Name = rec.ModelName
	p.Description = rec.Description
	p.Price = rec.Price
	p.Category = string(rec.Category)
	p.ImageURL = rec.ImageRef
	p.Specifications = SpecificationsOf(rec)
	p.InStock = rec.InStock
	p.StockQuantity = rec.Quantity
	p.Power = rec.Power
	p.Contours = string(rec.Contours)
	p.WiFi = rec.WiFi
	p.Status = rec.StatusLabel
	p.PowerLevel = string(rec.PowerTier)
}

// DerivedColumns are the record-derived columns written by an in-place update.
var DerivedColumns = []string{
	"name", "description", "price", "category", "image_url", "specifications",
	"in_stock", "stock_quantity", "power", "contours", "wifi", "status", "power_level",
}

// SpecificationsOf renders the display attribute block.
func SpecificationsOf(rec CanonicalRecord) Specifications {
	power := rec.Power
	if power != PowerUnspecified {
		power += " кВт"
	}
	wifi := "Нет"
	if rec.WiFi {
		wifi = "Да"
	}
	return Specifications{
		Power:    power,
		Contours: rec.Contours.Label(),
		WiFi:     wifi,
	}
}
