package extract

import (
	"strings"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"
)

// Attributes are the structured fields inferred from a model name.
type Attributes struct {
	Power    string
	Contours models.Contours
	WiFi     bool

	// PowerRule and ContoursRule name the rule that decided each field.
	// Empty means the default was used.
	PowerRule    string
	ContoursRule string
}

// FromName infers power, circuit type and wifi from a free-text model name.
// It is a pure function of its input.
func FromName(modelName string) Attributes {
	upper := strings.ToUpper(modelName)

	power, powerRule := matchPower(upper)
	contours, contoursRule := matchContours(upper)

	return Attributes{
		Power:        power,
		Contours:     contours,
		WiFi:         matchWiFi(upper),
		PowerRule:    powerRule,
		ContoursRule: contoursRule,
	}
}
