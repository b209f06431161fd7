package classify

import (
	"path"
	"strconv"
	"strings"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"
)

// markerRule maps any of its markers, found as a substring, to a result.
type markerRule[T any] struct {
	markers []string
	result  T
}

func firstMatch[T any](text string, rules []markerRule[T], fallback T) (T, bool) {
	for _, r := range rules {
		for _, m := range r.markers {
			if strings.Contains(text, m) {
				return r.result, true
			}
		}
	}
	return fallback, false
}

// Matched against the lower-cased name.
var categoryRules = []markerRule[models.Category]{
	{[]string{"meteor"}, models.CategoryMeteor},
	{[]string{"laggartt", "газ"}, models.CategoryLaggartt},
	{[]string{"devotion"}, models.CategoryDevotion},
	{[]string{"mk"}, models.CategoryMK},
}

// Matched against the upper-cased name. Sub-models come before their family.
var imageRules = []markerRule[string]{
	{[]string{"METEOR T2"}, "meteor-t2.jpg"},
	{[]string{"METEOR C30"}, "meteor-c30.jpg"},
	{[]string{"METEOR B30"}, "meteor-b30.jpg"},
	{[]string{"METEOR B20"}, "meteor-b20.jpg"},
	{[]string{"METEOR C11"}, "meteor-c11.jpg"},
	{[]string{"METEOR Q3"}, "meteor-q3.jpg"},
	{[]string{"METEOR M30"}, "meteor-m30.jpg"},
	{[]string{"METEOR M6"}, "meteor-m6.jpg"},
	{[]string{"LAGGARTT", "ГАЗ 6000"}, "laggartt.jpg"},
	{[]string{"DEVOTION"}, "devotion.jpg"},
	{[]string{"MK"}, "mk.jpg"},
}

// DefaultImage is used when no image rule matches.
const DefaultImage = "default.jpg"

// Category returns the product family of a model name, or other.
func Category(modelName string) models.Category {
	c, _ := firstMatch(strings.ToLower(modelName), categoryRules, models.CategoryOther)
	return c
}

// PowerTier buckets a power value: up to 20 is low, up to 30 medium, above that high.
func PowerTier(power string) models.PowerTier {
	kw, err := strconv.Atoi(strings.TrimSpace(power))
	if err != nil {
		return models.PowerTierUnknown
	}
	switch {
	case kw <= 20:
		return models.PowerTierLow
	case kw <= 30:
		return models.PowerTierMedium
	default:
		return models.PowerTierHigh
	}
}

// StatusLabel returns the display label for a stock quantity.
func StatusLabel(quantity int) string {
	if quantity > 0 {
		return models.StatusInStock
	}
	return models.StatusOutOfStock
}

// Images resolves image references under a base path or URL.
type Images struct {
	base string
}

// NewImages creates a resolver rooted at base, e.g. "/static" or a bucket URL.
func NewImages(base string) Images {
	return Images{base: strings.TrimRight(base, "/")}
}

// Ref returns the image reference for a model name. ok is false when the default was used.
func (i Images) Ref(modelName string) (ref string, ok bool) {
	file, ok := firstMatch(strings.ToUpper(modelName), imageRules, DefaultImage)
	if i.base == "" {
		return file, ok
	}
	if strings.Contains(i.base, "://") {
		return i.base + "/" + file, ok
	}
	return path.Join(i.base, file), ok
}
