package extract

import (
	"testing"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		power    string
		contours models.Contours
		wifi     bool
	}{
		{"Meteor single with wifi", "METEOR B30 WIFI H 24", "24", models.ContoursSingle, true},
		{"Meteor double", "Meteor C30 24 C", "24", models.ContoursDouble, false},
		{"Unit suffix", "Котел 18 кВт", "18", models.ContoursDouble, false},
		{"Gas 6000", "ГАЗ 6000 24", "24", models.ContoursDouble, false},
		{"MK line", "MK 12 Н", "12", models.ContoursSingle, false},
		{"Bare number fallback", "Devotion 35 (Н)", "35", models.ContoursSingle, false},
		{"Nothing recognisable", "Laggartt", models.PowerUnspecified, models.ContoursDouble, false},
		{"Cyrillic wifi", "Devotion 28 вай-фай", "28", models.ContoursDouble, true},
		{"Wall mount keeps double", "Настенный котел", models.PowerUnspecified, models.ContoursDouble, false},
		{"Dash marker", "METEOR T2 24-H", "24", models.ContoursSingle, false},
		{"Marker glued to power", "METEOR B30 WIFI H24", "24", models.ContoursSingle, true},
		{"Marker in brackets", "METEOR B30 (24H)", "24", models.ContoursSingle, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromName(tt.model)
			assert.Equal(t, tt.power, got.Power)
			assert.Equal(t, tt.contours, got.Contours)
			assert.Equal(t, tt.wifi, got.WiFi)
		})
	}
}

func TestFromName_Deterministic(t *testing.T) {
	names := []string{"METEOR B30 WIFI H 24", "ГАЗ 6000 24", "", "LL1GBQ30", "что-то 123 С"}
	for _, n := range names {
		first := FromName(n)
		for i := 0; i < 3; i++ {
			FromName("METEOR M30 40 C") // unrelated call in between
			assert.Equal(t, first, FromName(n), n)
		}
	}
}

func TestPowerRules(t *testing.T) {
	tests := []struct {
		upper string
		power string
		rule  string
	}{
		{"METEOR T2 24 H", "24", "meteor-line"},
		{"METEOR Q3 WI-FI 32", "32", "meteor-line"},
		{"КОТЕЛ 24 КВТ", "24", "unit-suffix"},
		{"LAGGARTT 40KW", "40", "unit-suffix"},
		{"ГАЗ 6000 24", "24", "gas-6000"},
		{"MK 18", "18", "mk-line"},
		{"LL1GBQ30", "30", "ll1gbq"},
		{"LN1GBQ24", "24", "ln1gbq"},
		{"DEVOTION 35", "35", "bare-number"},
		{"DEVOTION 1000", models.PowerUnspecified, ""},
		{"", models.PowerUnspecified, ""},
	}

	for _, tt := range tests {
		t.Run(tt.upper, func(t *testing.T) {
			power, rule := matchPower(tt.upper)
			assert.Equal(t, tt.power, power)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

func TestContoursRules(t *testing.T) {
	tests := []struct {
		upper string
		want  models.Contours
		rule  string
	}{
		{"METEOR B30 H 24", models.ContoursSingle, "single-marker"},
		{"METEOR B30 24 Н", models.ContoursSingle, "single-marker"},
		{"METEOR (H)", models.ContoursSingle, "single-marker"},
		{"METEOR C30 24 C", models.ContoursDouble, "double-marker"},
		{"METEOR 24-С", models.ContoursDouble, "double-marker"},
		{"КОТЕЛ НАСТЕННЫЙ 24", models.ContoursDouble, "wall-mount"},
		{"METEOR C30 24", models.ContoursDouble, "double-marker"},
		{"METEOR B30 WIFI H24", models.ContoursSingle, "single-marker"},
		{"METEOR B30 (24H)", models.ContoursSingle, "single-marker"},
		{"METEOR B30 24Н", models.ContoursSingle, "single-marker"},
		{"METEOR B30 24С (NEW)", models.ContoursDouble, "double-marker"},
		{"THERM 24", models.ContoursDouble, ""},
	}

	for _, tt := range tests {
		t.Run(tt.upper, func(t *testing.T) {
			got, rule := matchContours(tt.upper)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

func TestWiFiMarkers(t *testing.T) {
	assert.True(t, matchWiFi("METEOR WI-FI"))
	assert.True(t, matchWiFi("METEOR WIFI"))
	assert.True(t, matchWiFi("METEOR WI FI"))
	assert.True(t, matchWiFi("METEOR ВАЙ-ФАЙ"))
	assert.False(t, matchWiFi("METEOR WF"))
}
