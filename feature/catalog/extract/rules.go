package extract

import (
	"regexp"
	"strings"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"
)

// powerRule captures the power digits of one model line.
type powerRule struct {
	name  string
	re    *regexp.Regexp
	group int
}

// Evaluated top to bottom against the upper-cased name; first match wins.
// Model-line codes must start a word so LL1GBQ30 is not read as a Q3 unit.
var powerRules = []powerRule{
	{"meteor-line", regexp.MustCompile(`\b(T2|M6|M30|B20|B30|C30|C11|Q3)[^\d]*(\d+)`), 2},
	{"unit-suffix", regexp.MustCompile(`(\d+)\s*(C|H|С|Х|КВТ|KW)`), 1},
	{"gas-6000", regexp.MustCompile(`ГАЗ\s*6000\s*(\d+)`), 1},
	{"mk-line", regexp.MustCompile(`MK\s*(\d+)`), 1},
	{"ll1gbq", regexp.MustCompile(`LL1GBQ(\d+)`), 1},
	{"ln1gbq", regexp.MustCompile(`LN1GBQ(\d+)`), 1},
}

// bareNumber is the fallback: the first standalone 2 or 3 digit number.
var bareNumber = regexp.MustCompile(`\b(\d{2,3})\b`)

// contoursRule maps a marker to a circuit type.
type contoursRule struct {
	name   string
	re     *regexp.Regexp
	result models.Contours
}

// A Latin marker only needs a space or dash before it ("WIFI H24", "24-H"),
// a Cyrillic one needs a space or the end after it ("24Н ") since it also
// starts ordinary words. Either letter closing a bracket counts ("(24H)").
// Single-circuit markers are checked first.
var contoursRules = []contoursRule{
	{"single-marker", regexp.MustCompile(`(?:^|[\s\-])H|[HН]\)|Н(?:\s|$)`), models.ContoursSingle},
	{"double-marker", regexp.MustCompile(`(?:^|[\s\-])C|[CС]\)|С(?:\s|$)`), models.ContoursDouble},
	{"wall-mount", regexp.MustCompile(`НАСТЕННЫЙ`), models.ContoursDouble},
}

// defaultContours applies when no rule matches.
const defaultContours = models.ContoursDouble

// wifiMarkers are matched as substrings of the upper-cased name.
var wifiMarkers = []string{"WI-FI", "WIFI", "ВАЙ-ФАЙ", "WI FI"}

func matchPower(upper string) (power, rule string) {
	for _, r := range powerRules {
		if m := r.re.FindStringSubmatch(upper); m != nil {
			return m[r.group], r.name
		}
	}
	if m := bareNumber.FindStringSubmatch(upper); m != nil {
		return m[1], "bare-number"
	}
	return models.PowerUnspecified, ""
}

func matchContours(upper string) (models.Contours, string) {
	for _, r := range contoursRules {
		if r.re.MatchString(upper) {
			return r.result, r.name
		}
	}
	return defaultContours, ""
}

func matchWiFi(upper string) bool {
	for _, m := range wifiMarkers {
		if strings.Contains(upper, m) {
			return true
		}
	}
	return false
}
