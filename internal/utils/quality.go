package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/ItemForge_Go/internal/domain"
)

// qualityKeys are the lowercase catalog names of each quality tier
var qualityKeys = []string{
	domain.QualityPoor:      "poor",
	domain.QualityNormal:    "common",
	domain.QualityUncommon:  "uncommon",
	domain.QualityRare:      "rare",
	domain.QualityEpic:      "epic",
	domain.QualityLegendary: "legendary",
	domain.QualityArtifact:  "artifact",
	domain.QualityHeirloom:  "heirloom",
	domain.QualityWowToken:  "wow token",
}

// QualityKey returns the lowercase catalog name of a quality, or "unknown".
func QualityKey(q domain.ItemQuality) string {
	if int(q) >= len(qualityKeys) {
		return "unknown"
	}
	return qualityKeys[q]
}

// QualityName returns the display name of a quality, e.g. "Wow Token".
func QualityName(q domain.ItemQuality) string {
	return cases.Title(language.English).String(QualityKey(q))
}

// ParseQuality resolves a catalog or display name back to its quality.
func ParseQuality(name string) (domain.ItemQuality, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, k := range qualityKeys {
		if k == key {
			return domain.ItemQuality(i), true
		}
	}
	return 0, false
}
