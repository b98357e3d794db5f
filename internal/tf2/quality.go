// Package tf2 supplies the closed enumerations a SKU can reference:
// qualities, killstreak tiers, wears, sheens, killstreakers, paints,
// spells and strange parts. Every enumeration carries the stable integer
// encoding used by the SKU wire format.
package tf2

import (
	"strconv"
	"strings"
)

// Quality is an item quality. The numeric value is the wire encoding.
type Quality uint32

const (
	QualityNormal          Quality = 0
	QualityGenuine         Quality = 1
	QualityVintage         Quality = 3
	QualityUnusual         Quality = 5
	QualityUnique          Quality = 6
	QualityCommunity       Quality = 7
	QualityValve           Quality = 8
	QualitySelfMade        Quality = 9
	QualityStrange         Quality = 11
	QualityHaunted         Quality = 13
	QualityCollectors      Quality = 14
	QualityDecoratedWeapon Quality = 15
)

var qualityNames = map[Quality]string{
	QualityNormal:          "Normal",
	QualityGenuine:         "Genuine",
	QualityVintage:         "Vintage",
	QualityUnusual:         "Unusual",
	QualityUnique:          "Unique",
	QualityCommunity:       "Community",
	QualityValve:           "Valve",
	QualitySelfMade:        "Self-Made",
	QualityStrange:         "Strange",
	QualityHaunted:         "Haunted",
	QualityCollectors:      "Collector's",
	QualityDecoratedWeapon: "Decorated Weapon",
}

// QualityFromValue maps a wire encoding to a Quality.
func QualityFromValue(v uint32) (Quality, bool) {
	q := Quality(v)
	if _, ok := qualityNames[q]; !ok {
		return 0, false
	}
	return q, true
}

// QualityFromName maps a display name to a Quality, ignoring case.
func QualityFromName(name string) (Quality, bool) {
	for q, n := range qualityNames {
		if strings.EqualFold(n, name) {
			return q, true
		}
	}
	return 0, false
}

func (q Quality) String() string {
	if n, ok := qualityNames[q]; ok {
		return n
	}
	return "Quality(" + strconv.FormatUint(uint64(q), 10) + ")"
}
