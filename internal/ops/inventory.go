package ops

import (
	"database/sql"

	"github.com/tf2tools/skup/internal/db"
	"github.com/tf2tools/skup/internal/tf2"
)

// QualityBucket is one row of the inventory breakdown, with the quality's
// display name attached.
type QualityBucket struct {
	Quality     uint32 `json:"quality"`
	QualityName string `json:"quality_name"`
	Count       int    `json:"count"`
}

// InventoryOutput contains the result of the Inventory operation.
type InventoryOutput struct {
	Total     int             `json:"total"`
	Qualities []QualityBucket `json:"qualities"`
}

// Inventory aggregates active items by quality.
func Inventory(database *sql.DB) (*InventoryOutput, error) {
	counts, err := db.CountByQuality(database)
	if err != nil {
		return nil, err
	}

	out := &InventoryOutput{
		Qualities: make([]QualityBucket, 0, len(counts)),
	}
	for _, c := range counts {
		out.Total += c.Count
		out.Qualities = append(out.Qualities, QualityBucket{
			Quality:     c.Quality,
			QualityName: tf2.Quality(c.Quality).String(),
			Count:       c.Count,
		})
	}

	return out, nil
}
