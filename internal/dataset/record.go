// Package dataset holds the sales records rendered by salesreel and the pure
// helpers (sorting, aggregation, export) the timeline and views depend on.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Platform is the console code a game was originally released on.
type Platform string

const (
	PlatformNES     Platform = "NES"
	PlatformSNES    Platform = "SNES"
	PlatformGB      Platform = "GB"
	PlatformGBC     Platform = "GBC"
	PlatformN64     Platform = "N64"
	PlatformGBA     Platform = "GBA"
	PlatformGC      Platform = "GC"
	PlatformDS      Platform = "DS"
	PlatformWii     Platform = "Wii"
	Platform3DS     Platform = "3DS"
	PlatformWiiU    Platform = "Wii U"
	PlatformSwitch  Platform = "Switch"
	PlatformSwitch2 Platform = "Switch 2"
)

// Platforms lists every known platform code in release order.
var Platforms = []Platform{
	PlatformNES, PlatformSNES, PlatformGB, PlatformGBC, PlatformN64, PlatformGBA,
	PlatformGC, PlatformDS, PlatformWii, Platform3DS, PlatformWiiU, PlatformSwitch,
	PlatformSwitch2,
}

// Valid reports whether p is one of the known platform codes.
func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// SalesRecord is one game with its North American sales in millions of units.
// Field order defines the export key order.
type SalesRecord struct {
	Title     string   `json:"title" yaml:"title" bson:"title"`
	Year      int      `json:"year" yaml:"year" bson:"year"`
	NASales   float64  `json:"naSales" yaml:"naSales" bson:"naSales"`
	Platform  Platform `json:"platform" yaml:"platform" bson:"platform"`
	BoxArtURL string   `json:"boxArtUrl,omitempty" yaml:"boxArtUrl,omitempty" bson:"boxArtUrl,omitempty"`
}

// ErrInvalidRecord is wrapped by every validation failure.
var ErrInvalidRecord = errors.New("invalid sales record")

// Validate checks the fields a provider must guarantee.
func (r SalesRecord) Validate() error {
	switch {
	case strings.TrimSpace(r.Title) == "":
		return fmt.Errorf("%w: empty title", ErrInvalidRecord)
	case math.IsNaN(r.NASales) || math.IsInf(r.NASales, 0) || r.NASales < 0:
		return fmt.Errorf("%w: %q has sales %v", ErrInvalidRecord, r.Title, r.NASales)
	case !r.Platform.Valid():
		return fmt.Errorf("%w: %q has unknown platform %q", ErrInvalidRecord, r.Title, r.Platform)
	}
	return nil
}

// ValidateAll validates every record and reports the first failure with its index.
func ValidateAll(records []SalesRecord) error {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// Clone returns a copy that can be reordered without touching the input.
func Clone(records []SalesRecord) []SalesRecord {
	out := make([]SalesRecord, len(records))
	copy(out, records)
	return out
}

// SortedByYear returns a copy ordered by release year, oldest first.
// Records of the same year keep their relative order.
func SortedByYear(records []SalesRecord) []SalesRecord {
	out := Clone(records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// SortedBySales returns a copy ordered by sales, lowest first.
func SortedBySales(records []SalesRecord) []SalesRecord {
	out := Clone(records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].NASales < out[j].NASales })
	return out
}

// MaxSales returns the largest sales figure, or 0 for an empty list.
func MaxSales(records []SalesRecord) float64 {
	max := 0.0
	for _, r := range records {
		if r.NASales > max {
			max = r.NASales
		}
	}
	return max
}

// TotalSales is the plain sum of all sales figures.
func TotalSales(records []SalesRecord) float64 {
	total := 0.0
	for _, r := range records {
		total += r.NASales
	}
	return total
}

// PlatformTotal is the aggregated sales of one platform.
type PlatformTotal struct {
	Platform Platform
	NASales  float64
	Games    int
}

// AggregateByPlatform sums sales per platform and orders the result by total,
// highest first. Ties fall back to the platform's first appearance in records.
func AggregateByPlatform(records []SalesRecord) []PlatformTotal {
	index := map[Platform]int{}
	var totals []PlatformTotal
	for _, r := range records {
		i, ok := index[r.Platform]
		if !ok {
			i = len(totals)
			index[r.Platform] = i
			totals = append(totals, PlatformTotal{Platform: r.Platform})
		}
		totals[i].NASales += r.NASales
		totals[i].Games++
	}
	sort.SliceStable(totals, func(i, j int) bool { return totals[i].NASales > totals[j].NASales })
	return totals
}
