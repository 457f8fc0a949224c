package analytics

import (
	"math"
	"sort"

	"github.com/stonksbro/nsepulse/internal/domain/models"
)

// SectorPerformance is one sector's aggregate move, averaged over the
// quotes available for its constituent tickers.
type SectorPerformance struct {
	Sector        string   `json:"sector" example:"IT"`
	ChangePercent float64  `json:"change_percent" example:"1.25"`
	Tickers       []string `json:"tickers"`
	QuotedCount   int      `json:"quoted_count"`
}

// SectorHeatmap averages change percent per sector bucket from a bulk
// quote result. Tickers missing from quotes are skipped; a sector with no
// quoted ticker is dropped. Output is sorted best-performing first.
func SectorHeatmap(quotes map[string]models.Quote, buckets map[string][]string) []SectorPerformance {
	out := make([]SectorPerformance, 0, len(buckets))
	for sector, tickers := range buckets {
		var sum float64
		var n int
		for _, t := range tickers {
			q, ok := quotes[t]
			if !ok {
				continue
			}
			sum += q.ChangePercent
			n++
		}
		if n == 0 {
			continue
		}
		out = append(out, SectorPerformance{
			Sector:        sector,
			ChangePercent: math.Round(sum/float64(n)*100) / 100,
			Tickers:       tickers,
			QuotedCount:   n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ChangePercent != out[j].ChangePercent {
			return out[i].ChangePercent > out[j].ChangePercent
		}
		return out[i].Sector < out[j].Sector
	})
	return out
}
