package presentation

import (
	"github.com/RayLabsHQ/formatfuse-sub003/internal/diffsvc"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/textdiff"
)

// ResultDTO is the JSON shape of a diff result.
type ResultDTO struct {
	ID        string            `json:"id"`
	Mode      string            `json:"mode"`
	Algorithm string            `json:"algorithm"`
	Cached    bool              `json:"cached"`
	Stats     StatsDTO          `json:"stats"`
	Records   []textdiff.Record `json:"records"`
}

// StatsDTO carries the statistics plus a convenience identical flag.
type StatsDTO struct {
	Additions int  `json:"additions"`
	Deletions int  `json:"deletions"`
	Total     int  `json:"total"`
	Identical bool `json:"identical"`
}

// FromResult converts a service result to a DTO. Records is never null.
func FromResult(res diffsvc.Result) ResultDTO {
	records := res.Records
	if records == nil {
		records = []textdiff.Record{}
	}

	return ResultDTO{
		ID:        res.ID,
		Mode:      res.Mode.String(),
		Algorithm: res.Algorithm,
		Cached:    res.Cached,
		Stats:     FromStatistics(res.Stats),
		Records:   records,
	}
}

// FromStatistics converts engine statistics to a DTO.
func FromStatistics(stats textdiff.Statistics) StatsDTO {
	return StatsDTO{
		Additions: stats.Additions,
		Deletions: stats.Deletions,
		Total:     stats.Total,
		Identical: stats.Identical(),
	}
}
