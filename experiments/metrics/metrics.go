// Package metrics holds per-game campaign records and their export.
package metrics

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// GameRecord captures one completed game of a campaign.
type GameRecord struct {
	ID        int
	AgentX    string
	AgentO    string
	Referee   string
	Outcome   string
	Steps     int
	StartTime time.Time
	Duration  time.Duration
}

// Summary aggregates game length over a campaign.
type Summary struct {
	Games       int
	MeanSteps   float64
	StdDevSteps float64
}

// Summarize computes the game-length distribution of a campaign.
func Summarize(records []GameRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	steps := make([]float64, len(records))
	for i, record := range records {
		steps[i] = float64(record.Steps)
	}

	return Summary{
		Games:       len(records),
		MeanSteps:   stat.Mean(steps, nil),
		StdDevSteps: stat.StdDev(steps, nil),
	}
}
