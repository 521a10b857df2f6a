package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
}

// NewStatsAt starts the run clock at start
func NewStatsAt(start time.Time) *Stats {
	return &Stats{StartTime: start}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// AverageGenerationsPerSecond is the generation count divided by the runtime as of now
func (s *Stats) AverageGenerationsPerSecond(now time.Time) float64 {
	runtime := s.Runtime(now).Seconds()
	if runtime <= 0 {
		return 0
	}
	return float64(s.TotalGenerations) / runtime
}

// Runtime returns how long the run has lasted as of now
func (s *Stats) Runtime(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}
