package mocks

import (
	"github.com/rocketscienceinc/tictactwo/internal/pkg/random"
)

// MockRandom replays queued values from Float64 and falls back to Default once the queue is drained.
type MockRandom struct {
	Float64Results []float64
	Default        float64

	index int
	calls int
}

var _ random.Random = (*MockRandom)(nil)

func NewMockRandom(values ...float64) *MockRandom {
	return &MockRandom{Float64Results: values}
}

func (that *MockRandom) Float64() float64 {
	that.calls++

	if that.index >= len(that.Float64Results) {
		return that.Default
	}

	result := that.Float64Results[that.index]
	that.index++

	return result
}

func (that *MockRandom) QueueFloat64(values ...float64) {
	that.Float64Results = append(that.Float64Results, values...)
}

// Calls returns how many values have been drawn.
func (that *MockRandom) Calls() int {
	return that.calls
}
