package terrain

import (
	"sync"

	"github.com/chewxy/math32"
)

// MinMax is an elevation range value. The zero value is NOT empty; use
// NewMinMax or Clear.
type MinMax struct {
	Min float32
	Max float32
}

// NewMinMax returns an empty range.
func NewMinMax() MinMax {
	return MinMax{Min: math32.Inf(1), Max: math32.Inf(-1)}
}

// Clear resets the range to empty.
func (m *MinMax) Clear() {
	*m = NewMinMax()
}

// Empty reports whether nothing has been observed.
func (m MinMax) Empty() bool {
	return m.Min > m.Max
}

// Observe widens the range to include v.
func (m *MinMax) Observe(v float32) {
	m.Min = math32.Min(m.Min, v)
	m.Max = math32.Max(m.Max, v)
}

// Merge widens the range to include other.
func (m *MinMax) Merge(other MinMax) {
	if other.Empty() {
		return
	}
	m.Observe(other.Min)
	m.Observe(other.Max)
}

// Normalize maps v linearly from [Min, Max] to [0, 1], clamping outside
// values. A degenerate or empty range maps everything to 0.
func (m MinMax) Normalize(v float32) float32 {
	if m.Empty() || m.Max == m.Min {
		return 0
	}
	t := (v - m.Min) / (m.Max - m.Min)
	return math32.Max(0, math32.Min(1, t))
}

// ElevationRange is a MinMax shared between concurrent writers.
type ElevationRange struct {
	mu sync.RWMutex
	mm MinMax
}

// NewElevationRange returns an empty shared range.
func NewElevationRange() *ElevationRange {
	return &ElevationRange{mm: NewMinMax()}
}

// Clear resets the range to empty.
func (r *ElevationRange) Clear() {
	r.mu.Lock()
	r.mm.Clear()
	r.mu.Unlock()
}

// Observe widens the range to include v.
func (r *ElevationRange) Observe(v float32) {
	r.mu.Lock()
	r.mm.Observe(v)
	r.mu.Unlock()
}

// ObserveRange folds a chunk-local range into the shared one.
func (r *ElevationRange) ObserveRange(m MinMax) {
	r.mu.Lock()
	r.mm.Merge(m)
	r.mu.Unlock()
}

// Normalize maps v into [0, 1] using the current range.
func (r *ElevationRange) Normalize(v float32) float32 {
	return r.MinMax().Normalize(v)
}

// MinMax returns a snapshot of the current range.
func (r *ElevationRange) MinMax() MinMax {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mm
}
