package overlay

import "math"

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths in pixels.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically
	// duplicated to create an even-length pattern ([5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern cycle.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Returns nil if no lengths are provided or all lengths are zero,
// which callers treat as a solid stroke.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}

	any := false
	for _, l := range lengths {
		if l > 0 {
			any = true
			break
		}
	}
	if !any {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}

	return &Dash{Array: normalized}
}

// IsDashed reports whether this represents a dashed line (not solid).
// Returns false for nil Dash or empty/all-zero arrays.
func (d *Dash) IsDashed() bool {
	if d == nil || len(d.Array) == 0 {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}

	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// NormalizedOffset returns the offset wrapped into one pattern cycle.
func (d *Dash) NormalizedOffset() float64 {
	if d == nil {
		return 0
	}
	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}
	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arrayCopy := make([]float64, len(d.Array))
	copy(arrayCopy, d.Array)
	return &Dash{Array: arrayCopy, Offset: d.Offset}
}

// effectiveArray returns the array with odd-length arrays duplicated,
// so iteration can assume an even on/off alternation.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	doubled := make([]float64, 0, len(d.Array)*2)
	doubled = append(doubled, d.Array...)
	doubled = append(doubled, d.Array...)
	return doubled
}

// Flatten splits a polyline into the "on" runs of the dash pattern.
// Each returned run is itself a polyline in the same coordinate space.
// Hosts whose canvas API has no native dash support (Fyne, for one)
// paint the runs as plain solid sub-paths.
//
// A nil or solid Dash returns the input as a single run. Runs shorter
// than two points are dropped.
func (d *Dash) Flatten(points []Point, closed bool) [][]Point {
	if len(points) < 2 {
		return nil
	}
	if !d.IsDashed() {
		run := make([]Point, len(points))
		copy(run, points)
		if closed {
			run = append(run, points[0])
		}
		return [][]Point{run}
	}

	pattern := d.effectiveArray()

	// Position the walk at the normalized offset within the cycle.
	idx := 0
	remaining := 0.0
	skip := d.NormalizedOffset()
	for {
		remaining = pattern[idx]
		if skip < remaining {
			remaining -= skip
			break
		}
		skip -= remaining
		idx = (idx + 1) % len(pattern)
	}
	on := idx%2 == 0

	segs := make([]Point, len(points))
	copy(segs, points)
	if closed {
		segs = append(segs, points[0])
	}

	var runs [][]Point
	var run []Point
	if on {
		run = append(run, segs[0])
	}

	flush := func() {
		if len(run) >= 2 {
			runs = append(runs, run)
		}
		run = nil
	}

	for i := 0; i+1 < len(segs); i++ {
		a, b := segs[i], segs[i+1]
		segLen := a.Distance(b)
		if segLen == 0 {
			continue
		}
		traveled := 0.0
		for segLen-traveled > remaining {
			traveled += remaining
			p := a.Lerp(b, traveled/segLen)
			if on {
				run = append(run, p)
				flush()
			} else {
				run = append(run, p)
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}
		remaining -= segLen - traveled
		if on {
			run = append(run, b)
		}
	}
	flush()
	return runs
}
