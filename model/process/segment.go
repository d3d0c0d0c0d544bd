package process

// Idle is the occupant of a segment during which no process is ready.
const Idle = "IDLE"

// Segment is a contiguous interval [Start, End) of the timeline occupied by a
// single process or by Idle.
type Segment struct {
	Occupant string `json:"occupant" yaml:"occupant"`
	Start    int    `json:"start" yaml:"start"`
	End      int    `json:"end" yaml:"end"`
}

// Duration returns End - Start.
func (s Segment) Duration() int {
	return s.End - s.Start
}

// IsIdle returns true for idle segments.
func (s Segment) IsIdle() bool {
	return s.Occupant == Idle
}

// Timeline is an ordered, gap-free sequence of segments starting at zero.
type Timeline []Segment

// Append adds [start, end) for occupant, extending the last segment when it has
// the same occupant and ends at start. Empty intervals are ignored.
func (t Timeline) Append(occupant string, start, end int) Timeline {
	if end <= start {
		return t
	}
	if n := len(t); n > 0 {
		last := &t[n-1]
		if last.Occupant == occupant && last.End == start {
			last.End = end
			return t
		}
	}
	return append(t, Segment{Occupant: occupant, Start: start, End: end})
}

// End returns the end of the final segment, or zero for an empty timeline.
func (t Timeline) End() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

// BusyTime returns the total duration of non idle segments.
func (t Timeline) BusyTime() int {
	busy := 0
	for _, s := range t {
		if !s.IsIdle() {
			busy += s.Duration()
		}
	}
	return busy
}

// Occupancy sums segment durations per occupant.
func (t Timeline) Occupancy() map[string]int {
	ret := make(map[string]int)
	for _, s := range t {
		ret[s.Occupant] += s.Duration()
	}
	return ret
}

// Dispatches returns the segments occupied by pid in timeline order.
func (t Timeline) Dispatches(pid string) []Segment {
	var ret []Segment
	for _, s := range t {
		if s.Occupant == pid {
			ret = append(ret, s)
		}
	}
	return ret
}
