package scheduler

// EventKind identifies a scheduling decision.
type EventKind string

const (
	EventArrival  EventKind = "arrival"
	EventDispatch EventKind = "dispatch"
	EventRequeue  EventKind = "requeue"
	EventComplete EventKind = "complete"
	EventIdle     EventKind = "idle"
)

// Event describes a single decision taken while a schedule is reconstructed.
// Policy carries the label of the run, e.g. "RR-Q4". Arrival events carry the
// arrival time of the process; a process arriving while another one runs is
// reported after that dispatch and before the slice ends with a complete or
// requeue event.
type Event struct {
	Kind      EventKind `json:"kind"`
	Policy    string    `json:"policy"`
	Time      int       `json:"time"`
	PID       string    `json:"pid,omitempty"`
	Until     int       `json:"until,omitempty"`
	Remaining int       `json:"remaining"`
}

// Listener receives events in time order. Within one instant an idle period
// precedes arrivals, and arrivals precede the dispatch they enable.
type Listener func(event Event)
