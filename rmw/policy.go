package rmw

import "fmt"

// History selects how many samples a queue retains.
type History uint8

// Reliability selects whether the middleware retransmits lost samples.
type Reliability uint8

// Durability selects whether samples outlive the moment they were published.
type Durability uint8

// History policies.
//
// The numbering matches the middleware's: zero is always "system default",
// so the zero Profile leaves every decision to the middleware.
const (
	// HistorySystemDefault defers to the middleware's configured history.
	HistorySystemDefault History = 0

	// HistoryKeepLast retains only the Depth most recent samples per queue.
	HistoryKeepLast History = 1

	// HistoryKeepAll retains every sample up to the middleware's resource
	// limits. Depth is ignored.
	HistoryKeepAll History = 2
)

// Reliability policies.
const (
	// ReliabilitySystemDefault defers to the middleware's configured reliability.
	ReliabilitySystemDefault Reliability = 0

	// ReliabilityReliable guarantees delivery through retransmission.
	ReliabilityReliable Reliability = 1

	// ReliabilityBestEffort may drop samples under loss or congestion.
	ReliabilityBestEffort Reliability = 2
)

// Durability policies.
const (
	// DurabilitySystemDefault defers to the middleware's configured durability.
	DurabilitySystemDefault Durability = 0

	// DurabilityTransientLocal makes the publisher keep its history and replay
	// it to subscribers that join late ("latching").
	DurabilityTransientLocal Durability = 1

	// DurabilityVolatile delivers nothing published before a subscriber joined.
	DurabilityVolatile Durability = 2
)

var historyNames = [...]string{"system_default", "keep_last", "keep_all"}

var reliabilityNames = [...]string{"system_default", "reliable", "best_effort"}

var durabilityNames = [...]string{"system_default", "transient_local", "volatile"}

func (h History) String() string {
	if int(h) < len(historyNames) {
		return historyNames[h]
	}
	return fmt.Sprintf("History(%d)", uint8(h))
}

// MarshalText implements encoding.TextMarshaler.
func (h History) MarshalText() ([]byte, error) {
	if int(h) >= len(historyNames) {
		return nil, fmt.Errorf("rmw: invalid history policy %d", uint8(h))
	}
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *History) UnmarshalText(text []byte) error {
	i, err := parseName(historyNames[:], string(text), "history")
	if err != nil {
		return err
	}
	*h = History(i)
	return nil
}

func (r Reliability) String() string {
	if int(r) < len(reliabilityNames) {
		return reliabilityNames[r]
	}
	return fmt.Sprintf("Reliability(%d)", uint8(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Reliability) MarshalText() ([]byte, error) {
	if int(r) >= len(reliabilityNames) {
		return nil, fmt.Errorf("rmw: invalid reliability policy %d", uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reliability) UnmarshalText(text []byte) error {
	i, err := parseName(reliabilityNames[:], string(text), "reliability")
	if err != nil {
		return err
	}
	*r = Reliability(i)
	return nil
}

func (d Durability) String() string {
	if int(d) < len(durabilityNames) {
		return durabilityNames[d]
	}
	return fmt.Sprintf("Durability(%d)", uint8(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Durability) MarshalText() ([]byte, error) {
	if int(d) >= len(durabilityNames) {
		return nil, fmt.Errorf("rmw: invalid durability policy %d", uint8(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Durability) UnmarshalText(text []byte) error {
	i, err := parseName(durabilityNames[:], string(text), "durability")
	if err != nil {
		return err
	}
	*d = Durability(i)
	return nil
}

func parseName(names []string, s, kind string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("rmw: unknown %s policy %q", kind, s)
}
