package rmw

import "fmt"

// HistoryPolicy is the history half of a profile: a kind plus, for
// KeepLast, the queue depth. Build one with KeepLast or KeepAll.
type HistoryPolicy struct {
	Kind  History
	Depth uint
}

// KeepLast returns a bounded history of depth samples. A depth of 0 is not
// rejected; the middleware decides what it means when the profile is applied.
func KeepLast(depth uint) HistoryPolicy {
	return HistoryPolicy{Kind: HistoryKeepLast, Depth: depth}
}

// KeepAll returns an unbounded history.
func KeepAll() HistoryPolicy {
	return HistoryPolicy{Kind: HistoryKeepAll}
}

// Profile is a QoS profile applied to a topic or service endpoint.
//
// Profile is a plain value. The setters below have value receivers and
// return a modified copy, so a Profile handed to a caller is never changed
// behind its back:
//
//	p := rmw.NewProfile(rmw.KeepLast(5)).BestEffort().DurabilityVolatile()
//
// Two profiles are equal when all their fields are equal; compare them with ==.
type Profile struct {
	History     History     `json:"history" yaml:"history"`
	Depth       uint        `json:"depth" yaml:"depth"`
	Reliability Reliability `json:"reliability" yaml:"reliability"`
	Durability  Durability  `json:"durability" yaml:"durability"`
}

// NewProfile returns a profile with the given history and every other policy
// left to the system default.
func NewProfile(h HistoryPolicy) Profile {
	return Profile{}.WithHistory(h)
}

// WithHistory returns a copy of p using history h.
func (p Profile) WithHistory(h HistoryPolicy) Profile {
	p.History = h.Kind
	if h.Kind == HistoryKeepAll {
		p.Depth = 0
	} else {
		p.Depth = h.Depth
	}
	return p
}

// KeepLast returns a copy of p with a bounded history of depth samples.
func (p Profile) KeepLast(depth uint) Profile {
	return p.WithHistory(KeepLast(depth))
}

// KeepAll returns a copy of p with an unbounded history.
func (p Profile) KeepAll() Profile {
	return p.WithHistory(KeepAll())
}

// Reliable returns a copy of p with reliable delivery.
func (p Profile) Reliable() Profile {
	p.Reliability = ReliabilityReliable
	return p
}

// BestEffort returns a copy of p with best-effort delivery.
func (p Profile) BestEffort() Profile {
	p.Reliability = ReliabilityBestEffort
	return p
}

// TransientLocal returns a copy of p with transient-local durability.
func (p Profile) TransientLocal() Profile {
	p.Durability = DurabilityTransientLocal
	return p
}

// DurabilityVolatile returns a copy of p with volatile durability.
func (p Profile) DurabilityVolatile() Profile {
	p.Durability = DurabilityVolatile
	return p
}

func (p Profile) String() string {
	h := p.History.String()
	if p.History == HistoryKeepLast {
		h = fmt.Sprintf("keep_last(%d)", p.Depth)
	}
	return fmt.Sprintf("{history: %s, reliability: %s, durability: %s}", h, p.Reliability, p.Durability)
}

// DefaultProfile returns the middleware's default profile for topics:
// KeepLast(10), reliable, volatile.
func DefaultProfile() Profile {
	return NewProfile(KeepLast(10)).Reliable().DurabilityVolatile()
}

// ServicesDefaultProfile returns the middleware's default profile for
// services: KeepLast(10), reliable, volatile.
func ServicesDefaultProfile() Profile {
	return NewProfile(KeepLast(10)).Reliable().DurabilityVolatile()
}
