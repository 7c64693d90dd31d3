package duaqos

import (
	"fmt"
	"strings"
)

// Class groups profiles by the delivery guarantee they share.
type Class uint8

// Profile classes.
//
// ClassReliable, ClassBestEffort and ClassPersistent are current.
// ClassLegacy and ClassVisualization predate the reliability split and are
// kept so callers that still use them see unchanged settings.
const (
	ClassLegacy Class = iota
	ClassVisualization
	ClassReliable
	ClassBestEffort
	ClassPersistent
)

// Category identifies the kind of traffic a topic carries.
type Category uint8

// Topic categories.
const (
	// CategoryDatum is generic telemetry.
	CategoryDatum Category = iota
	// CategoryCommand carries commands to actuators or other nodes.
	CategoryCommand
	// CategoryScan is bulk, high-rate data such as point clouds or laser scans.
	CategoryScan
	// CategoryImage carries camera frames.
	CategoryImage
	// CategoryMarker carries visualization markers.
	CategoryMarker
)

var classNames = [...]string{"legacy", "visualization", "reliable", "best-effort", "persistent"}

var categoryNames = [...]string{"datum", "command", "scan", "image", "marker"}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseClass returns the class named s. Matching is case-insensitive and
// "besteffort", "best_effort" and "best-effort" all name ClassBestEffort.
func ParseClass(s string) (Class, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "besteffort" || name == "best_effort" {
		name = "best-effort"
	}
	for i, n := range classNames {
		if n == name {
			return Class(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, s)
}

// ParseCategory returns the category named s. Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
