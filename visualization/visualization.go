// Package visualization provides best-effort, volatile QoS profiles for
// topics consumed only by visualization tools.
//
// These profiles predate packages reliable and besteffort and keep their
// original default depths. At equal depth each one matches the besteffort
// profile of the same category.
package visualization

import (
	"github.com/gonzalop/duaqos"
	"github.com/gonzalop/duaqos/rmw"
)

// DatumQoS returns the profile for data topics. Default depth: 5.
func DatumQoS(opts ...duaqos.Option) rmw.Profile {
	return duaqos.MustLookup(duaqos.ClassVisualization, duaqos.CategoryDatum, opts...)
}

// CommandQoS returns the profile for command topics. Default depth: 5.
func CommandQoS(opts ...duaqos.Option) rmw.Profile {
	return duaqos.MustLookup(duaqos.ClassVisualization, duaqos.CategoryCommand, opts...)
}

// ScanQoS returns the profile for scan topics. Default depth: 1.
func ScanQoS(opts ...duaqos.Option) rmw.Profile {
	return duaqos.MustLookup(duaqos.ClassVisualization, duaqos.CategoryScan, opts...)
}

// ImageQoS returns the profile for image topics. Default depth: 1.
func ImageQoS(opts ...duaqos.Option) rmw.Profile {
	return duaqos.MustLookup(duaqos.ClassVisualization, duaqos.CategoryImage, opts...)
}

// MarkerQoS returns the profile for marker topics. Only the latest marker
// set matters. Default depth: 1.
func MarkerQoS(opts ...duaqos.Option) rmw.Profile {
	return duaqos.MustLookup(duaqos.ClassVisualization, duaqos.CategoryMarker, opts...)
}
