// Package besteffort provides QoS profiles with best-effort, volatile
// delivery for the common topic categories. Samples may be dropped under
// loss or congestion.
package besteffort

import (
	"github.com/gonzalop/duaqos"
	"github.com/gonzalop/duaqos/rmw"
)

// DatumQoS returns the profile for generic data topics. Default depth: 10.
func DatumQoS(opts ...duaqos.Option) rmw.Profile {
	return duaqos.MustLookup(duaqos.ClassBestEffort, duaqos.CategoryDatum, opts...)
}

// ScanQoS returns the profile for scan topics. Default depth: 5.
func ScanQoS(opts ...duaqos.Option) rmw.Profile {
	return duaqos.MustLookup(duaqos.ClassBestEffort, duaqos.CategoryScan, opts...)
}

// ImageQoS returns the profile for image topics. Default depth: 1.
func ImageQoS(opts ...duaqos.Option) rmw.Profile {
	return duaqos.MustLookup(duaqos.ClassBestEffort, duaqos.CategoryImage, opts...)
}
