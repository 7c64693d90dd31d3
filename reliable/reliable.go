// Package reliable provides QoS profiles with reliable, volatile delivery
// for the common topic categories.
//
// Every getter returns a fresh KeepLast profile. Pass duaqos.WithDepth to
// change the queue depth.
package reliable

import (
	"github.com/gonzalop/duaqos"
	"github.com/gonzalop/duaqos/rmw"
)

// DatumQoS returns the profile for generic data topics. Default depth: 10.
func DatumQoS(opts ...duaqos.Option) rmw.Profile {
	return duaqos.MustLookup(duaqos.ClassReliable, duaqos.CategoryDatum, opts...)
}

// ScanQoS returns the profile for scan topics, like point clouds or laser
// scans. Default depth: 5.
func ScanQoS(opts ...duaqos.Option) rmw.Profile {
	return duaqos.MustLookup(duaqos.ClassReliable, duaqos.CategoryScan, opts...)
}

// ImageQoS returns the profile for image topics. Default depth: 1.
func ImageQoS(opts ...duaqos.Option) rmw.Profile {
	return duaqos.MustLookup(duaqos.ClassReliable, duaqos.CategoryImage, opts...)
}
