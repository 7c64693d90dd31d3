// Package persistent provides latched QoS profiles: reliable delivery with
// transient-local durability, so subscribers that join late receive the
// publisher's retained history.
package persistent

import (
	"github.com/gonzalop/duaqos"
	"github.com/gonzalop/duaqos/rmw"
)

// DatumQoS returns the profile for latched data topics. Default depth: 20.
// Reliability is always reliable.
func DatumQoS(opts ...duaqos.Option) rmw.Profile {
	return duaqos.MustLookup(duaqos.ClassPersistent, duaqos.CategoryDatum, opts...)
}
