// Package duaqos is a catalog of named, pre-tuned QoS profiles for the
// topics DUA nodes publish and subscribe to, plus the option bundles their
// action servers and clients are created with.
//
// Many independent processes talk over the same topics. When each of them
// hand-rolls its QoS settings they drift apart, and a reliable subscriber
// never hears a best-effort publisher. This package holds the agreed
// settings in one table so every node asks for them by name.
//
// # Profile classes
//
// Profiles are grouped by delivery guarantee, one package per class:
//
//   - reliable: reliable, volatile delivery
//   - besteffort: best-effort, volatile delivery
//   - persistent: reliable, transient-local ("latched") delivery
//
// Within a class a getter exists for each topic category it supports:
//
//	reliable.DatumQoS()   // generic telemetry, KeepLast(10)
//	reliable.ScanQoS()    // point clouds, laser scans, KeepLast(5)
//	reliable.ImageQoS()   // camera frames, KeepLast(1)
//	persistent.DatumQoS() // latched data, KeepLast(20)
//
// Every getter returns a new rmw.Profile value. The caller owns it and may
// derive other profiles from it with the rmw.Profile setters.
//
// # Queue depth
//
// Each category has a default depth. Pass WithDepth to override it:
//
//	q := besteffort.ImageQoS(duaqos.WithDepth(3))
//
// The depth is not validated. A depth of 0 reaches the middleware unchanged.
//
// # Legacy profiles
//
// The flat getters in this package (DatumQoS, CommandQoS, ScanQoS,
// ImageQoS) and package visualization predate the reliability split. They
// are kept so existing callers keep the same settings on the wire. The flat
// getters match package reliable at equal depth; visualization profiles
// match package besteffort at equal depth. Only the legacy classes define
// command and marker profiles.
//
// # Lookup by name
//
// Lookup selects a profile from a Class and a Category, which ParseClass and
// ParseCategory read from strings:
//
//	class, _ := duaqos.ParseClass("persistent")
//	q, err := duaqos.Lookup(class, duaqos.CategoryDatum)
//	if errors.Is(err, duaqos.ErrUnknownProfile) {
//	    // the class has no profile for this category
//	}
//
// Entries lists the whole catalog.
//
// # Actions
//
// ActionServerOptions and ActionClientOptions return identical settings:
// middleware defaults everywhere, except the status topic, which is
// transient-local so late observers learn the last known goal states.
//
// # Concurrency
//
// Nothing in this package keeps state. All functions are safe to call from
// any number of goroutines.
package duaqos
