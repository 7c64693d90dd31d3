package duaqos

import "github.com/gonzalop/duaqos/rmw"

// DatumQoS returns the profile for generic data topics: KeepLast(10),
// reliable, volatile.
//
// Deprecated: use reliable.DatumQoS, which returns the same profile.
func DatumQoS(opts ...Option) rmw.Profile {
	return MustLookup(ClassLegacy, CategoryDatum, opts...)
}

// CommandQoS returns the profile for command topics: KeepLast(10),
// reliable, volatile.
//
// Deprecated: the current classes define no command profile. At equal depth
// reliable.DatumQoS returns the same settings.
func CommandQoS(opts ...Option) rmw.Profile {
	return MustLookup(ClassLegacy, CategoryCommand, opts...)
}

// ScanQoS returns the profile for scan topics such as point clouds or laser
// scans: KeepLast(5), reliable, volatile.
//
// Deprecated: use reliable.ScanQoS, which returns the same profile.
func ScanQoS(opts ...Option) rmw.Profile {
	return MustLookup(ClassLegacy, CategoryScan, opts...)
}

// ImageQoS returns the profile for image topics: KeepLast(1), reliable,
// volatile.
//
// Deprecated: use reliable.ImageQoS, which returns the same profile.
func ImageQoS(opts ...Option) rmw.Profile {
	return MustLookup(ClassLegacy, CategoryImage, opts...)
}
