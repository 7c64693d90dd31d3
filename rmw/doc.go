// Package rmw models the middleware-facing QoS types that the catalog in
// package duaqos configures: the Profile value with its history, reliability
// and durability policies, the default topic and service profiles, the
// default allocator handle, and the option bundles consumed by action
// servers and clients.
//
// Enforcement of these policies belongs to the middleware. Nothing in this
// package validates a profile.
package rmw
