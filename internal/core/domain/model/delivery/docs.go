// Package delivery implements the delivery aggregate and its lifecycle
// state machine, the centerpiece of the platform.
//
// A Delivery moves through a strict set of states from creation to
// completion. The aggregate enforces transition legality and the
// single-assignment invariant (a driver, once set, is immutable), while the
// persistence layer enforces atomicity of each transition through
// conditional updates keyed on the expected current status.
//
// The package also owns request validation: every service type (parcel
// pickup, wrecker, removal truck, cooking gas) has its own required-field
// rules and normalization, applied before an aggregate is ever created.
// Post-completion feedback (Rating, Tip) lives here too, as entities owned
// by the delivery.
package delivery
