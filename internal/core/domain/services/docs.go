// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the delivery platform. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Pricer: A domain service computing the price of a delivery request
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
