// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the bakery system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DemoDataGenerator: A domain service that fabricates a deterministic
//     demonstration data set of users, products, pickup locations, and orders
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
