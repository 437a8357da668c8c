// Package domain defines the core domain types and interfaces.
//
// Contains the Activity record, sentinel errors, and the repository/service
// contracts. No implementation code - just contracts. Prevents circular
// imports by keeping interfaces on the consumer side.
package domain
