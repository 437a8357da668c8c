// Package app provides the application service layer.
//
// Orchestrates the use cases: listing activities, signup, unregister.
// Sits between HTTP handlers and the activity repository. Depends on domain
// interfaces, not concrete implementations.
package app
