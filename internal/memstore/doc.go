// Package memstore implements the activity repository as a mutex-guarded
// in-memory map. State lives for the life of the process: seeded once at
// startup, mutated in place by signup/unregister, gone on exit.
package memstore
