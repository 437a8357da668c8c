// Package server implements the HTTP server using Echo framework.
//
// Routes: activity directory (list/signup/unregister), health checks,
// metrics, version, and the embedded static landing page with the root
// redirect. Handlers split by concern: handlers_activities.go,
// handlers_health.go.
package server
