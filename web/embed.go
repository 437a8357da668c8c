// Package web holds the embedded front-end assets for the activities site.
package web

import "embed"

//go:embed static/*
var StaticFS embed.FS
