// Package models contains data types and constants for the msgboard backend API.
package models

import "time"

// Backend paths, relative to the resolved base address
const (
	PathMessages = "/messages"
	PathHealth   = "/health"
	PathHealthDB = "/health/db"
)

// Base address defaults by deployment mode
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	ProductionBaseAddress  = "/api"
	DevelopmentBaseAddress = "http://localhost:8080/api"
)

// Transport defaults
const (
	DefaultTimeout     = 10000 * time.Millisecond
	DefaultContentType = "application/json"
)

// DefaultTimeLayout mirrors the en-US toLocaleString shape
const DefaultTimeLayout = "1/2/2006, 3:04:05 PM"

// DefaultHeaders returns headers sent on every request
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Accept":     "application/json",
		"User-Agent": "msgboard",
	}
}
