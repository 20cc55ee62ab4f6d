// Package storage defines the persistence contracts for recipe records and
// operational telemetry events. Implementations live in subpackages.
package storage
