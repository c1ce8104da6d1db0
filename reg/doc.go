// Package reg declares the TMC5130 register map.
//
// Every register has its own type (ChopConf, DrvStatus, ...) holding the raw
// 32-bit word, with typed accessors for its bit-fields. State carries any one
// register tagged by its Address, and Map holds the last known state of every
// register in the catalog.
//
// The per-register code lives in zz_registers.go and is generated from the
// table in internal/regen.
package reg

//go:generate go run ./internal/regen -o zz_registers.go
