// Package store persists transcription runs to a SQLite database so
// results of different ruleset versions can be compared later.
package store
