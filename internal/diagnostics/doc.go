// Package diagnostics aggregates transcription outcomes across a batch.
// It keeps the valid transcriptions, the first failure and one example
// per failing symbol so an operator can extend the mapping table and
// rerun.
package diagnostics
