// Package processor contains the business logic behind the espada
// commands. It loads the mapping table, transcribes batches sequentially
// or in parallel, records every outcome in the diagnostics ledger and
// writes the results. It also drives the prepare and chunk steps. This
// package serves as the main coordinator between all other components.
package processor
