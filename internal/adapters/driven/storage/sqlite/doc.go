// Package sqlite provides a SQLite-backed implementation of the vocabulary
// storage ports. A single Store owns the database connection and hands out
// wrapper types implementing driven.EntryStore and driven.PairStore.
package sqlite
