// SPDX-License-Identifier: MIT

// Package store persists input datasets in a local SQLite database so that
// trial data imported once from CSV can be analyzed again by name.
//
// Only inputs are stored. Summaries, fits and ANOVA tables are cheap and
// deterministic, so they are always recomputed from the stored data.
//
// The database is a single file, algocmp.db, in the store directory
// (by default $XDG_DATA_HOME/algocmp). It uses the pure-Go modernc.org/sqlite
// driver with one open connection.
package store
