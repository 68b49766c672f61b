// SPDX-License-Identifier: MIT

// Package runstore records recall runs in a SQL database.
//
// One row is written per probe: the probe and recovered patterns as "+-"
// strings, epoch count, convergence, the stored pattern it settled on (if
// any), the seed and bias mode, and wall-clock start/finish timestamps taken
// from a Clock. Two drivers are supported:
//
//	sqlite — modernc.org/sqlite, pure Go; DSN is a file path or ":memory:".
//	mysql  — github.com/go-sql-driver/mysql; DSN "user:pass@tcp(host:port)/db".
//
// Timestamps are stored as Unix nanoseconds so both backends round-trip them
// without driver-specific time parsing.
package runstore
