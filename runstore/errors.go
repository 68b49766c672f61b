// SPDX-License-Identifier: MIT

package runstore

import "errors"

var (
	// ErrUnknownDriver is returned by Open for a driver other than sqlite or mysql.
	ErrUnknownDriver = errors.New("runstore: unknown driver")

	// ErrEmptyDSN is returned by Open when no data source name is given.
	ErrEmptyDSN = errors.New("runstore: empty data source name")

	// ErrClosed is returned by operations on a closed Store.
	ErrClosed = errors.New("runstore: store is closed")
)
