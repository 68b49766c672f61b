// SPDX-License-Identifier: MIT

package runstore

import (
	"time"

	"github.com/beevik/ntp"
)

// DefaultNTPServer is queried by NTPClock when Server is empty.
const DefaultNTPServer = "pool.ntp.org"

// Clock supplies run timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// NTPClock asks an NTP server for the time so runs recorded on different
// hosts share a time base. Any query failure falls back to Fallback
// (SystemClock when nil); Now never fails.
type NTPClock struct {
	Server   string
	Fallback Clock

	query func(host string) (time.Time, error) // nil ⇒ ntp.Time
}

// Now returns the server time, or the fallback clock's time on error.
func (c NTPClock) Now() time.Time {
	server := c.Server
	if server == "" {
		server = DefaultNTPServer
	}
	query := c.query
	if query == nil {
		query = ntp.Time
	}

	t, err := query(server)
	if err != nil {
		if c.Fallback != nil {
			return c.Fallback.Now()
		}
		return time.Now()
	}

	return t
}
