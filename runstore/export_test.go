// SPDX-License-Identifier: MIT

package runstore

import "time"

// WithQuery installs a fake NTP query for tests.
func (c NTPClock) WithQuery(q func(string) (time.Time, error)) NTPClock {
	c.query = q
	return c
}
