// SPDX-License-Identifier: MIT
package runstore_test

import (
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/hopnet/runstore"
	"github.com/stretchr/testify/assert"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

// TestNTPClock covers the server answer, the default host and the fallback.
func TestNTPClock(t *testing.T) {
	server := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	local := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	var asked string
	ok := runstore.NTPClock{Fallback: fixedClock(local)}.WithQuery(func(host string) (time.Time, error) {
		asked = host
		return server, nil
	})
	assert.True(t, ok.Now().Equal(server))
	assert.Equal(t, runstore.DefaultNTPServer, asked)

	failing := runstore.NTPClock{Server: "ntp.invalid", Fallback: fixedClock(local)}.
		WithQuery(func(host string) (time.Time, error) {
			asked = host
			return time.Time{}, errors.New("timeout")
		})
	assert.True(t, failing.Now().Equal(local))
	assert.Equal(t, "ntp.invalid", asked)

	noFallback := runstore.NTPClock{}.WithQuery(func(string) (time.Time, error) {
		return time.Time{}, errors.New("timeout")
	})
	before := time.Now()
	assert.False(t, noFallback.Now().Before(before))
}

// TestSystemClock is monotone against time.Now.
func TestSystemClock(t *testing.T) {
	before := time.Now()
	assert.False(t, runstore.SystemClock{}.Now().Before(before))
}
