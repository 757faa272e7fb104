//go:build arm64

package polyfill

import "testing"

func TestNEONMoverRoundTrip(t *testing.T) {
	testMoverRoundTrip(t, NEON)
}
