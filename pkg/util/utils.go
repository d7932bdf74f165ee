package util

import (
	"strings"

	"tinygo.org/x/bluetooth"
)

// MustParseUUID parses a canonical UUID string known at compile time. It
// panics on malformed input, so it must only be fed constants.
func MustParseUUID(s string) bluetooth.UUID {
	u, err := bluetooth.ParseUUID(strings.ToLower(s))
	if err != nil {
		panic("malformed uuid constant: " + s)
	}
	return u
}
