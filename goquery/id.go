package goquery

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// stableID derives a short deterministic ID from its parts, so repeated
// scrapes of the same page produce the same IDs.
func stableID(parts ...string) string {
	return strconv.FormatUint(xxhash.Sum64String(strings.Join(parts, "\x00")), 16)
}
