package report

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// idTimeLayout gives second granularity in the identifier itself; the
// random suffix covers same-second creation by the same owner.
const idTimeLayout = "20060102-150405"

// timeNow is overridable in tests to pin document timestamps.
var timeNow = time.Now

// GenerateID returns a new report identifier of the form
// YYYYMMDD-HHMMSS-<owner>-<rand12>. Uniqueness is by construction; no
// registry of issued identifiers is kept. Twelve hex runes give 2^48
// suffixes, so bulk same-second creation by one owner stays collision
// free in practice.
func GenerateID(ownerID string) string {
	ts := timeNow().Format(idTimeLayout)
	rnd := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return ts + "-" + ownerID + "-" + rnd
}

// SanitizeKey maps an identifier to a storage key by replacing characters
// that are illegal in file names with "-". Idempotent. Two distinct
// identifiers can in theory collapse to the same key; generated
// identifiers only contain legal characters, so this affects only
// externally supplied ids.
func SanitizeKey(id string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return '-'
		}
		return r
	}, id)
}
