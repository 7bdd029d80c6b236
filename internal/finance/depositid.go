package finance

import (
	"fmt"
	"regexp"
	"strconv"
)

// depositIDPrefix is the fixed prefix of every deposit identifier.
const depositIDPrefix = "DEP"

// depositIDPattern matches well-formed deposit identifiers. IDs that do not
// match (foreign prefixes, empty suffix) are ignored by the allocator.
var depositIDPattern = regexp.MustCompile(`^DEP(\d+)$`)

// NextDepositID returns the next sequential deposit identifier given the
// complete set of currently persisted IDs.
//
// The allocator scans existing IDs matching DEP<digits>, takes the maximum
// numeric suffix (0 when none match) and adds one. It must always be fed the
// current persisted set rather than a cached counter, so that out-of-band
// deletions and insertions are tolerated. Two concurrent callers may observe
// the same maximum; the resulting collision is caught by the store's primary
// key constraint, not here.
func NextDepositID(existing []string) string {
	var max int64
	for _, id := range existing {
		match := depositIDPattern.FindStringSubmatch(id)
		if match == nil {
			continue
		}
		n, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			// Suffix longer than an int64; such IDs are unreachable
			// through this allocator and are skipped.
			continue
		}
		if n > max {
			max = n
		}
	}

	return FormatDepositID(max + 1)
}

// FormatDepositID renders n as a deposit identifier: "DEP" followed by the
// number zero-padded to at least 3 digits. Wider numbers extend the width,
// they are never truncated.
func FormatDepositID(n int64) string {
	return fmt.Sprintf("%s%03d", depositIDPrefix, n)
}
