package dnssec

import (
	"bytes"

	"github.com/dnssecprover/prover/dnswire"
)

// nsecCoversName reports whether the open interval (owner, next) — under
// canonical DNS name ordering — contains name, which is how an NSEC record
// proves a name's non-existence (RFC 4034 §4.1's "next domain name"). The
// final NSEC in a zone wraps around to the zone apex, which callers signal
// by next being ordered before owner.
func nsecCoversName(owner, next, name dnswire.Name) bool {
	cmp := func(a, b dnswire.Name) int {
		for i := 1; i <= len(a.Labels) && i <= len(b.Labels); i++ {
			if c := bytes.Compare(a.Labels[len(a.Labels)-i], b.Labels[len(b.Labels)-i]); c != 0 {
				return c
			}
		}
		return len(a.Labels) - len(b.Labels)
	}
	if cmp(next, owner) <= 0 {
		// Wraps around the end of the zone.
		return cmp(name, owner) > 0 || cmp(name, next) < 0
	}
	return cmp(name, owner) > 0 && cmp(name, next) < 0
}

// nsecProvesNodata reports whether an NSEC record at exactly name asserts
// that rrType does not exist at that name (the record exists, just not
// that type — "NODATA", as opposed to "NXDOMAIN").
func nsecProvesNodata(nsecOwner dnswire.Name, bitmap []byte, name dnswire.Name, rrType dnswire.RRType) bool {
	if !nsecOwner.Equal(name) {
		return false
	}
	return !dnswire.TypeBitmapHasType(bitmap, rrType)
}
