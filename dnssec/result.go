package dnssec

import "github.com/dnssecprover/prover/dnswire"

// VerifiedRRStream is the validator's terminal success output: the subset
// of input RRs it was able to authenticate back to the root trust anchor,
// plus the validity window that subset is good for.
type VerifiedRRStream struct {
	RRs []dnswire.RR

	// ValidFrom is the maximum of all contributing RRSIGs' inception
	// times: the window doesn't open until every signature on the path
	// has started being valid.
	ValidFrom uint32

	// Expires is the minimum of all contributing RRSIGs' expiration
	// times.
	Expires uint32

	// MaxCacheTTL is the minimum of the verified RRs' TTLs, also capped
	// by the smallest contributing RRSIG's original TTL.
	MaxCacheTTL uint32
}

// sigWindow records one RRSIG's contribution to the aggregate validity
// window computed across every signature the walk actually used.
type sigWindow struct {
	inception, expiration, originalTTL uint32
}

func serialMax(a, b uint32) uint32 {
	if serialLess(a, b) {
		return b
	}
	return a
}

func serialMin(a, b uint32) uint32 {
	if serialLess(a, b) {
		return a
	}
	return b
}
