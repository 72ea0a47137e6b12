package dnssec

import (
	"bytes"

	"golang.org/x/exp/slices"

	"github.com/dnssecprover/prover/dnswire"
)

// rrsetKey groups records by owner name (canonical), class, and type.
type rrsetKey struct {
	name  string
	class uint16
	typ   dnswire.RRType
}

// rrset is a group of RRs sharing an owner, class, and type.
type rrset struct {
	name  dnswire.Name
	class uint16
	typ   dnswire.RRType
	rrs   []dnswire.RR
}

// groupRRsets buckets a flat RR list into RRsets keyed by (owner, class,
// type), skipping RRSIG records (which are tracked separately, since an
// RRSIG is never itself part of the RRset it covers).
func groupRRsets(rrs []dnswire.RR) map[rrsetKey]*rrset {
	sets := make(map[rrsetKey]*rrset)
	for _, rr := range rrs {
		if rr.Type == dnswire.TypeRRSIG {
			continue
		}
		k := rrsetKey{name: string(rr.Name.EncodeCanonical()), class: rr.Class, typ: rr.Type}
		s, ok := sets[k]
		if !ok {
			s = &rrset{name: rr.Name, class: rr.Class, typ: rr.Type}
			sets[k] = s
		}
		s.rrs = append(s.rrs, rr)
	}
	return sets
}

// groupRRSIGs indexes RRSIG records by the (owner, type-covered) of the
// RRset they cover. A single RRset may carry more than one RRSIG (e.g.
// during a key rollover); any one verifying is sufficient.
func groupRRSIGs(rrs []dnswire.RR) map[rrsetKey][]dnswire.RRSIGData {
	out := make(map[rrsetKey][]dnswire.RRSIGData)
	for _, rr := range rrs {
		if rr.Type != dnswire.TypeRRSIG {
			continue
		}
		sig, ok := rr.RData.(dnswire.RRSIGData)
		if !ok {
			continue
		}
		k := rrsetKey{name: string(rr.Name.EncodeCanonical()), class: rr.Class, typ: sig.TypeCovered}
		out[k] = append(out[k], sig)
	}
	return out
}

// canonicalRDATA returns rr's RDATA re-serialized per RFC 4034 §6.2: domain
// names embedded in RDATA are lowercased. Since dnswire already lowercases
// every name it parses, re-encoding from the typed struct is sufficient —
// no separate case-folding step is needed. Types without an embedded name
// use the original wire bytes unchanged.
func canonicalRDATA(rr dnswire.RR) []byte {
	switch d := rr.RData.(type) {
	case dnswire.NSData:
		return d.Target.EncodeCanonical()
	case dnswire.CNAMEData:
		return d.Target.EncodeCanonical()
	case dnswire.DNameData:
		return d.Target.EncodeCanonical()
	case dnswire.NSECData:
		out := append([]byte{}, d.NextOwner.EncodeCanonical()...)
		return append(out, d.TypeBitmap...)
	default:
		return rr.Raw
	}
}

// sortCanonical orders rs's members by RFC 4034 §6.3: ascending
// byte-lexicographic order of their canonical RDATA, with exact duplicates
// collapsed.
func sortCanonical(rs []dnswire.RR) []dnswire.RR {
	out := append([]dnswire.RR(nil), rs...)
	slices.SortFunc(out, func(a, b dnswire.RR) int {
		return bytes.Compare(canonicalRDATA(a), canonicalRDATA(b))
	})
	deduped := out[:0]
	for i, rr := range out {
		if i > 0 && bytes.Equal(canonicalRDATA(rr), canonicalRDATA(out[i-1])) {
			continue
		}
		deduped = append(deduped, rr)
	}
	return deduped
}
