package dnssec

import (
	"github.com/dnssecprover/prover/dnswire"
)

// Validator holds the outcome of a successful Verify call: the
// authenticated RRsets, keyed so ProveNonexistence can consult the
// authenticated NSEC/NSEC3 records without re-running the trust walk.
type Validator struct {
	stream   VerifiedRRStream
	nsecSets []rrset
	nsec3Set []rrset
	now      uint32
}

// Stream returns the validator's authenticated RRs and validity window.
func (v *Validator) Stream() VerifiedRRStream { return v.stream }

// Verify runs the chain validator over a flat, unordered RFC 9102 proof
// (already parsed into RRs) and reports the authenticated subset, or one
// of the four ValidationError kinds. Verification tolerates any input
// order and duplicate RRs; it never requires a strict leaf-to-root
// sequence, scanning repeatedly for the next RRSIG it can discharge until
// a fixed point, capped at n+1 passes over the RRset count.
func Verify(rrs []dnswire.RR, now uint32) (*Validator, error) {
	sets := groupRRsets(rrs)
	sigs := groupRRSIGs(rrs)

	trusted := map[string]map[uint16]dnswire.DNSKEYData{}
	authenticated := map[rrsetKey]bool{}
	var contributions []sigWindow
	cryptoValidOutOfWindow := false

	trustKey := func(zone string, tag uint16, dk dnswire.DNSKEYData) bool {
		if trusted[zone] == nil {
			trusted[zone] = map[uint16]dnswire.DNSKEYData{}
		}
		if _, ok := trusted[zone][tag]; ok {
			return false
		}
		trusted[zone][tag] = dk
		return true
	}

	rootZone := string(dnswire.Root.EncodeCanonical())

	maxPasses := len(sets) + 1
	for pass := 0; pass < maxPasses; pass++ {
		progress := false

		// Root bootstrap: a root DNSKEY endorsed directly by the
		// compiled-in trust anchor needs no DS record.
		if rootSet, ok := sets[rrsetKey{name: rootZone, class: 1, typ: dnswire.TypeDNSKEY}]; ok {
			for _, rr := range rootSet.rrs {
				dk, ok := rr.RData.(dnswire.DNSKEYData)
				if !ok {
					continue
				}
				if matchesRootAnchor(rr.Raw, dk.Algorithm) {
					if trustKey(rootZone, keyTag(rr.Raw, dk.Algorithm), dk) {
						progress = true
					}
				}
			}
		}

		// DS linkage: an authenticated DS RRset endorses matching
		// DNSKEYs in the child zone it names.
		for key, set := range sets {
			if key.typ != dnswire.TypeDS || !authenticated[key] {
				continue
			}
			childKey := rrsetKey{name: key.name, class: key.class, typ: dnswire.TypeDNSKEY}
			childSet, ok := sets[childKey]
			if !ok {
				continue
			}
			for _, dsrr := range set.rrs {
				ds, ok := dsrr.RData.(dnswire.DSData)
				if !ok {
					continue
				}
				for _, krr := range childSet.rrs {
					dk, ok := krr.RData.(dnswire.DNSKEYData)
					if !ok {
						continue
					}
					if dsMatchesDNSKEY(ds, set.name, krr.Raw, dk.Algorithm) {
						if trustKey(key.name, keyTag(krr.Raw, dk.Algorithm), dk) {
							progress = true
						}
					}
				}
			}
		}

		// Discharge every remaining RRSIG we can, against whatever is
		// trusted so far.
		for key, set := range sets {
			if authenticated[key] {
				continue
			}
			sigList := sigs[key]
			for _, sig := range sigList {
				if !set.name.IsSubdomainOf(sig.SignerName) {
					continue
				}
				signerZone := string(sig.SignerName.EncodeCanonical())
				candidates := trusted[signerZone]
				if len(candidates) == 0 {
					continue
				}
				dk, ok := candidates[sig.KeyTag]
				if !ok || dk.Algorithm != sig.Algorithm {
					continue
				}
				sorted := sortCanonical(set.rrs)
				signedData := buildSignedData(sig, set.name, sorted)
				if err := verifySignature(sig.Algorithm, dk.PublicKey, signedData, sig.Signature); err != nil {
					continue
				}
				if !withinValidityWindow(now, sig.Inception, sig.Expiration) {
					cryptoValidOutOfWindow = true
					continue
				}
				authenticated[key] = true
				progress = true
				contributions = append(contributions, sigWindow{sig.Inception, sig.Expiration, sig.OriginalTTL})

				if key.typ == dnswire.TypeDNSKEY {
					zone := key.name
					for _, krr := range set.rrs {
						mdk, ok := krr.RData.(dnswire.DNSKEYData)
						if !ok {
							continue
						}
						trustKey(zone, keyTag(krr.Raw, mdk.Algorithm), mdk)
					}
				}
				break
			}
		}

		if !progress {
			break
		}
	}

	if len(contributions) == 0 {
		if cryptoValidOutOfWindow {
			return nil, newError(KindValidAtOtherTime, "signature chain verifies but current time is outside its validity window")
		}
		return nil, newError(KindUntrustedChain, "no RRset could be authenticated back to the root trust anchor")
	}

	validFrom := contributions[0].inception
	expires := contributions[0].expiration
	var maxTTL uint32 = contributions[0].originalTTL
	for _, c := range contributions[1:] {
		validFrom = serialMax(validFrom, c.inception)
		expires = serialMin(expires, c.expiration)
		if c.originalTTL < maxTTL {
			maxTTL = c.originalTTL
		}
	}

	var out []dnswire.RR
	var nsecSets, nsec3Sets []rrset
	for key, set := range sets {
		if !authenticated[key] {
			continue
		}
		out = append(out, set.rrs...)
		for _, rr := range set.rrs {
			if rr.TTL < maxTTL {
				maxTTL = rr.TTL
			}
		}
		switch key.typ {
		case dnswire.TypeNSEC:
			nsecSets = append(nsecSets, *set)
		case dnswire.TypeNSEC3:
			nsec3Sets = append(nsec3Sets, *set)
		}
	}

	return &Validator{
		stream: VerifiedRRStream{
			RRs:         out,
			ValidFrom:   validFrom,
			Expires:     expires,
			MaxCacheTTL: maxTTL,
		},
		nsecSets: nsecSets,
		nsec3Set: nsec3Sets,
		now:      now,
	}, nil
}

// buildSignedData reconstructs the RFC 4034 §6.2 canonical signing input
// for an RRSIG over an already-sorted RRset: the RRSIG RDATA without its
// trailing signature field, followed by each member RR in canonical form.
// If the RRset's owner has more labels than the RRSIG's Labels field
// claims, the signed name is the wildcard expansion ("*." plus the
// rightmost Labels labels), per RFC 4034 §3.1.3.
func buildSignedData(sig dnswire.RRSIGData, owner dnswire.Name, sorted []dnswire.RR) []byte {
	var buf []byte
	buf = putU16(buf, uint16(sig.TypeCovered))
	buf = append(buf, sig.Algorithm, sig.Labels)
	buf = putU32(buf, sig.OriginalTTL)
	buf = putU32(buf, sig.Expiration)
	buf = putU32(buf, sig.Inception)
	buf = putU16(buf, sig.KeyTag)
	buf = append(buf, sig.SignerName.EncodeCanonical()...)

	signName := owner
	if owner.NumLabels() > int(sig.Labels) {
		n := int(sig.Labels)
		suffix := owner.Labels[len(owner.Labels)-n:]
		labels := append([][]byte{[]byte("*")}, suffix...)
		signName = dnswire.Name{Labels: labels}
	}

	class := uint16(1)
	if len(sorted) > 0 {
		class = sorted[0].Class
	}
	for _, rr := range sorted {
		buf = append(buf, signName.EncodeCanonical()...)
		buf = putU16(buf, uint16(rr.Type))
		buf = putU16(buf, class)
		buf = putU32(buf, sig.OriginalTTL)
		rdata := canonicalRDATA(rr)
		buf = putU16(buf, uint16(len(rdata)))
		buf = append(buf, rdata...)
	}
	return buf
}

func putU16(buf []byte, v uint16) []byte { return append(buf, byte(v>>8), byte(v)) }
func putU32(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
