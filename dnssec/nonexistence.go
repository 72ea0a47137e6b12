package dnssec

import (
	"bytes"

	"github.com/dnssecprover/prover/dnswire"
)

// NonexistenceResult distinguishes an authenticated denial-of-existence
// proof from simply not finding anything relevant in the verified set.
type NonexistenceResult int

const (
	// NotFound means the verified set contains no NSEC/NSEC3 record
	// that says anything about name/rrType — absence of evidence, not
	// evidence of absence.
	NotFound NonexistenceResult = iota

	// Proven means an authenticated NSEC or NSEC3 record establishes
	// that name/rrType does not exist.
	Proven

	// Insecure means a relevant NSEC3 record opted the zone out of
	// denial-of-existence for this name (the opt-out flag), so absence
	// can't be cryptographically proven.
	Insecure
)

// ProveNonexistence checks the validator's authenticated NSEC/NSEC3
// records for a proof that name does not carry an RRset of type rrType.
func (v *Validator) ProveNonexistence(name dnswire.Name, rrType dnswire.RRType) (NonexistenceResult, error) {
	for _, set := range v.nsecSets {
		for _, rr := range set.rrs {
			nsec, ok := rr.RData.(dnswire.NSECData)
			if !ok {
				continue
			}
			if nsecProvesNodata(rr.Name, nsec.TypeBitmap, name, rrType) {
				return Proven, nil
			}
			if nsecCoversName(rr.Name, nsec.NextOwner, name) {
				return Proven, nil
			}
		}
	}

	for _, set := range v.nsec3Set {
		for _, rr := range set.rrs {
			n3, ok := rr.RData.(dnswire.NSEC3Data)
			if !ok {
				continue
			}
			ownerHash, err := nsec3OwnerHash(rr.Name)
			if err != nil {
				continue
			}
			if bytes.Equal(ownerHash, mustNSEC3Hash(name, n3)) {
				if !dnswire.TypeBitmapHasType(n3.TypeBitmap, rrType) {
					return Proven, nil
				}
				continue
			}
			targetHash, err := nsec3Hash(name, n3.HashAlgorithm, n3.Iterations, n3.Salt)
			if err != nil {
				if n3.Flags&0x01 != 0 {
					return Insecure, nil
				}
				continue
			}
			if nsec3Covers(ownerHash, n3.NextHashed, targetHash) {
				if n3.Flags&0x01 != 0 {
					return Insecure, nil
				}
				return Proven, nil
			}
		}
	}

	return NotFound, nil
}

func mustNSEC3Hash(name dnswire.Name, n3 dnswire.NSEC3Data) []byte {
	h, err := nsec3Hash(name, n3.HashAlgorithm, n3.Iterations, n3.Salt)
	if err != nil {
		return nil
	}
	return h
}
