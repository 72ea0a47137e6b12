package dnswire

import (
	"golang.org/x/crypto/cryptobyte"
)

// decodeRDATA decodes the typed RDATA for one RR. msg/rdataOffset are only
// used for the (rare, packet-mode-only) case of a name embedded in RDATA
// that is still allowed to use compression — NS, CNAME, and DNAME targets.
// RFC 4034 §6.2 forbids compression in every DNSSEC-relevant name (RRSIG
// signer name, NSEC next-owner name), so those are always decoded without
// following pointers, in both packet and stream mode.
func decodeRDATA(t RRType, rdata []byte, msg []byte, rdataOffset int, allowCompression bool) (RData, error) {
	switch t {
	case TypeA:
		if len(rdata) != 4 {
			return nil, ErrRDATALengthMismatch
		}
		var d AData
		copy(d.Addr[:], rdata)
		return d, nil

	case TypeAAAA:
		if len(rdata) != 16 {
			return nil, ErrRDATALengthMismatch
		}
		var d AAAAData
		copy(d.Addr[:], rdata)
		return d, nil

	case TypeNS:
		name, err := decodeEmbeddedName(rdata, msg, rdataOffset, allowCompression)
		if err != nil {
			return nil, err
		}
		return NSData{Target: name}, nil

	case TypeCNAME:
		name, err := decodeEmbeddedName(rdata, msg, rdataOffset, allowCompression)
		if err != nil {
			return nil, err
		}
		return CNAMEData{Target: name}, nil

	case TypeDNAME:
		name, err := decodeEmbeddedName(rdata, msg, rdataOffset, allowCompression)
		if err != nil {
			return nil, err
		}
		return DNameData{Target: name}, nil

	case TypeTXT:
		var strs [][]byte
		s := cryptobyte.String(rdata)
		for !s.Empty() {
			var piece cryptobyte.String
			if !s.ReadUint8LengthPrefixed(&piece) {
				return nil, ErrTruncated
			}
			strs = append(strs, append([]byte(nil), piece...))
		}
		return TXTData{Strings: strs}, nil

	case TypeDS:
		s := cryptobyte.String(rdata)
		var keyTag uint16
		var alg, digestType uint8
		if !s.ReadUint16(&keyTag) || !s.ReadUint8(&alg) || !s.ReadUint8(&digestType) {
			return nil, ErrTruncated
		}
		return DSData{KeyTag: keyTag, Algorithm: alg, DigestType: digestType, Digest: append([]byte(nil), s...)}, nil

	case TypeDNSKEY:
		s := cryptobyte.String(rdata)
		var flags uint16
		var proto, alg uint8
		if !s.ReadUint16(&flags) || !s.ReadUint8(&proto) || !s.ReadUint8(&alg) {
			return nil, ErrTruncated
		}
		return DNSKEYData{Flags: flags, Protocol: proto, Algorithm: alg, PublicKey: append([]byte(nil), s...)}, nil

	case TypeRRSIG:
		s := cryptobyte.String(rdata)
		var typeCovered, keyTag uint16
		var alg, labels uint8
		var origTTL, expiration, inception uint32
		if !s.ReadUint16(&typeCovered) || !s.ReadUint8(&alg) || !s.ReadUint8(&labels) ||
			!s.ReadUint32(&origTTL) || !s.ReadUint32(&expiration) || !s.ReadUint32(&inception) ||
			!s.ReadUint16(&keyTag) {
			return nil, ErrTruncated
		}
		rest := []byte(s)
		signer, nameEnd, err := ParseNameNoCompression(rest, 0)
		if err != nil {
			return nil, err
		}
		return RRSIGData{
			TypeCovered: RRType(typeCovered),
			Algorithm:   alg,
			Labels:      labels,
			OriginalTTL: origTTL,
			Expiration:  expiration,
			Inception:   inception,
			KeyTag:      keyTag,
			SignerName:  signer,
			Signature:   append([]byte(nil), rest[nameEnd:]...),
		}, nil

	case TypeNSEC:
		next, nameEnd, err := ParseNameNoCompression(rdata, 0)
		if err != nil {
			return nil, err
		}
		return NSECData{NextOwner: next, TypeBitmap: append([]byte(nil), rdata[nameEnd:]...)}, nil

	case TypeNSEC3:
		s := cryptobyte.String(rdata)
		var hashAlg, flags uint8
		var iterations uint16
		var salt, nextHashed cryptobyte.String
		if !s.ReadUint8(&hashAlg) || !s.ReadUint8(&flags) || !s.ReadUint16(&iterations) ||
			!s.ReadUint8LengthPrefixed(&salt) || !s.ReadUint8LengthPrefixed(&nextHashed) {
			return nil, ErrTruncated
		}
		return NSEC3Data{
			HashAlgorithm: hashAlg,
			Flags:         flags,
			Iterations:    iterations,
			Salt:          append([]byte(nil), salt...),
			NextHashed:    append([]byte(nil), nextHashed...),
			TypeBitmap:    append([]byte(nil), s...),
		}, nil

	case TypeTLSA:
		s := cryptobyte.String(rdata)
		var usage, selector, matching uint8
		if !s.ReadUint8(&usage) || !s.ReadUint8(&selector) || !s.ReadUint8(&matching) {
			return nil, ErrTruncated
		}
		return TLSAData{CertUsage: usage, Selector: selector, MatchingType: matching, Data: append([]byte(nil), s...)}, nil

	default:
		return UnknownData{Raw: append([]byte(nil), rdata...)}, nil
	}
}

func decodeEmbeddedName(rdata, msg []byte, rdataOffset int, allowCompression bool) (Name, error) {
	if allowCompression {
		name, _, err := ParseName(msg, rdataOffset)
		return name, err
	}
	name, _, err := ParseNameNoCompression(rdata, 0)
	return name, err
}
