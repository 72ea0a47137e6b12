package dnswire

// ParseRRStream decodes the RFC 9102 proof wire format: a flat, ordered
// concatenation of complete resource records with no message header and
// no compression pointers anywhere, including inside RDATA. Each record's
// own RDLENGTH is the only delimiter; duplicate or out-of-order records
// are preserved exactly as given, and the validator accepts them.
func ParseRRStream(data []byte) ([]RR, error) {
	var rrs []RR
	pos := 0
	for pos < len(data) {
		rr, next, err := parseRRNoCompression(data, pos)
		if err != nil {
			return nil, err
		}
		pos = next
		rrs = append(rrs, rr)
	}
	return rrs, nil
}

func parseRRNoCompression(data []byte, pos int) (RR, int, error) {
	name, pos, err := ParseNameNoCompression(data, pos)
	if err != nil {
		return RR{}, 0, err
	}
	if pos+10 > len(data) {
		return RR{}, 0, ErrTruncated
	}
	typ := RRType(be16(data[pos:]))
	class := be16(data[pos+2:])
	ttl := be32(data[pos+4:])
	rdlen := int(be16(data[pos+8:]))
	pos += 10
	if pos+rdlen > len(data) {
		return RR{}, 0, ErrTruncated
	}
	rdata := data[pos : pos+rdlen]
	pos += rdlen

	rdataParsed, err := decodeRDATA(typ, rdata, nil, 0, false)
	if err != nil {
		return RR{}, 0, err
	}
	return RR{
		Name:  name,
		Type:  typ,
		Class: class,
		TTL:   ttl,
		RData: rdataParsed,
		Raw:   append([]byte(nil), rdata...),
	}, pos, nil
}
