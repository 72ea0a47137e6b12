package query

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/dnssecprover/prover/dnswire"
)

// buildQuery constructs a TCP DNS query (length-prefixed) for name/qtype,
// with EDNS0 and the DNSSEC-OK bit set so the resolver includes RRSIGs.
func buildQuery(name dnswire.Name, qtype dnswire.RRType) []byte {
	nameWire := name.EncodeCanonical()

	var msg []byte
	msg = putU16(msg, txID)
	msg = append(msg, 0x01, 0x20) // RD=1, AD=1 (we only trust what verifies)
	msg = append(msg, 0, 1) // QDCOUNT=1
	msg = append(msg, 0, 0) // ANCOUNT=0
	msg = append(msg, 0, 0) // NSCOUNT=0
	msg = append(msg, 0, 1) // ARCOUNT=1 (the OPT record)
	msg = append(msg, nameWire...)
	msg = putU16(msg, uint16(qtype))
	msg = putU16(msg, 1) // IN class

	// EDNS0 OPT pseudo-record: root name, type 41, class carries UDP
	// payload size (irrelevant over TCP, sent as 0), TTL carries the
	// extended RCODE/version/flags with the DNSSEC-OK bit set.
	msg = append(msg, 0) // root name
	msg = putU16(msg, uint16(dnswire.TypeOPT))
	msg = putU16(msg, 0) // UDP payload size
	msg = append(msg, 0, 0)
	msg = putU16(msg, 0x8000) // DO bit
	msg = putU16(msg, 0)      // RDLENGTH=0

	out := make([]byte, 2+len(msg))
	binary.BigEndian.PutUint16(out, uint16(len(msg)))
	copy(out[2:], msg)
	return out
}

func putU16(buf []byte, v uint16) []byte { return append(buf, byte(v>>8), byte(v)) }

func sendQuery(ctx context.Context, conn net.Conn, name dnswire.Name, qtype dnswire.RRType) error {
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	}
	_, err := conn.Write(buildQuery(name, qtype))
	if err != nil {
		return fmt.Errorf("query: send: %w", err)
	}
	return nil
}

// readResponse reads one length-prefixed response, validates it, appends
// every answer RR to proof in RFC 9102 stream encoding, and returns the
// first RRSIG record found (if any) so the caller can decide the next
// round's query.
func readResponse(ctx context.Context, conn net.Conn, proof *[]byte) (*dnswire.RRSIGData, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
	} else {
		_ = conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	}

	var lenBuf [2]byte
	if _, err := io.ReadFull(conn, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("query: read length prefix: %w", err)
	}
	respLen := binary.BigEndian.Uint16(lenBuf[:])
	resp := make([]byte, respLen)
	if _, err := io.ReadFull(conn, resp); err != nil {
		return nil, fmt.Errorf("query: read response body: %w", err)
	}

	msg, err := dnswire.ParseMessage(resp)
	if err != nil {
		return nil, fmt.Errorf("query: parse response: %w", err)
	}
	if err := validateResponseHeader(msg.Header); err != nil {
		return nil, err
	}
	if len(msg.Questions) != 1 {
		return nil, fmt.Errorf("query: resolver answered %d questions, want 1", len(msg.Questions))
	}

	var sig *dnswire.RRSIGData
	for _, rr := range msg.Answer {
		*proof = append(*proof, encodeRRStream(rr)...)
		if rrsig, ok := rr.RData.(dnswire.RRSIGData); ok && sig == nil {
			s := rrsig
			sig = &s
		}
	}
	return sig, nil
}

func validateResponseHeader(h dnswire.Header) error {
	if !h.QR {
		return fmt.Errorf("query: response missing QR flag")
	}
	if h.RCode != 0 {
		return fmt.Errorf("query: resolver returned RCODE %d", h.RCode)
	}
	if !h.AD {
		return fmt.Errorf("query: resolver did not authenticate the response (AD bit unset)")
	}
	return nil
}

// encodeRRStream re-encodes a parsed RR into the uncompressed RFC 9102
// stream form the core validator expects: name, type, class, TTL, RDLENGTH,
// raw RDATA, with no compression pointers anywhere. RData is always
// accompanied by the original raw RDATA bytes, so no RDATA re-serialization
// is needed here.
func encodeRRStream(rr dnswire.RR) []byte {
	var out []byte
	out = append(out, rr.Name.EncodeCanonical()...)
	out = putU16(out, uint16(rr.Type))
	out = putU16(out, rr.Class)
	out = append(out, byte(rr.TTL>>24), byte(rr.TTL>>16), byte(rr.TTL>>8), byte(rr.TTL))
	out = putU16(out, uint16(len(rr.Raw)))
	out = append(out, rr.Raw...)
	return out
}
