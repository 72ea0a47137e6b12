package query

import (
	"testing"

	"github.com/dnssecprover/prover/dnswire"
	"github.com/stretchr/testify/require"
)

func TestBuildQueryLayout(t *testing.T) {
	name, err := dnswire.ParseNamePresentation("example.com.")
	require.NoError(t, err)

	msg := buildQuery(name, dnswire.TypeTXT)
	require.Greater(t, len(msg), 2)

	bodyLen := int(msg[0])<<8 | int(msg[1])
	require.Equal(t, bodyLen, len(msg)-2)

	body := msg[2:]
	require.Equal(t, byte(0x42), body[0])
	require.Equal(t, byte(0x42), body[1])
	require.Equal(t, byte(0x01), body[2])
	require.Equal(t, byte(0x20), body[3])

	// QDCOUNT=1, ANCOUNT=0, NSCOUNT=0, ARCOUNT=1
	require.Equal(t, []byte{0, 1, 0, 0, 0, 0, 0, 1}, body[4:12])
}

func TestEncodeRRStreamRoundTrip(t *testing.T) {
	name, err := dnswire.ParseNamePresentation("example.com.")
	require.NoError(t, err)

	rr := dnswire.RR{
		Name:  name,
		Type:  dnswire.TypeTXT,
		Class: 1,
		TTL:   300,
		RData: dnswire.TXTData{Strings: [][]byte{[]byte("hi")}},
		Raw:   []byte{2, 'h', 'i'},
	}

	encoded := encodeRRStream(rr)
	rrs, err := dnswire.ParseRRStream(encoded)
	require.NoError(t, err)
	require.Len(t, rrs, 1)
	require.Equal(t, rr.Type, rrs[0].Type)
	require.Equal(t, rr.TTL, rrs[0].TTL)
}

func TestValidateResponseHeaderRejectsUnauthenticated(t *testing.T) {
	err := validateResponseHeader(dnswire.Header{QR: true, AD: false})
	require.Error(t, err)

	err = validateResponseHeader(dnswire.Header{QR: true, AD: true, RCode: 2})
	require.Error(t, err)

	err = validateResponseHeader(dnswire.Header{QR: true, AD: true})
	require.NoError(t, err)
}
