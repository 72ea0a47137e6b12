package rsakey

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodeRFC3110(e int, n []byte) []byte {
	var exp []byte
	for v := e; v > 0; v >>= 8 {
		exp = append([]byte{byte(v)}, exp...)
	}
	var out []byte
	if len(exp) < 256 {
		out = append(out, byte(len(exp)))
	} else {
		out = append(out, 0, byte(len(exp)>>8), byte(len(exp)))
	}
	out = append(out, exp...)
	out = append(out, n...)
	return out
}

func TestParsePublicKeyOneByteExponent(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	rdata := encodeRFC3110(key.PublicKey.E, key.PublicKey.N.Bytes())

	pub, err := ParsePublicKey(rdata)
	require.NoError(t, err)
	require.Equal(t, key.PublicKey.E, pub.E)
	require.Equal(t, 0, key.PublicKey.N.Cmp(pub.N))
}

func TestParsePublicKeyThreeByteExponent(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	rdata := encodeRFC3110(65537, key.PublicKey.N.Bytes())
	// Force the three-byte length-prefix form (0x00 plus a two-byte
	// length), which RFC 3110 uses for exponents longer than 255 bytes,
	// even though 65537's three-byte exponent fits the one-byte form.
	rdata = append([]byte{0, 0, 3}, rdata[1:]...)

	_, err = ParsePublicKey(rdata)
	require.NoError(t, err)
}

func TestParsePublicKeyTruncated(t *testing.T) {
	_, err := ParsePublicKey([]byte{5, 1, 2})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestParsePublicKeyRejectsSmallModulus(t *testing.T) {
	rdata := encodeRFC3110(3, make([]byte, 32))
	_, err := ParsePublicKey(rdata)
	require.ErrorIs(t, err, ErrModulusTooSmall)
}

func TestVerifyRSASHA256RoundTrip(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	rdata := encodeRFC3110(key.PublicKey.E, key.PublicKey.N.Bytes())
	pub, err := ParsePublicKey(rdata)
	require.NoError(t, err)

	data := []byte("rrset canonical bytes")
	digest := sha256.Sum256(data)
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	require.NoError(t, err)

	require.NoError(t, VerifyRSASHA256(pub, data, sig))
	require.Error(t, VerifyRSASHA256(pub, []byte("tampered"), sig))
}
