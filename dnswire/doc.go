// Package dnswire parses DNS domain names and resource records from their
// wire format, in two modes:
//
//   - Packet mode (name.go's ParseName, packet.go): full DNS messages as
//     received from a resolver, where names may use compression pointers.
//   - Stream mode (stream.go's ParseRRStream): the RFC 9102 proof format a
//     validator actually consumes, a flat concatenation of complete RRs
//     with no compression pointers permitted in any name.
//
// Byte-string extraction throughout uses golang.org/x/crypto/cryptobyte,
// the same TLV-parsing idiom the standard library's own crypto/x509 uses.
package dnswire
