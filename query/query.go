// Package query builds RFC 9102 DNSSEC proofs by querying a recursive
// resolver directly over TCP. It is the out-of-scope collaborator named in
// spec.md §6: the validation core never imports it, and only consumes the
// bytes it produces.
package query

import (
	"context"
	"fmt"
	"net"

	"github.com/dnssecprover/prover/dnswire"
	"github.com/dnssecprover/prover/internal/proverlog"
)

// txID is fixed rather than random: the driver only trusts signed data, so
// there's nothing a spoofed transaction ID buys an attacker that a forged
// signature wouldn't already need.
const txID = 0x4242

const maxRounds = 10

var log = proverlog.NewFromEnv("query")

// BuildProof queries resolver for domain's rrType records and every DS/DNSKEY
// RRset needed to verify them, walking from the leaf zone up to the root
// trust anchor. It blocks; use BuildProofContext to bound it with a context.
func BuildProof(resolver string, domain dnswire.Name, rrType dnswire.RRType) ([]byte, error) {
	return BuildProofContext(context.Background(), resolver, domain, rrType)
}

// BuildProofContext is BuildProof with cancellation/deadline support via ctx.
func BuildProofContext(ctx context.Context, resolver string, domain dnswire.Name, rrType dnswire.RRType) ([]byte, error) {
	traceID := proverlog.NewTraceID()
	ctx, entry := log.WithTraceID(ctx, traceID)
	entry = entry.WithField("domain", domain.String()).WithField("resolver", resolver)
	entry.Debug("building DNSSEC proof")

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", resolver)
	if err != nil {
		return nil, fmt.Errorf("query: dial %s: %w", resolver, err)
	}
	defer conn.Close()

	var proof []byte
	name, qtype := domain, rrType
	reachedRoot := false

	for round := 0; round < maxRounds; round++ {
		if err := sendQuery(ctx, conn, name, qtype); err != nil {
			return nil, err
		}
		sig, err := readResponse(ctx, conn, &proof)
		if err != nil {
			return nil, err
		}
		if sig == nil {
			entry.WithField("round", round).Debug("no RRSIG in response, retrying with same query")
			continue
		}
		if qtype == dnswire.TypeDNSKEY && sig.SignerName.Equal(name) {
			if name.IsRoot() {
				reachedRoot = true
				break
			}
			qtype = dnswire.TypeDS
		} else {
			name, qtype = sig.SignerName, dnswire.TypeDNSKEY
		}
	}

	if !reachedRoot {
		return nil, fmt.Errorf("query: chain to root not reached within %d rounds", maxRounds)
	}
	entry.WithField("proof_bytes", len(proof)).Info("proof complete")
	return proof, nil
}
