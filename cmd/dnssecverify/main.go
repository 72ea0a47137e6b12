// Command dnssecverify builds or loads a DNSSEC proof and verifies it,
// printing the authenticated records and their validity window. This is the
// concrete "language-binding wrapper" collaborator named in spec.md §1.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dnssecprover/prover/dnssec"
	"github.com/dnssecprover/prover/dnswire"
	"github.com/dnssecprover/prover/query"
)

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func main() {
	domain := flag.String("domain", envOrDefault("DNSSECVERIFY_DOMAIN", ""), "domain name to query (env DNSSECVERIFY_DOMAIN)")
	rrType := flag.String("type", envOrDefault("DNSSECVERIFY_TYPE", "TXT"), "record type: A, AAAA, TXT, or TLSA (env DNSSECVERIFY_TYPE)")
	resolver := flag.String("resolver", envOrDefault("DNSSECVERIFY_RESOLVER", "8.8.8.8:53"), "recursive resolver address (env DNSSECVERIFY_RESOLVER)")
	proofFile := flag.String("proof-file", "", "verify a previously-saved proof file instead of querying a resolver")
	jsonOut := flag.Bool("json", false, "print the verified result as JSON")
	timeout := flag.Duration("timeout", 10*time.Second, "overall query timeout")
	flag.Parse()

	if *domain == "" && *proofFile == "" {
		fmt.Fprintln(os.Stderr, "dnssecverify: -domain (or -proof-file) is required")
		flag.Usage()
		os.Exit(2)
	}

	qtype, err := parseRRType(*rrType)
	if err != nil {
		log.Fatalf("dnssecverify: %v", err)
	}

	var proof []byte
	if *proofFile != "" {
		proof, err = os.ReadFile(*proofFile)
		if err != nil {
			log.Fatalf("dnssecverify: read proof file: %v", err)
		}
	} else {
		name, err := dnswire.ParseNamePresentation(*domain)
		if err != nil {
			log.Fatalf("dnssecverify: invalid domain %q: %v", *domain, err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()
		proof, err = query.BuildProofContext(ctx, *resolver, name, qtype)
		if err != nil {
			log.Fatalf("dnssecverify: build proof: %v", err)
		}
	}

	rrs, err := dnswire.ParseRRStream(proof)
	if err != nil {
		log.Fatalf("dnssecverify: parse proof: %v", err)
	}

	v, err := dnssec.Verify(rrs, uint32(time.Now().Unix()))
	if err != nil {
		log.Fatalf("dnssecverify: verification failed: %v", err)
	}

	stream := v.Stream()
	if *jsonOut {
		printJSON(stream)
		return
	}
	printText(stream)
}

func parseRRType(s string) (dnswire.RRType, error) {
	switch strings.ToUpper(s) {
	case "A":
		return dnswire.TypeA, nil
	case "AAAA":
		return dnswire.TypeAAAA, nil
	case "TXT":
		return dnswire.TypeTXT, nil
	case "TLSA":
		return dnswire.TypeTLSA, nil
	default:
		return 0, fmt.Errorf("unsupported record type %q", s)
	}
}

// jsonResult mirrors dnssec.VerifiedRRStream in a form encoding/json can
// render without reaching into dnswire.RR's unexported RData interface.
type jsonResult struct {
	ValidFrom   uint32   `json:"valid_from"`
	Expires     uint32   `json:"expires"`
	MaxCacheTTL uint32   `json:"max_cache_ttl"`
	Records     []string `json:"records"`
}

func printJSON(stream dnssec.VerifiedRRStream) {
	out := jsonResult{
		ValidFrom:   stream.ValidFrom,
		Expires:     stream.Expires,
		MaxCacheTTL: stream.MaxCacheTTL,
	}
	for _, rr := range stream.RRs {
		out.Records = append(out.Records, fmt.Sprintf("%s %d IN TYPE%d", rr.Name.String(), rr.TTL, rr.Type))
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("dnssecverify: encode result: %v", err)
	}
}

func printText(stream dnssec.VerifiedRRStream) {
	fmt.Printf("verified %d record(s), valid from %d to %d (max cache TTL %ds)\n",
		len(stream.RRs), stream.ValidFrom, stream.Expires, stream.MaxCacheTTL)
	for _, rr := range stream.RRs {
		fmt.Printf("  %s %d IN TYPE%d\n", rr.Name.String(), rr.TTL, rr.Type)
	}
}
