package api

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/miekg/dns"

	"github.com/favonia/cloudflare-zonesync/internal/domain"
)

// A SOAResolver looks up the SOA record of a zone. REST APIs of some
// providers (Cloudflare among them) do not expose the SOA as a record,
// so the client asks the zone's own nameservers over plain DNS.
type SOAResolver interface {
	LookupSOA(ctx context.Context, zone domain.FQDN, nameservers []string) (*dns.SOA, error)
}

// ErrNoSOA means no queried nameserver returned an SOA record.
var ErrNoSOA = errors.New("no SOA record found")

type dnsSOAResolver struct {
	client *dns.Client
}

// NewSOAResolver creates a [SOAResolver] querying over UDP port 53.
func NewSOAResolver() SOAResolver {
	return dnsSOAResolver{client: &dns.Client{}}
}

// LookupSOA asks the given nameservers, in order, for the SOA of zone,
// returning the first answer.
func (r dnsSOAResolver) LookupSOA(ctx context.Context,
	zone domain.FQDN, nameservers []string,
) (*dns.SOA, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(zone.String(), dns.TypeSOA)

	err := ErrNoSOA
	for _, ns := range nameservers {
		addr := net.JoinHostPort(strings.TrimSuffix(ns, "."), "53")
		in, _, exchangeErr := r.client.ExchangeContext(ctx, msg, addr)
		if exchangeErr != nil {
			err = exchangeErr
			continue
		}
		for _, rr := range in.Answer {
			if soa, ok := rr.(*dns.SOA); ok {
				return soa, nil
			}
		}
		err = ErrNoSOA
	}
	return nil, err
}
