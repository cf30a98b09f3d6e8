package api

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cloudflare/cloudflare-go"
	"github.com/miekg/dns"

	"github.com/favonia/cloudflare-zonesync/internal/domain"
	"github.com/favonia/cloudflare-zonesync/internal/pp"
)

// apexNSTTL is the TTL reported for the synthesized apex NS record
// set. Cloudflare does not expose the apex NS as a regular record.
const apexNSTTL = 86400

// foldMX folds the separately stored MX priority back into the value
// text, the way MX RDATA is spelled in a zone file.
func foldMX(priority *uint16, content string) string {
	var prio uint16
	if priority != nil {
		prio = *priority
	}
	return fmt.Sprintf("%d %s", prio, content)
}

// splitMX splits the leading priority off an MX value. Values without
// one are passed through; the API will reject them.
func splitMX(value string) (*uint16, string) {
	prio, content, found := strings.Cut(value, " ")
	if found {
		if n, err := strconv.ParseUint(prio, 10, 16); err == nil {
			p := uint16(n)
			return &p, content
		}
	}
	return nil, value
}

// normalizeValue puts record data in the spelling used throughout this
// program: hostname-valued types are fully qualified, and MX carries
// its priority in the value text.
func normalizeValue(typ string, content string, priority *uint16) string {
	switch typ {
	case "MX":
		return foldMX(priority, dns.Fqdn(content))
	case "NS", "CNAME":
		return dns.Fqdn(content)
	default:
		return content
	}
}

// groupRecords groups Cloudflare's per-value records into record sets
// keyed by (name, type). Values are sorted so that two zones holding
// the same data always compare equal.
func groupRecords(raw []cloudflare.DNSRecord) []RecordSet {
	type key struct {
		name domain.FQDN
		typ  string
	}

	var sets []RecordSet
	index := map[key]int{}
	for _, r := range raw {
		name := domain.FQDN(dns.Fqdn(r.Name))
		value := normalizeValue(r.Type, r.Content, r.Priority)

		k := key{name, r.Type}
		if i, ok := index[k]; ok {
			sets[i].Values = append(sets[i].Values, value)
			sets[i].IDs = append(sets[i].IDs, r.ID)
			continue
		}
		index[k] = len(sets)
		sets = append(sets, RecordSet{
			Name:        name,
			Type:        r.Type,
			TTL:         r.TTL,
			Values:      []string{value},
			Description: r.Comment,
			IDs:         []string{r.ID},
		})
	}

	for i := range sets {
		sortValues(&sets[i])
	}
	return sets
}

// sortValues sorts the values of a record set, keeping the backing
// record IDs aligned with their values.
func sortValues(rs *RecordSet) {
	type pair struct{ value, id string }
	pairs := make([]pair, len(rs.Values))
	for i := range rs.Values {
		pairs[i] = pair{rs.Values[i], rs.IDs[i]}
	}
	slices.SortFunc(pairs, func(a, b pair) int { return strings.Compare(a.value, b.value) })
	for i, p := range pairs {
		rs.Values[i], rs.IDs[i] = p.value, p.id
	}
}

// apexNS synthesizes the apex NS record set from the zone metadata.
func apexNS(zone Zone) RecordSet {
	return RecordSet{
		Name:   zone.Name,
		Type:   "NS",
		TTL:    apexNSTTL,
		Values: zone.NameServers,
	}
}

// ErrManagedRecordSet means a record set is managed by the provider
// and cannot be mutated through the records API.
var ErrManagedRecordSet = errors.New("provider-managed record set")

// ListRecordSets returns all record sets of the zone, with the apex NS
// set synthesized from the zone metadata. The apex SOA is only
// available through [CloudflareHandle.ListRecordSetsOf] because it
// requires a live DNS query.
func (h CloudflareHandle) ListRecordSets(ctx context.Context, ppfmt pp.PP, zone Zone) ([]RecordSet, error) {
	//nolint:exhaustruct // Other fields are intentionally unspecified
	raw, _, err := h.cf.ListDNSRecords(ctx,
		cloudflare.ZoneIdentifier(zone.ID), cloudflare.ListDNSRecordsParams{})
	if err != nil {
		hintTokenPermission(ppfmt, err)
		return nil, providerError("list record sets", err)
	}

	return append([]RecordSet{apexNS(zone)}, groupRecords(raw)...), nil
}

// ListRecordSetsOf returns the record sets with the given name and
// type. The apex NS and SOA are synthesized; everything else comes
// from a filtered record listing.
func (h CloudflareHandle) ListRecordSetsOf(ctx context.Context, ppfmt pp.PP,
	zone Zone, name domain.FQDN, typ string,
) ([]RecordSet, error) {
	switch {
	case name == zone.Name && typ == "SOA":
		soa, err := h.resolver.LookupSOA(ctx, zone.Name, zone.NameServers)
		if err != nil {
			return nil, providerError("look up the SOA record", err)
		}
		return []RecordSet{{
			Name:   zone.Name,
			Type:   "SOA",
			TTL:    int(soa.Hdr.Ttl),
			Values: []string{soaRDATA(soa)},
		}}, nil

	case name == zone.Name && typ == "NS":
		return []RecordSet{apexNS(zone)}, nil

	default:
		//nolint:exhaustruct // Other fields are intentionally unspecified
		raw, _, err := h.cf.ListDNSRecords(ctx,
			cloudflare.ZoneIdentifier(zone.ID),
			cloudflare.ListDNSRecordsParams{
				Name: name.DNSNameASCII(),
				Type: typ,
			})
		if err != nil {
			hintTokenPermission(ppfmt, err)
			return nil, providerError("list record sets", err)
		}
		return groupRecords(raw), nil
	}
}

// CreateRecordSet creates one record per value.
func (h CloudflareHandle) CreateRecordSet(ctx context.Context, ppfmt pp.PP, zone Zone, rs RecordSet) error {
	rc := cloudflare.ZoneIdentifier(zone.ID)
	for _, value := range rs.Values {
		content := value
		var priority *uint16
		if rs.Type == "MX" {
			priority, content = splitMX(value)
		}

		//nolint:exhaustruct // Other fields are intentionally omitted
		params := cloudflare.CreateDNSRecordParams{
			Name:     rs.Name.DNSNameASCII(),
			Type:     rs.Type,
			Content:  content,
			TTL:      rs.TTL,
			Priority: priority,
			Comment:  rs.Description,
		}
		if _, err := h.cf.CreateDNSRecord(ctx, rc, params); err != nil {
			hintTokenPermission(ppfmt, err)
			return providerError("create record set", err)
		}
	}
	return nil
}

// UpdateRecordSet rewrites an existing record set: backing records are
// updated in place as far as they go, then missing values are created
// and leftover records deleted.
func (h CloudflareHandle) UpdateRecordSet(ctx context.Context, ppfmt pp.PP, zone Zone,
	existing RecordSet, ttl int, values []string, description string,
) error {
	if len(existing.IDs) == 0 {
		return providerError("update record set", ErrManagedRecordSet)
	}

	rc := cloudflare.ZoneIdentifier(zone.ID)
	reused := min(len(existing.IDs), len(values))

	for i := 0; i < reused; i++ {
		content := values[i]
		var priority *uint16
		if existing.Type == "MX" {
			priority, content = splitMX(values[i])
		}

		comment := description
		//nolint:exhaustruct // Other fields are intentionally omitted
		params := cloudflare.UpdateDNSRecordParams{
			ID:       existing.IDs[i],
			Type:     existing.Type,
			Name:     existing.Name.DNSNameASCII(),
			Content:  content,
			TTL:      ttl,
			Priority: priority,
			Comment:  &comment,
		}
		if _, err := h.cf.UpdateDNSRecord(ctx, rc, params); err != nil {
			hintTokenPermission(ppfmt, err)
			return providerError("update record set", err)
		}
	}

	if len(values) > reused {
		extra := existing
		extra.IDs = nil
		extra.TTL = ttl
		extra.Values = values[reused:]
		extra.Description = description
		if err := h.CreateRecordSet(ctx, ppfmt, zone, extra); err != nil {
			return err
		}
	}

	for _, id := range existing.IDs[reused:] {
		if err := h.cf.DeleteDNSRecord(ctx, rc, id); err != nil {
			hintTokenPermission(ppfmt, err)
			return providerError("update record set", err)
		}
	}

	return nil
}

// DeleteRecordSet deletes all records backing the set.
func (h CloudflareHandle) DeleteRecordSet(ctx context.Context, ppfmt pp.PP, zone Zone, existing RecordSet) error {
	if len(existing.IDs) == 0 {
		return providerError("delete record set", ErrManagedRecordSet)
	}

	rc := cloudflare.ZoneIdentifier(zone.ID)
	for _, id := range existing.IDs {
		if err := h.cf.DeleteDNSRecord(ctx, rc, id); err != nil {
			hintTokenPermission(ppfmt, err)
			return providerError("delete record set", err)
		}
	}
	return nil
}
