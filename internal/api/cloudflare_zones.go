package api

import (
	"context"
	"errors"

	"github.com/cloudflare/cloudflare-go"
	"github.com/jellydator/ttlcache/v3"
	"github.com/miekg/dns"

	"github.com/favonia/cloudflare-zonesync/internal/domain"
	"github.com/favonia/cloudflare-zonesync/internal/pp"
)

func hintTokenPermission(ppfmt pp.PP, err error) {
	var authentication *cloudflare.AuthenticationError
	var authorization *cloudflare.AuthorizationError
	if errors.As(err, &authentication) || errors.As(err, &authorization) {
		ppfmt.Infof(pp.EmojiUserWarning,
			`Double check your API token; it needs the "Edit" permission of "Zone - DNS" and the "Read" permission of "Zone - Zone"`)
	}
}

// ErrAmbiguousZoneName means several active zones share one name.
var ErrAmbiguousZoneName = errors.New("multiple zones with the same name")

func newZone(z cloudflare.Zone) Zone {
	nameservers := make([]string, 0, len(z.NameServers))
	for _, ns := range z.NameServers {
		nameservers = append(nameservers, dns.Fqdn(ns))
	}

	return Zone{
		ID:          z.ID,
		Name:        domain.FQDN(dns.Fqdn(z.Name)),
		Status:      z.Status,
		NameServers: nameservers,
	}
}

// ZoneNames lists the names of all zones the token can see.
func (h CloudflareHandle) ZoneNames(ctx context.Context, ppfmt pp.PP) ([]string, error) {
	zones, err := h.cf.ListZones(ctx)
	if err != nil {
		hintTokenPermission(ppfmt, err)
		return nil, providerError("list zones", err)
	}

	names := make([]string, 0, len(zones))
	for _, z := range zones {
		names = append(names, dns.Fqdn(z.Name))
	}
	return names, nil
}

// FindZone looks up a zone by name via ListZonesContext.
func (h CloudflareHandle) FindZone(ctx context.Context, ppfmt pp.PP, name domain.FQDN) (Zone, bool, error) {
	if zone := h.cache.zones.Get(name); zone != nil {
		return zone.Value(), true, nil
	}

	res, err := h.cf.ListZonesContext(ctx,
		cloudflare.WithZoneFilters(name.DNSNameASCII(), h.accountID, ""))
	if err != nil {
		hintTokenPermission(ppfmt, err)
		return Zone{}, false, providerError("find zone", err)
	}

	matched := make([]Zone, 0, len(res.Result))
	for _, z := range res.Result {
		// The list of possible statuses was at https://api.cloudflare.com/#zone-list-zones
		// but the documentation is missing now.
		switch z.Status {
		case "active": // fully working
			matched = append(matched, newZone(z))
		case
			"deactivated",  // violating term of service, etc.
			"initializing", // the setup was just started?
			"moved",        // domain registrar not pointing to Cloudflare
			"pending":      // the setup was not completed
			ppfmt.Infof(pp.EmojiUserWarning,
				"DNS zone %s is %q in the Cloudflare account; your records may not be served yet",
				name.Describe(), z.Status)
			matched = append(matched, newZone(z))
		case "deleted": // archived, pending/moved for too long
			ppfmt.Infof(pp.EmojiUserWarning,
				"DNS zone %s is %q in the Cloudflare account and thus skipped", name.Describe(), z.Status)
		default:
			ppfmt.Noticef(pp.EmojiImpossible,
				"DNS zone %s is in an undocumented status %q in the Cloudflare account",
				name.Describe(), z.Status)
			matched = append(matched, newZone(z))
		}
	}

	switch len(matched) {
	case 0:
		return Zone{}, false, nil
	case 1:
		h.cache.zones.DeleteExpired()
		h.cache.zones.Set(name, matched[0], ttlcache.DefaultTTL)
		return matched[0], true, nil
	default:
		return Zone{}, false, providerError("find zone", ErrAmbiguousZoneName)
	}
}

// CreateZone creates a zone. Cloudflare manages SOA fields itself, so
// the requested TTL and email cannot be applied; this is reported
// instead of silently dropped. The description has no Cloudflare
// counterpart either.
func (h CloudflareHandle) CreateZone(ctx context.Context, ppfmt pp.PP,
	name domain.FQDN, ttl int, email string, _description string,
) (Zone, error) {
	res, err := h.cf.CreateZone(ctx, name.DNSNameASCII(), false,
		cloudflare.Account{ID: h.accountID}, "full")
	if err != nil {
		hintTokenPermission(ppfmt, err)
		return Zone{}, providerError("create zone", err)
	}

	ppfmt.Infof(pp.EmojiUserWarning,
		"Cloudflare manages the SOA of %s itself; the TTL (%d) and email (%s) from the source zone are not applied",
		name.Describe(), ttl, email)

	zone := newZone(res)
	h.cache.zones.DeleteExpired()
	h.cache.zones.Set(name, zone, ttlcache.DefaultTTL)
	return zone, nil
}
