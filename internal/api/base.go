// Package api implements the record-set model and the DNS provider clients.
package api

import (
	"context"
	"time"

	"github.com/favonia/cloudflare-zonesync/internal/domain"
	"github.com/favonia/cloudflare-zonesync/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_api.go -package=mocks . Handle

// A Zone is a DNS zone as known to a provider.
type Zone struct {
	// ID is the provider-side identifier of the zone.
	ID string

	// Name is the fully qualified zone name.
	Name domain.FQDN

	// Status is the provider-side status of the zone.
	Status string

	// NameServers are the fully qualified names of the nameservers
	// serving the zone. Providers always report them.
	NameServers []string
}

// A Handle represents a preauthorized connection to a DNS provider.
//
// Failures of individual calls are reported as [ProviderError] values;
// the methods never print the errors themselves (but may print hints).
type Handle interface {
	// ZoneNames lists the names of all zones visible to the connection.
	ZoneNames(ctx context.Context, ppfmt pp.PP) ([]string, error)

	// FindZone looks up a zone by its name.
	// The second result reports whether the zone exists.
	FindZone(ctx context.Context, ppfmt pp.PP, name domain.FQDN) (Zone, bool, error)

	// CreateZone creates a zone, seeded with zone-wide defaults taken
	// from the source zone's SOA record. Providers that manage these
	// fields themselves may ignore them.
	CreateZone(ctx context.Context, ppfmt pp.PP,
		name domain.FQDN, ttl int, email string, description string) (Zone, error)

	// ListRecordSets returns all record sets of a zone, including the
	// apex NS record set. Providers that do not expose the apex SOA as
	// a regular record only serve it through ListRecordSetsOf.
	ListRecordSets(ctx context.Context, ppfmt pp.PP, zone Zone) ([]RecordSet, error)

	// ListRecordSetsOf returns the record sets matching a name and a type.
	ListRecordSetsOf(ctx context.Context, ppfmt pp.PP,
		zone Zone, name domain.FQDN, typ string) ([]RecordSet, error)

	// CreateRecordSet creates a record set in a zone.
	CreateRecordSet(ctx context.Context, ppfmt pp.PP, zone Zone, rs RecordSet) error

	// UpdateRecordSet rewrites an existing record set in place.
	UpdateRecordSet(ctx context.Context, ppfmt pp.PP, zone Zone,
		existing RecordSet, ttl int, values []string, description string) error

	// DeleteRecordSet removes an existing record set.
	DeleteRecordSet(ctx context.Context, ppfmt pp.PP, zone Zone, existing RecordSet) error

	// FlushCache flushes the cached provider responses.
	FlushCache()
}

// An Auth contains authentication information to a DNS provider.
type Auth interface {
	// New creates a [Handle] from the authentication information.
	New(ppfmt pp.PP, cacheExpiration time.Duration) (Handle, bool)
}
