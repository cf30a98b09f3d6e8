// Package reconciler decides, for every record set of a zone pair,
// whether to create, update, skip, or delete the record set on the
// target, and applies the decisions through [api.Handle].
//
// Apex NS and SOA record sets are special: they are created by the
// provider together with the zone and are never copied. NS record sets
// of delegated sub-zones are copied only when they point at a third
// party rather than at either cloud's own nameservers.
package reconciler

import (
	"context"

	"github.com/favonia/cloudflare-zonesync/internal/api"
	"github.com/favonia/cloudflare-zonesync/internal/domain"
	"github.com/favonia/cloudflare-zonesync/internal/pp"
)

// ZoneInput is everything one zone pass needs, fetched up front.
type ZoneInput struct {
	// Zone is the target zone being written to.
	Zone api.Zone

	// SourceSets and TargetSets are the full record-set snapshots.
	SourceSets []api.RecordSet
	TargetSets []api.RecordSet

	// SourceNS and TargetNS are the apex NS values of the two zones.
	SourceNS []string
	TargetNS []string
}

// Reconciler makes the record sets of a target zone match a source zone.
type Reconciler interface {
	// EnsureZone finds the target zone, creating it from the source
	// zone's SOA record set if it does not exist. The second result
	// reports whether the zone is usable; when it is false, the
	// returned statistics already count the failure.
	EnsureZone(ctx context.Context, ppfmt pp.PP,
		name domain.FQDN, sourceSOA api.RecordSet, description string, mailOverride string,
	) (api.Zone, bool, Stats)

	// ReconcileZone applies the full set of per-record-set decisions
	// for one zone pair. Individual provider failures are counted and
	// do not stop the pass.
	ReconcileZone(ctx context.Context, ppfmt pp.PP, in ZoneInput, removeExtras bool) Stats
}

type reconciler struct {
	target api.Handle
}

// New creates a new [Reconciler] writing to the given target provider.
func New(target api.Handle) Reconciler {
	return reconciler{target: target}
}
