// Package syncer drives zone reconciliation across a list of zones,
// or across every zone visible in the source cloud.
package syncer

import (
	"cmp"
	"context"
	"slices"

	"github.com/favonia/cloudflare-zonesync/internal/api"
	"github.com/favonia/cloudflare-zonesync/internal/domain"
	"github.com/favonia/cloudflare-zonesync/internal/pp"
	"github.com/favonia/cloudflare-zonesync/internal/reconciler"
)

// Options are the per-run knobs.
type Options struct {
	// RemoveExtras deletes target record sets without a source counterpart.
	RemoveExtras bool

	// MailOverride replaces the SOA email when creating target zones.
	MailOverride string

	// ZoneDescription is attached to target zones created by this run.
	ZoneDescription string
}

// A Syncer reconciles zones between two provider connections.
type Syncer struct {
	source api.Handle
	target api.Handle
	rec    reconciler.Reconciler
}

// New creates a [Syncer] copying from source to target.
func New(source, target api.Handle) Syncer {
	return Syncer{
		source: source,
		target: target,
		rec:    reconciler.New(target),
	}
}

// Run reconciles the requested zones (or, when all is set, every zone
// in the source cloud) one at a time and returns the folded
// statistics. The error counter in the result is the process-level
// verdict of the run.
func (s Syncer) Run(ctx context.Context, ppfmt pp.PP, zoneNames []string, all bool, opts Options) reconciler.Stats {
	var stats reconciler.Stats

	if all {
		names, err := s.source.ZoneNames(ctx, ppfmt)
		if err != nil {
			ppfmt.Noticef(pp.EmojiError, "Failed to list the zones of the source cloud: %v", err)
			stats.Errors++
			return stats
		}
		zoneNames = names
	}

	zones := make([]domain.FQDN, 0, len(zoneNames))
	for _, name := range zoneNames {
		zone, err := domain.New(name)
		if err != nil {
			ppfmt.Noticef(pp.EmojiUserError, "%q is not a valid zone name: %v", name, err)
			stats.Errors++
			continue
		}
		zones = append(zones, zone)
	}
	slices.SortFunc(zones, func(a, b domain.FQDN) int { return cmp.Compare(a, b) })
	zones = slices.Compact(zones)

	for _, zone := range zones {
		stats.Add(s.syncZone(ctx, ppfmt, zone, opts))
		if ctx.Err() != nil {
			ppfmt.Infof(pp.EmojiSignal, "Run aborted (%v)", ctx.Err())
			break
		}
	}

	return stats
}

// syncZone reconciles a single zone. Any fatal condition (missing
// source zone, missing apex record sets, failed zone creation) aborts
// just this zone with one counted error.
func (s Syncer) syncZone(ctx context.Context, ppfmt pp.PP, name domain.FQDN, opts Options) reconciler.Stats {
	var stats reconciler.Stats
	stats.ZonesProcessed++

	ppfmt.Infof(pp.EmojiZone, "Syncing zone %s", name.Describe())
	ppfmt = ppfmt.Indent()

	src, found, err := s.source.FindZone(ctx, ppfmt, name)
	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiError, "Failed to look up zone %s in the source cloud: %v", name.Describe(), err)
		stats.Errors++
		return stats
	case !found:
		ppfmt.Noticef(pp.EmojiUserError, "Zone %s does not exist in the source cloud", name.Describe())
		stats.Errors++
		return stats
	}

	sourceSets, err := s.source.ListRecordSets(ctx, ppfmt, src)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to list the record sets of %s in the source cloud: %v",
			name.Describe(), err)
		stats.Errors++
		return stats
	}

	sourceNS, found, err := api.FindMatching(sourceSets, name, "NS")
	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiImpossible, "The source zone %s is inconsistent: %v", name.Describe(), err)
		stats.Errors++
		return stats
	case !found:
		ppfmt.Noticef(pp.EmojiError, "The source zone %s has no apex NS record set", name.Describe())
		stats.Errors++
		return stats
	}

	sourceSOA, err := s.soaOf(ctx, ppfmt, src, sourceSets)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "The source zone %s has no usable apex SOA record set: %v",
			name.Describe(), err)
		stats.Errors++
		return stats
	}

	dst, ok, st := s.rec.EnsureZone(ctx, ppfmt, name, sourceSOA, opts.ZoneDescription, opts.MailOverride)
	stats.Add(st)
	if !ok {
		return stats
	}

	targetSets, err := s.target.ListRecordSets(ctx, ppfmt, dst)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to list the record sets of %s in the target cloud: %v",
			name.Describe(), err)
		stats.Errors++
		return stats
	}

	stats.Add(s.rec.ReconcileZone(ctx, ppfmt, reconciler.ZoneInput{
		Zone:       dst,
		SourceSets: sourceSets,
		TargetSets: targetSets,
		SourceNS:   sourceNS.Values,
		TargetNS:   dst.NameServers,
	}, opts.RemoveExtras))

	return stats
}

// soaOf finds the apex SOA of a zone, preferring the full snapshot and
// falling back to a filtered lookup for providers that do not list the
// SOA as a regular record.
func (s Syncer) soaOf(ctx context.Context, ppfmt pp.PP,
	zone api.Zone, sets []api.RecordSet,
) (api.RecordSet, error) {
	soa, found, err := api.FindMatching(sets, zone.Name, "SOA")
	if err != nil {
		return api.RecordSet{}, err
	}
	if found {
		return soa, nil
	}

	fetched, err := s.source.ListRecordSetsOf(ctx, ppfmt, zone, zone.Name, "SOA")
	if err != nil {
		return api.RecordSet{}, err
	}
	if len(fetched) == 0 {
		return api.RecordSet{}, api.ErrNoSOA
	}
	return fetched[0], nil
}
