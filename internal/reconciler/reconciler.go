package reconciler

import (
	"context"

	"github.com/favonia/cloudflare-zonesync/internal/api"
	"github.com/favonia/cloudflare-zonesync/internal/domain"
	"github.com/favonia/cloudflare-zonesync/internal/pp"
)

// EnsureZone finds or creates the target zone. A creation failure is
// fatal for the zone: no record sync should be attempted afterwards.
func (r reconciler) EnsureZone(ctx context.Context, ppfmt pp.PP,
	name domain.FQDN, sourceSOA api.RecordSet, description string, mailOverride string,
) (api.Zone, bool, Stats) {
	var stats Stats

	zone, found, err := r.target.FindZone(ctx, ppfmt, name)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to look up zone %s in the target cloud: %v", name.Describe(), err)
		stats.Errors++
		return api.Zone{}, false, stats
	}
	if found {
		return zone, true, stats
	}

	soa, err := api.ParseSOA(sourceSOA)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "The source zone %s has a malformed SOA record: %v", name.Describe(), err)
		stats.Errors++
		return api.Zone{}, false, stats
	}

	email := mailOverride
	if email == "" {
		email = api.SOAEmail(soa.Mbox)
	}

	zone, err = r.target.CreateZone(ctx, ppfmt, name, sourceSOA.TTL, email, description)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to create zone %s in the target cloud: %v", name.Describe(), err)
		stats.Errors++
		return api.Zone{}, false, stats
	}

	ppfmt.Noticef(pp.EmojiCreateZone, "Created zone %s in the target cloud", name.Describe())
	stats.ZonesCreated++
	return zone, true, stats
}

// ReconcileZone runs the forward pass over all source record sets and,
// when removeExtras is set, the backward pass over all target record
// sets. A failed provider call is reported and counted but does not
// stop the pass; a duplicate (name, type) match aborts the whole zone
// because the snapshot can no longer be trusted.
func (r reconciler) ReconcileZone(ctx context.Context, ppfmt pp.PP, in ZoneInput, removeExtras bool) Stats {
	var stats Stats

	for _, rs := range in.SourceSets {
		outcome, match, err := Decide(rs, in.SourceNS, in.TargetNS, in.TargetSets)
		if err != nil {
			ppfmt.Noticef(pp.EmojiImpossible,
				"The target zone %s is inconsistent; giving up on this zone: %v",
				in.Zone.Name.Describe(), err)
			stats.Errors++
			return stats
		}

		switch outcome {
		case OutcomeSkip:
			ppfmt.Infof(pp.EmojiSkipRecord, "Skipped the %s", rs.Describe())
			stats.RecordsSkipped++

		case OutcomeNoChange:
			ppfmt.Infof(pp.EmojiAlreadyDone, "The %s is already up to date", rs.Describe())
			stats.RecordsUnchanged++

		case OutcomeCreate:
			if err := r.target.CreateRecordSet(ctx, ppfmt, in.Zone, rs); err != nil {
				ppfmt.Noticef(pp.EmojiError, "Failed to create the %s: %v", rs.Describe(), err)
				stats.Errors++
				break
			}
			ppfmt.Infof(pp.EmojiAddRecord, "Created the %s", rs.Describe())
			stats.RecordsCreated++

		case OutcomeUpdate:
			if err := r.target.UpdateRecordSet(ctx, ppfmt, in.Zone,
				match, rs.TTL, rs.Values, rs.Description); err != nil {
				ppfmt.Noticef(pp.EmojiError, "Failed to update the %s: %v", rs.Describe(), err)
				stats.Errors++
				break
			}
			ppfmt.Infof(pp.EmojiUpdateRecord, "Updated the %s", rs.Describe())
			stats.RecordsUpdated++

		case OutcomeDelete: // unreachable in the forward pass
		}

		if ctx.Err() != nil {
			ppfmt.Infof(pp.EmojiSignal, "Zone pass aborted (%v)", ctx.Err())
			return stats
		}
	}

	if !removeExtras {
		return stats
	}

	// Backward pass. The apex NS of the target normally protects
	// itself: the source always holds its own apex NS, so a matching
	// counterpart exists. SOA is guarded explicitly because not every
	// provider lists it on both sides.
	for _, rs := range in.TargetSets {
		if rs.Type == "SOA" {
			continue
		}

		_, found, err := api.FindMatching(in.SourceSets, rs.Name, rs.Type)
		if err != nil {
			ppfmt.Noticef(pp.EmojiImpossible,
				"The source zone of %s is inconsistent; giving up on this zone: %v",
				in.Zone.Name.Describe(), err)
			stats.Errors++
			return stats
		}
		if found {
			continue
		}

		// A delegation pointing back at either cloud's own nameservers
		// is never deleted, counterpart or not.
		if rs.Type == "NS" &&
			(api.ValueSetEquals(rs.Values, in.SourceNS) || api.ValueSetEquals(rs.Values, in.TargetNS)) {
			ppfmt.Infof(pp.EmojiSkipRecord, "Skipped the %s", rs.Describe())
			stats.RecordsSkipped++
			continue
		}

		if err := r.target.DeleteRecordSet(ctx, ppfmt, in.Zone, rs); err != nil {
			ppfmt.Noticef(pp.EmojiError, "Failed to delete the %s: %v", rs.Describe(), err)
			stats.Errors++
		} else {
			ppfmt.Infof(pp.EmojiDelRecord, "Deleted the %s", rs.Describe())
			stats.RecordsDeleted++
		}

		if ctx.Err() != nil {
			ppfmt.Infof(pp.EmojiSignal, "Zone pass aborted (%v)", ctx.Err())
			return stats
		}
	}

	return stats
}
