package reconciler

import "github.com/favonia/cloudflare-zonesync/internal/api"

// Decide computes the outcome for one source record set against the
// target zone's snapshot. For [OutcomeUpdate] and [OutcomeNoChange]
// the matching target record set is returned as well.
//
// The rules, in order:
//
//  1. An NS record set whose value set equals either cloud's own apex
//     nameservers is skipped. Copying it would be meaningless: for the
//     apex the provider created it with the zone, and for a sub-zone
//     delegated back to one of the two clouds the authoritative NS is
//     implicit. NS record sets pointing at third-party nameservers
//     fall through to the generic rules.
//  2. An SOA record set is always skipped. It is consumed only at
//     zone-creation time and never overwritten afterwards.
//  3. Otherwise the target is searched by (name, type): no match means
//     create, a differing match means update, an identical match means
//     no change.
//
// A duplicate (name, type) match in the target snapshot is a provider
// inconsistency and is returned as an error wrapping
// [api.ErrDuplicateRecordSet].
func Decide(rs api.RecordSet, sourceNS, targetNS []string,
	targetSets []api.RecordSet,
) (Outcome, api.RecordSet, error) {
	switch rs.Type {
	case "NS":
		if api.ValueSetEquals(rs.Values, sourceNS) || api.ValueSetEquals(rs.Values, targetNS) {
			return OutcomeSkip, api.RecordSet{}, nil
		}
	case "SOA":
		return OutcomeSkip, api.RecordSet{}, nil
	}

	match, found, err := api.FindMatching(targetSets, rs.Name, rs.Type)
	switch {
	case err != nil:
		return OutcomeSkip, api.RecordSet{}, err
	case !found:
		return OutcomeCreate, api.RecordSet{}, nil
	case match.Equal(rs):
		return OutcomeNoChange, match, nil
	default:
		return OutcomeUpdate, match, nil
	}
}
