package reconciler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/favonia/cloudflare-zonesync/internal/api"
	"github.com/favonia/cloudflare-zonesync/internal/reconciler"
)

func TestDecide(t *testing.T) {
	t.Parallel()

	sourceNS := []string{"ns1.src.example.", "ns2.src.example."}
	targetNS := []string{"lola.ns.cloudflare.com.", "peter.ns.cloudflare.com."}

	wwwA := api.RecordSet{ //nolint:exhaustruct
		Name: "www.test.org.", Type: "A", TTL: 300,
		Values: []string{"192.0.2.1"},
	}
	wwwAOld := api.RecordSet{ //nolint:exhaustruct
		Name: "www.test.org.", Type: "A", TTL: 600,
		Values: []string{"192.0.2.250"},
		IDs:    []string{"id1"},
	}

	for name, tc := range map[string]struct {
		rs         api.RecordSet
		targetSets []api.RecordSet
		outcome    reconciler.Outcome
		match      api.RecordSet
		err        error
	}{
		"apex-ns": {
			api.RecordSet{Name: "test.org.", Type: "NS", TTL: 86400, Values: sourceNS}, //nolint:exhaustruct
			nil,
			reconciler.OutcomeSkip, api.RecordSet{}, nil, //nolint:exhaustruct
		},
		"delegation-to-target": {
			api.RecordSet{Name: "sub.test.org.", Type: "NS", TTL: 3600, Values: targetNS}, //nolint:exhaustruct
			nil,
			reconciler.OutcomeSkip, api.RecordSet{}, nil, //nolint:exhaustruct
		},
		"delegation-to-third-party": {
			api.RecordSet{ //nolint:exhaustruct
				Name: "sub.test.org.", Type: "NS", TTL: 3600,
				Values: []string{"ns1.elsewhere.net."},
			},
			nil,
			reconciler.OutcomeCreate, api.RecordSet{}, nil, //nolint:exhaustruct
		},
		"soa": {
			api.RecordSet{ //nolint:exhaustruct
				Name: "test.org.", Type: "SOA", TTL: 3600,
				Values: []string{"ns1.src.example. hostmaster.test.org. 1 2 3 4 5"},
			},
			nil,
			reconciler.OutcomeSkip, api.RecordSet{}, nil, //nolint:exhaustruct
		},
		"create":    {wwwA, nil, reconciler.OutcomeCreate, api.RecordSet{}, nil}, //nolint:exhaustruct
		"no-change": {wwwA, []api.RecordSet{wwwA}, reconciler.OutcomeNoChange, wwwA, nil},
		"update":    {wwwA, []api.RecordSet{wwwAOld}, reconciler.OutcomeUpdate, wwwAOld, nil},
		"duplicate": {
			wwwA, []api.RecordSet{wwwAOld, wwwA},
			reconciler.OutcomeSkip, api.RecordSet{}, api.ErrDuplicateRecordSet, //nolint:exhaustruct
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			outcome, match, err := reconciler.Decide(tc.rs, sourceNS, targetNS, tc.targetSets)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.outcome, outcome)
			require.Equal(t, tc.match, match)
		})
	}
}
