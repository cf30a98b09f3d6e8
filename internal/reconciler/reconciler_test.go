package reconciler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/favonia/cloudflare-zonesync/internal/api"
	"github.com/favonia/cloudflare-zonesync/internal/domain"
	"github.com/favonia/cloudflare-zonesync/internal/mocks"
	"github.com/favonia/cloudflare-zonesync/internal/pp"
	"github.com/favonia/cloudflare-zonesync/internal/reconciler"
)

var (
	sourceNS = []string{"ns1.src.example.", "ns2.src.example."} //nolint:gochecknoglobals
	targetNS = []string{                                        //nolint:gochecknoglobals
		"lola.ns.cloudflare.com.", "peter.ns.cloudflare.com.",
	}
)

func targetZone() api.Zone {
	return api.Zone{
		ID:          "zone-id",
		Name:        "test.org.",
		Status:      "active",
		NameServers: targetNS,
	}
}

func sourceSOA() api.RecordSet {
	return api.RecordSet{ //nolint:exhaustruct
		Name: "test.org.", Type: "SOA", TTL: 3600,
		Values: []string{"ns1.src.example. hostmaster.test.org. 2024010101 7200 900 1209600 300"},
	}
}

func TestEnsureZone(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		soa          api.RecordSet
		mailOverride string
		ok           bool
		expected     reconciler.Stats
		prepareMocks func(p *mocks.MockPP, h *mocks.MockHandle)
	}{
		"exists": {
			sourceSOA(), "", true,
			reconciler.Stats{}, //nolint:exhaustruct
			func(_ *mocks.MockPP, h *mocks.MockHandle) {
				h.EXPECT().FindZone(gomock.Any(), gomock.Any(), domain.FQDN("test.org.")).
					Return(targetZone(), true, nil)
			},
		},
		"lookup-fails": {
			sourceSOA(), "", false,
			reconciler.Stats{Errors: 1}, //nolint:exhaustruct
			func(p *mocks.MockPP, h *mocks.MockHandle) {
				h.EXPECT().FindZone(gomock.Any(), gomock.Any(), domain.FQDN("test.org.")).
					Return(api.Zone{}, false, api.ProviderError{Op: "find zone", Err: context.DeadlineExceeded}) //nolint:exhaustruct,lll
				p.EXPECT().Noticef(pp.EmojiError,
					"Failed to look up zone %s in the target cloud: %v", "test.org.", gomock.Any())
			},
		},
		"create": {
			sourceSOA(), "", true,
			reconciler.Stats{ZonesCreated: 1}, //nolint:exhaustruct
			func(p *mocks.MockPP, h *mocks.MockHandle) {
				gomock.InOrder(
					h.EXPECT().FindZone(gomock.Any(), gomock.Any(), domain.FQDN("test.org.")).
						Return(api.Zone{}, false, nil), //nolint:exhaustruct
					h.EXPECT().CreateZone(gomock.Any(), gomock.Any(),
						domain.FQDN("test.org."), 3600, "hostmaster@test.org", "mirrored").
						Return(targetZone(), nil),
					p.EXPECT().Noticef(pp.EmojiCreateZone,
						"Created zone %s in the target cloud", "test.org."),
				)
			},
		},
		"create-with-mail-override": {
			sourceSOA(), "ops@example.com", true,
			reconciler.Stats{ZonesCreated: 1}, //nolint:exhaustruct
			func(p *mocks.MockPP, h *mocks.MockHandle) {
				gomock.InOrder(
					h.EXPECT().FindZone(gomock.Any(), gomock.Any(), domain.FQDN("test.org.")).
						Return(api.Zone{}, false, nil), //nolint:exhaustruct
					h.EXPECT().CreateZone(gomock.Any(), gomock.Any(),
						domain.FQDN("test.org."), 3600, "ops@example.com", "mirrored").
						Return(targetZone(), nil),
					p.EXPECT().Noticef(pp.EmojiCreateZone,
						"Created zone %s in the target cloud", "test.org."),
				)
			},
		},
		"malformed-soa": {
			api.RecordSet{Name: "test.org.", Type: "SOA", TTL: 3600, Values: []string{"not an SOA"}}, //nolint:exhaustruct
			"", false,
			reconciler.Stats{Errors: 1}, //nolint:exhaustruct
			func(p *mocks.MockPP, h *mocks.MockHandle) {
				h.EXPECT().FindZone(gomock.Any(), gomock.Any(), domain.FQDN("test.org.")).
					Return(api.Zone{}, false, nil) //nolint:exhaustruct
				p.EXPECT().Noticef(pp.EmojiError,
					"The source zone %s has a malformed SOA record: %v", "test.org.", gomock.Any())
			},
		},
		"creation-fails": {
			sourceSOA(), "", false,
			reconciler.Stats{Errors: 1}, //nolint:exhaustruct
			func(p *mocks.MockPP, h *mocks.MockHandle) {
				gomock.InOrder(
					h.EXPECT().FindZone(gomock.Any(), gomock.Any(), domain.FQDN("test.org.")).
						Return(api.Zone{}, false, nil), //nolint:exhaustruct
					h.EXPECT().CreateZone(gomock.Any(), gomock.Any(),
						domain.FQDN("test.org."), 3600, "hostmaster@test.org", "mirrored").
						Return(api.Zone{}, api.ProviderError{Op: "create zone", Err: context.DeadlineExceeded}), //nolint:exhaustruct,lll
					p.EXPECT().Noticef(pp.EmojiError,
						"Failed to create zone %s in the target cloud: %v", "test.org.", gomock.Any()),
				)
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			mockHandle := mocks.NewMockHandle(mockCtrl)
			tc.prepareMocks(mockPP, mockHandle)

			r := reconciler.New(mockHandle)
			zone, ok, stats := r.EnsureZone(context.Background(), mockPP,
				"test.org.", tc.soa, "mirrored", tc.mailOverride)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.expected, stats)
			if tc.ok {
				require.Equal(t, targetZone(), zone)
			}
		})
	}
}

func TestReconcileZone(t *testing.T) {
	t.Parallel()

	apexNSSource := api.RecordSet{ //nolint:exhaustruct
		Name: "test.org.", Type: "NS", TTL: 86400, Values: sourceNS,
	}
	wwwA := api.RecordSet{ //nolint:exhaustruct
		Name: "www.test.org.", Type: "A", TTL: 300, Values: []string{"192.0.2.1"},
	}
	wwwAOld := api.RecordSet{ //nolint:exhaustruct
		Name: "www.test.org.", Type: "A", TTL: 600, Values: []string{"192.0.2.250"},
		IDs: []string{"id-www"},
	}
	mailMX := api.RecordSet{ //nolint:exhaustruct
		Name: "test.org.", Type: "MX", TTL: 300, Values: []string{"10 mail.test.org."},
	}
	extraA := api.RecordSet{ //nolint:exhaustruct
		Name: "old.test.org.", Type: "A", TTL: 300, Values: []string{"192.0.2.99"},
		IDs: []string{"id-old"},
	}
	delegationToTarget := api.RecordSet{ //nolint:exhaustruct
		Name: "sub.test.org.", Type: "NS", TTL: 3600, Values: targetNS,
		IDs: []string{"id-sub-1", "id-sub-2"},
	}
	targetSOA := api.RecordSet{ //nolint:exhaustruct
		Name: "test.org.", Type: "SOA", TTL: 3600,
		Values: []string{"lola.ns.cloudflare.com. dns.cloudflare.com. 1 2 3 4 5"},
	}

	for name, tc := range map[string]struct {
		sourceSets   []api.RecordSet
		targetSets   []api.RecordSet
		removeExtras bool
		expected     reconciler.Stats
		prepareMocks func(p *mocks.MockPP, h *mocks.MockHandle)
	}{
		"in-sync": {
			[]api.RecordSet{apexNSSource, sourceSOA(), wwwA},
			[]api.RecordSet{wwwA},
			false,
			reconciler.Stats{RecordsSkipped: 2, RecordsUnchanged: 1}, //nolint:exhaustruct
			func(p *mocks.MockPP, _ *mocks.MockHandle) {
				p.EXPECT().Infof(pp.EmojiSkipRecord, "Skipped the %s", "NS record set of test.org.")
				p.EXPECT().Infof(pp.EmojiSkipRecord, "Skipped the %s", "SOA record set of test.org.")
				p.EXPECT().Infof(pp.EmojiAlreadyDone,
					"The %s is already up to date", "A record set of www.test.org.")
			},
		},
		"create-and-update": {
			[]api.RecordSet{wwwA, mailMX},
			[]api.RecordSet{wwwAOld},
			false,
			reconciler.Stats{RecordsCreated: 1, RecordsUpdated: 1}, //nolint:exhaustruct
			func(p *mocks.MockPP, h *mocks.MockHandle) {
				h.EXPECT().UpdateRecordSet(gomock.Any(), gomock.Any(), targetZone(),
					wwwAOld, 300, []string{"192.0.2.1"}, "").Return(nil)
				p.EXPECT().Infof(pp.EmojiUpdateRecord, "Updated the %s", "A record set of www.test.org.")
				h.EXPECT().CreateRecordSet(gomock.Any(), gomock.Any(), targetZone(), mailMX).Return(nil)
				p.EXPECT().Infof(pp.EmojiAddRecord, "Created the %s", "MX record set of test.org.")
			},
		},
		"failure-does-not-stop-the-pass": {
			[]api.RecordSet{wwwA, mailMX},
			nil,
			false,
			reconciler.Stats{RecordsCreated: 1, Errors: 1}, //nolint:exhaustruct
			func(p *mocks.MockPP, h *mocks.MockHandle) {
				h.EXPECT().CreateRecordSet(gomock.Any(), gomock.Any(), targetZone(), wwwA).
					Return(api.ProviderError{Op: "create record set", Err: context.DeadlineExceeded})
				p.EXPECT().Noticef(pp.EmojiError,
					"Failed to create the %s: %v", "A record set of www.test.org.", gomock.Any())
				h.EXPECT().CreateRecordSet(gomock.Any(), gomock.Any(), targetZone(), mailMX).Return(nil)
				p.EXPECT().Infof(pp.EmojiAddRecord, "Created the %s", "MX record set of test.org.")
			},
		},
		"remove-extras": {
			[]api.RecordSet{wwwA},
			[]api.RecordSet{wwwA, extraA, delegationToTarget, targetSOA},
			true,
			reconciler.Stats{RecordsUnchanged: 1, RecordsDeleted: 1, RecordsSkipped: 1}, //nolint:exhaustruct
			func(p *mocks.MockPP, h *mocks.MockHandle) {
				p.EXPECT().Infof(pp.EmojiAlreadyDone,
					"The %s is already up to date", "A record set of www.test.org.")
				h.EXPECT().DeleteRecordSet(gomock.Any(), gomock.Any(), targetZone(), extraA).Return(nil)
				p.EXPECT().Infof(pp.EmojiDelRecord, "Deleted the %s", "A record set of old.test.org.")
				p.EXPECT().Infof(pp.EmojiSkipRecord, "Skipped the %s", "NS record set of sub.test.org.")
			},
		},
		"keep-extras-by-default": {
			[]api.RecordSet{wwwA},
			[]api.RecordSet{wwwA, extraA},
			false,
			reconciler.Stats{RecordsUnchanged: 1}, //nolint:exhaustruct
			func(p *mocks.MockPP, _ *mocks.MockHandle) {
				p.EXPECT().Infof(pp.EmojiAlreadyDone,
					"The %s is already up to date", "A record set of www.test.org.")
			},
		},
		"duplicate-aborts-the-zone": {
			[]api.RecordSet{wwwA, mailMX},
			[]api.RecordSet{wwwAOld, wwwA},
			false,
			reconciler.Stats{Errors: 1}, //nolint:exhaustruct
			func(p *mocks.MockPP, _ *mocks.MockHandle) {
				p.EXPECT().Noticef(pp.EmojiImpossible,
					"The target zone %s is inconsistent; giving up on this zone: %v",
					"test.org.", gomock.Any())
			},
		},
		"deletion-failure-is-counted": {
			[]api.RecordSet{wwwA},
			[]api.RecordSet{wwwA, extraA},
			true,
			reconciler.Stats{RecordsUnchanged: 1, Errors: 1}, //nolint:exhaustruct
			func(p *mocks.MockPP, h *mocks.MockHandle) {
				p.EXPECT().Infof(pp.EmojiAlreadyDone,
					"The %s is already up to date", "A record set of www.test.org.")
				h.EXPECT().DeleteRecordSet(gomock.Any(), gomock.Any(), targetZone(), extraA).
					Return(api.ProviderError{Op: "delete record set", Err: context.DeadlineExceeded})
				p.EXPECT().Noticef(pp.EmojiError,
					"Failed to delete the %s: %v", "A record set of old.test.org.", gomock.Any())
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			mockHandle := mocks.NewMockHandle(mockCtrl)
			tc.prepareMocks(mockPP, mockHandle)

			r := reconciler.New(mockHandle)
			stats := r.ReconcileZone(context.Background(), mockPP, reconciler.ZoneInput{
				Zone:       targetZone(),
				SourceSets: tc.sourceSets,
				TargetSets: tc.targetSets,
				SourceNS:   sourceNS,
				TargetNS:   targetNS,
			}, tc.removeExtras)
			require.Equal(t, tc.expected, stats)
		})
	}
}

func TestReconcileZoneCanceled(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockHandle := mocks.NewMockHandle(mockCtrl)

	ctx, cancel := context.WithCancel(context.Background())

	wwwA := api.RecordSet{ //nolint:exhaustruct
		Name: "www.test.org.", Type: "A", TTL: 300, Values: []string{"192.0.2.1"},
	}
	mailMX := api.RecordSet{ //nolint:exhaustruct
		Name: "test.org.", Type: "MX", TTL: 300, Values: []string{"10 mail.test.org."},
	}

	mockHandle.EXPECT().CreateRecordSet(gomock.Any(), gomock.Any(), targetZone(), wwwA).
		DoAndReturn(func(context.Context, pp.PP, api.Zone, api.RecordSet) error {
			cancel()
			return nil
		})
	mockPP.EXPECT().Infof(pp.EmojiAddRecord, "Created the %s", "A record set of www.test.org.")
	mockPP.EXPECT().Infof(pp.EmojiSignal, "Zone pass aborted (%v)", gomock.Any())

	r := reconciler.New(mockHandle)
	stats := r.ReconcileZone(ctx, mockPP, reconciler.ZoneInput{
		Zone:       targetZone(),
		SourceSets: []api.RecordSet{wwwA, mailMX},
		TargetSets: nil,
		SourceNS:   sourceNS,
		TargetNS:   targetNS,
	}, false)
	require.Equal(t, reconciler.Stats{RecordsCreated: 1}, stats) //nolint:exhaustruct
}
