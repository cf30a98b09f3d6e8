package api_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/favonia/cloudflare-zonesync/internal/api"
)

func TestParseSOA(t *testing.T) {
	t.Parallel()

	rs := api.RecordSet{ //nolint:exhaustruct
		Name:   "example.org.",
		Type:   "SOA",
		TTL:    3600,
		Values: []string{"ns1.example.org. hostmaster.example.org. 2024010101 7200 900 1209600 300"},
	}

	soa, err := api.ParseSOA(rs)
	require.NoError(t, err)
	require.Equal(t, "ns1.example.org.", soa.Ns)
	require.Equal(t, "hostmaster.example.org.", soa.Mbox)
	require.Equal(t, uint32(2024010101), soa.Serial)
	require.Equal(t, uint32(7200), soa.Refresh)
	require.Equal(t, uint32(900), soa.Retry)
	require.Equal(t, uint32(1209600), soa.Expire)
	require.Equal(t, uint32(300), soa.Minttl)
	require.Equal(t, uint32(3600), soa.Hdr.Ttl)
}

func TestParseSOAMalformed(t *testing.T) {
	t.Parallel()

	for name, rs := range map[string]api.RecordSet{
		"wrong-type": { //nolint:exhaustruct
			Name: "example.org.", Type: "A", TTL: 300,
			Values: []string{"192.0.2.1"},
		},
		"no-values": { //nolint:exhaustruct
			Name: "example.org.", Type: "SOA", TTL: 300,
		},
		"two-values": { //nolint:exhaustruct
			Name: "example.org.", Type: "SOA", TTL: 300,
			Values: []string{
				"ns1.example.org. hostmaster.example.org. 1 2 3 4 5",
				"ns2.example.org. hostmaster.example.org. 1 2 3 4 5",
			},
		},
		"garbage": { //nolint:exhaustruct
			Name: "example.org.", Type: "SOA", TTL: 300,
			Values: []string{"not an SOA"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			soa, err := api.ParseSOA(rs)
			require.ErrorIs(t, err, api.ErrNotSOA)
			require.Nil(t, soa)
		})
	}
}

func TestSOAEmail(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		mbox     string
		expected string
	}{
		"simple":      {"hostmaster.example.org.", "hostmaster@example.org"},
		"no-dot":      {"hostmaster.", "hostmaster"},
		"escaped-dot": {`admin\.dns.example.org.`, "admin.dns@example.org"},
		"empty":       {"", ""},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, api.SOAEmail(tc.mbox))
		})
	}
}
