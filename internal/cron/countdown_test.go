package cron_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/favonia/cloudflare-zonesync/internal/cron"
	"github.com/favonia/cloudflare-zonesync/internal/mocks"
	"github.com/favonia/cloudflare-zonesync/internal/pp"
)

func TestDescribeIntuitively(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)

	for name, tc := range map[string]struct {
		target   time.Time
		expected string
	}{
		"same-day":  {time.Date(2024, time.March, 15, 12, 30, 0, 0, time.Local), "12:30"},
		"next-day":  {time.Date(2024, time.March, 16, 1, 0, 0, 0, time.Local), "16 Mar 01:00"},
		"next-year": {time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), "01 Jan 00:00 2025"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, cron.DescribeIntuitively(now, tc.target))
		})
	}
}

func TestPrintCountdown(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)

	for name, tc := range map[string]struct {
		target        time.Time
		prepareMockPP func(*mocks.MockPP)
	}{
		"behind": {
			now.Add(-time.Minute),
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiNow, "%s now (running behind by %v) . . .", "Syncing", time.Minute)
			},
		},
		"now": {
			now,
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiNow, "%s now . . .", "Syncing")
			},
		},
		"soon": {
			now.Add(2 * time.Second),
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiAlarm, "%s in less than %v . . .", "Syncing", 5*time.Second)
			},
		},
		"minutes": {
			now.Add(5 * time.Minute),
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiAlarm, "%s in about %v . . .", "Syncing", 5*time.Minute)
			},
		},
		"hours": {
			now.Add(2 * time.Hour),
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiAlarm, "%s in about %v (%v) . . .",
					"Syncing", 2*time.Hour, "12:00")
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			tc.prepareMockPP(mockPP)

			cron.PrintCountdown(mockPP, "Syncing", now, tc.target)
		})
	}
}
