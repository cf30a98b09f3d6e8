package reconciler

import "github.com/favonia/cloudflare-zonesync/internal/pp"

// Stats are the run-wide counters. Per-zone passes return local
// increments; the orchestrator folds them in.
type Stats struct {
	ZonesProcessed   int
	ZonesCreated     int
	RecordsCreated   int
	RecordsUpdated   int
	RecordsUnchanged int
	RecordsSkipped   int
	RecordsDeleted   int
	Errors           int
}

// Add folds another set of counters into s.
func (s *Stats) Add(other Stats) {
	s.ZonesProcessed += other.ZonesProcessed
	s.ZonesCreated += other.ZonesCreated
	s.RecordsCreated += other.RecordsCreated
	s.RecordsUpdated += other.RecordsUpdated
	s.RecordsUnchanged += other.RecordsUnchanged
	s.RecordsSkipped += other.RecordsSkipped
	s.RecordsDeleted += other.RecordsDeleted
	s.Errors += other.Errors
}

// Print shows the summary of a run.
func (s Stats) Print(ppfmt pp.PP) {
	ppfmt.Infof(pp.EmojiSummary, "Zones processed:   %d", s.ZonesProcessed)
	ppfmt.Infof(pp.EmojiSummary, "Zones created:     %d", s.ZonesCreated)
	ppfmt.Infof(pp.EmojiSummary, "Records created:   %d", s.RecordsCreated)
	ppfmt.Infof(pp.EmojiSummary, "Records deleted:   %d", s.RecordsDeleted)
	ppfmt.Infof(pp.EmojiSummary, "Records changed:   %d", s.RecordsUpdated)
	ppfmt.Infof(pp.EmojiSummary, "Records unchanged: %d", s.RecordsUnchanged)
	ppfmt.Infof(pp.EmojiSummary, "Records skipped:   %d", s.RecordsSkipped)
	if s.Errors > 0 {
		ppfmt.Noticef(pp.EmojiError, "Total errors:      %d", s.Errors)
	} else {
		ppfmt.Infof(pp.EmojiGood, "Total errors:      0")
	}
}
