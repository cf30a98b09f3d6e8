package reconciler

// Outcome is the decision for a single record set.
type Outcome int

const (
	// OutcomeNoChange means the target already holds an identical record set.
	OutcomeNoChange Outcome = iota

	// OutcomeCreate means the target has no matching record set.
	OutcomeCreate

	// OutcomeUpdate means the matching record set differs in TTL,
	// values, or description.
	OutcomeUpdate

	// OutcomeDelete means the target record set has no source
	// counterpart and extra records are being removed.
	OutcomeDelete

	// OutcomeSkip means the record set is never copied: the apex SOA,
	// or an NS record set pointing back at either cloud's own
	// nameservers.
	OutcomeSkip
)

// String describes the outcome as a verb.
func (o Outcome) String() string {
	switch o {
	case OutcomeNoChange:
		return "no change"
	case OutcomeCreate:
		return "create"
	case OutcomeUpdate:
		return "update"
	case OutcomeDelete:
		return "delete"
	case OutcomeSkip:
		return "skip"
	default:
		return "unknown"
	}
}
