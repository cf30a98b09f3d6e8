package api

import (
	"errors"
	"fmt"
	"slices"

	"github.com/favonia/cloudflare-zonesync/internal/domain"
)

// A RecordSet is the collection of all records sharing one name and
// one type within a zone, with their shared TTL.
type RecordSet struct {
	// Name is the fully qualified owner name.
	Name domain.FQDN

	// Type is the record type (A, AAAA, CNAME, MX, TXT, NS, SOA, ...).
	Type string

	// TTL is the shared time to live, in seconds.
	TTL int

	// Values are the record data, one entry per record.
	Values []string

	// Description is the free-text description, if the provider has one.
	Description string

	// IDs are provider-side identifiers backing the set. They are
	// opaque to everything but the provider client that produced them;
	// synthesized record sets (such as the apex SOA) have none.
	IDs []string
}

// Describe gives a human-readable "TYPE of name" representation.
func (rs RecordSet) Describe() string {
	return fmt.Sprintf("%s record set of %s", rs.Type, rs.Name.Describe())
}

// Equal reports whether two record sets hold the same TTL, the same
// values in the same order, and the same description. This is the
// strict comparison deciding whether an update is needed.
func (rs RecordSet) Equal(other RecordSet) bool {
	return rs.TTL == other.TTL &&
		slices.Equal(rs.Values, other.Values) &&
		rs.Description == other.Description
}

// ValueSetEquals reports whether two value collections have exactly the
// same members, ignoring order and duplicates. Nameserver comparisons
// use this deliberately looser check; everything else goes through
// [RecordSet.Equal].
func ValueSetEquals(a, b []string) bool {
	for _, v := range a {
		if !slices.Contains(b, v) {
			return false
		}
	}
	for _, v := range b {
		if !slices.Contains(a, v) {
			return false
		}
	}
	return true
}

// ErrDuplicateRecordSet means a zone held several record sets with the
// same name and type, which no sane provider should ever produce.
var ErrDuplicateRecordSet = errors.New("duplicate record sets")

// FindMatching returns the record set in sets with the given name and
// type. The second result reports whether one was found. A zone can
// never legitimately hold two record sets with the same name and type;
// if the provider returned several, FindMatching reports
// [ErrDuplicateRecordSet].
func FindMatching(sets []RecordSet, name domain.FQDN, typ string) (RecordSet, bool, error) {
	var match RecordSet
	found := false
	for _, rs := range sets {
		if rs.Name != name || rs.Type != typ {
			continue
		}
		if found {
			return RecordSet{}, false, fmt.Errorf("%w named %s with type %s",
				ErrDuplicateRecordSet, name.Describe(), typ)
		}
		match, found = rs, true
	}
	return match, found, nil
}
