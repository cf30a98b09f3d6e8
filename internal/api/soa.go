package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// ErrNotSOA means a record set does not hold exactly one SOA record.
var ErrNotSOA = errors.New("not a well-formed SOA record set")

// ParseSOA parses the single value of an SOA record set.
func ParseSOA(rs RecordSet) (*dns.SOA, error) {
	if rs.Type != "SOA" || len(rs.Values) != 1 {
		return nil, fmt.Errorf("%w: %s", ErrNotSOA, rs.Describe())
	}

	rr, err := dns.NewRR(fmt.Sprintf("%s %d IN SOA %s", rs.Name, rs.TTL, rs.Values[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotSOA, rs.Describe(), err)
	}
	soa, ok := rr.(*dns.SOA)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotSOA, rs.Describe())
	}
	return soa, nil
}

// soaRDATA renders the RDATA of an SOA record the way it appears in a
// zone file, which is also the value format record sets use.
func soaRDATA(soa *dns.SOA) string {
	return fmt.Sprintf("%s %s %d %d %d %d %d",
		soa.Ns, soa.Mbox, soa.Serial, soa.Refresh, soa.Retry, soa.Expire, soa.Minttl)
}

// SOAEmail converts the RNAME (Mbox) of an SOA record to an email
// address: the first unescaped label separator becomes "@" and escaped
// dots inside the first label are unescaped. "admin\.dns.example.org."
// thus becomes "admin.dns@example.org".
func SOAEmail(mbox string) string {
	mbox = strings.TrimSuffix(mbox, ".")

	var local strings.Builder
	for i := 0; i < len(mbox); i++ {
		switch mbox[i] {
		case '\\':
			if i+1 < len(mbox) {
				i++
				local.WriteByte(mbox[i])
			}
		case '.':
			return local.String() + "@" + mbox[i+1:]
		default:
			local.WriteByte(mbox[i])
		}
	}
	return local.String()
}
