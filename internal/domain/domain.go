// Package domain parses and normalizes DNS zone names.
package domain

import (
	"errors"
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// profile does C2 in UTS#46 with all checks on + removing leading dots.
//
//nolint:gochecknoglobals
var profile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.Transitional(false),
	idna.RemoveLeadingDots(true),
)

// safelyToUnicode takes an ASCII form and returns the Unicode form
// when the round trip gives the same ASCII form back without errors.
// Otherwise, the input ASCII form is returned.
func safelyToUnicode(ascii string) string {
	unicode, errToA := profile.ToUnicode(ascii)
	roundTrip, errToU := profile.ToASCII(unicode)
	if errToA != nil || errToU != nil || roundTrip != ascii {
		return ascii
	}

	return unicode
}

// ErrEmptyName means a zone name was empty after normalization.
var ErrEmptyName = errors.New("empty zone name")

// New normalizes a zone name to its fully qualified ASCII form,
// always ending in a trailing dot. Names are stored in the Punycode
// form to avoid ambiguity.
func New(name string) (FQDN, error) {
	normalized, err := profile.ToASCII(strings.TrimSuffix(name, "."))
	if err != nil {
		return FQDN(dns.Fqdn(normalized)), err
	}
	if normalized == "" {
		return "", ErrEmptyName
	}

	return FQDN(dns.Fqdn(normalized)), nil
}
