package domain

import "strings"

// FQDN is a fully qualified domain in its ASCII form, including the
// trailing dot. The trailing dot is significant: it is how zone names
// are spelled in zone files and in this whole program. Only the
// provider-specific API layers may strip it.
type FQDN string

// String returns the fully qualified form, with the trailing dot.
func (f FQDN) String() string { return string(f) }

// DNSNameASCII returns the ASCII form without the trailing dot,
// suitable for REST APIs that reject fully qualified spellings.
func (f FQDN) DNSNameASCII() string { return strings.TrimSuffix(string(f), ".") }

// Describe gives a human-readable representation of the FQDN.
func (f FQDN) Describe() string {
	return safelyToUnicode(string(f))
}
