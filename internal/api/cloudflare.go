package api

import (
	"time"

	"github.com/cloudflare/cloudflare-go"
	"github.com/jellydator/ttlcache/v3"

	"github.com/favonia/cloudflare-zonesync/internal/domain"
	"github.com/favonia/cloudflare-zonesync/internal/pp"
)

// CloudflareCache holds the previous responses from the Cloudflare API.
//
// Only zone lookups are cached. Record sets are deliberately fetched
// fresh: they are snapshots taken at the start of a zone pass and are
// never reused across passes.
type CloudflareCache = struct {
	zones *ttlcache.Cache[domain.FQDN, Zone] // zone names to zones
}

func newCache[K comparable, V any](cacheExpiration time.Duration) *ttlcache.Cache[K, V] {
	cache := ttlcache.New(
		ttlcache.WithDisableTouchOnHit[K, V](),
		ttlcache.WithTTL[K, V](cacheExpiration),
	)

	go cache.Start()

	return cache
}

// A CloudflareHandle implements the [Handle] interface with the Cloudflare API.
type CloudflareHandle struct {
	cf        *cloudflare.API
	accountID string
	resolver  SOAResolver
	cache     CloudflareCache
}

// A CloudflareAuth implements the [Auth] interface, holding the
// authentication data to create a [CloudflareHandle].
type CloudflareAuth struct {
	Token     string
	AccountID string
	BaseURL   string

	// Resolver overrides the default SOA resolver (mostly for testing).
	Resolver SOAResolver
}

// New creates a [CloudflareHandle] from the authentication data.
func (t CloudflareAuth) New(ppfmt pp.PP, cacheExpiration time.Duration) (Handle, bool) {
	handle, err := cloudflare.NewWithAPIToken(t.Token)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to prepare the Cloudflare authentication: %v", err)
		return nil, false
	}

	// set the base URL (mostly for testing)
	if t.BaseURL != "" {
		handle.BaseURL = t.BaseURL
	}

	resolver := t.Resolver
	if resolver == nil {
		resolver = NewSOAResolver()
	}

	h := CloudflareHandle{
		cf:        handle,
		accountID: t.AccountID,
		resolver:  resolver,
		cache: CloudflareCache{
			zones: newCache[domain.FQDN, Zone](cacheExpiration),
		},
	}

	return h, true
}

// FlushCache flushes the API cache.
func (h CloudflareHandle) FlushCache() {
	h.cache.zones.DeleteAll()
}
