// Package config holds the run settings and reads the per-cloud
// credentials from the environment.
package config

import (
	"strings"
	"time"

	"github.com/favonia/cloudflare-zonesync/internal/api"
	"github.com/favonia/cloudflare-zonesync/internal/cron"
	"github.com/favonia/cloudflare-zonesync/internal/pp"
)

// Config holds the settings of one invocation. The command line fills
// in most fields; the credentials come from the environment.
type Config struct {
	FromCloud       string
	ToCloud         string
	Zones           []string
	All             bool
	RemoveExtras    bool
	MailOverride    string
	ZoneDescription string
	UpdateCron      cron.Schedule
	CacheExpiration time.Duration
}

// Default gives the default configuration.
func Default() *Config {
	return &Config{
		FromCloud:       "",
		ToCloud:         "",
		Zones:           nil,
		All:             false,
		RemoveExtras:    false,
		MailOverride:    "",
		ZoneDescription: "",
		UpdateCron:      nil,
		CacheExpiration: time.Hour * 6,
	}
}

// envPrefix computes the environment variable prefix of a cloud. The
// cloud name is chosen by the user; "prod" becomes "ZONESYNC_PROD_".
func envPrefix(cloud string) string {
	return "ZONESYNC_" + strings.ToUpper(cloud) + "_"
}

// ReadAuth reads the credentials of a cloud from the environment.
// <PREFIX>API_TOKEN is required; <PREFIX>ACCOUNT_ID is needed only to
// create zones, and <PREFIX>API_URL overrides the API endpoint.
func ReadAuth(ppfmt pp.PP, cloud string) (api.Auth, bool) {
	prefix := envPrefix(cloud)

	token := Getenv(prefix + "API_TOKEN")
	if token == "" {
		ppfmt.Noticef(pp.EmojiUserError, "Needs %sAPI_TOKEN", prefix)
		return nil, false
	}

	auth := api.CloudflareAuth{
		Token:     token,
		AccountID: Getenv(prefix + "ACCOUNT_ID"),
		BaseURL:   Getenv(prefix + "API_URL"),
		Resolver:  nil,
	}

	return auth, true
}

// Check verifies that the settings are coherent.
func (c *Config) Check(ppfmt pp.PP) bool {
	if c.FromCloud == "" || c.ToCloud == "" {
		ppfmt.Noticef(pp.EmojiUserError, "Both the source and the target cloud must be named")
		return false
	}

	if strings.EqualFold(c.FromCloud, c.ToCloud) {
		ppfmt.Noticef(pp.EmojiUserError, "The source and the target cloud must be different")
		return false
	}

	if c.All == (len(c.Zones) > 0) {
		ppfmt.Noticef(pp.EmojiUserError, "Either list the zones to sync or pass --all, but not both")
		return false
	}

	return true
}

// Print prints the settings at the level [pp.Info].
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiConfig, "Current settings:")
	inner := ppfmt.Indent()

	inner.Infof(pp.EmojiBullet, "Source cloud:          %s", c.FromCloud)
	inner.Infof(pp.EmojiBullet, "Target cloud:          %s", c.ToCloud)
	if c.All {
		inner.Infof(pp.EmojiBullet, "Zones:                 (all zones of the source cloud)")
	} else {
		inner.Infof(pp.EmojiBullet, "Zones:                 %s", strings.Join(c.Zones, ", "))
	}
	inner.Infof(pp.EmojiBullet, "Remove extra records:  %t", c.RemoveExtras)
	if c.MailOverride != "" {
		inner.Infof(pp.EmojiBullet, "Zone contact email:    %s", c.MailOverride)
	}
	if c.ZoneDescription != "" {
		inner.Infof(pp.EmojiBullet, "New zone description:  %s", c.ZoneDescription)
	}
	inner.Infof(pp.EmojiBullet, "Schedule:              %s", cron.DescribeSchedule(c.UpdateCron))
	inner.Infof(pp.EmojiBullet, "Zone cache expiration: %v", c.CacheExpiration)
}

// ReadCron parses a cron expression from the command line into the
// configuration. The empty string and "@once" both mean a single run.
func (c *Config) ReadCron(ppfmt pp.PP, spec string) bool {
	switch spec {
	case "", "@once":
		c.UpdateCron = nil
		return true
	default:
		sched, err := cron.New(spec)
		if err != nil {
			ppfmt.Noticef(pp.EmojiUserError, "%q is not a cron expression: %v", spec, err)
			return false
		}
		c.UpdateCron = sched
		return true
	}
}
