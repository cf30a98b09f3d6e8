// Package main is the entry point of the zone synchronizer.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/favonia/cloudflare-zonesync/internal/api"
	"github.com/favonia/cloudflare-zonesync/internal/config"
	"github.com/favonia/cloudflare-zonesync/internal/cron"
	"github.com/favonia/cloudflare-zonesync/internal/pp"
	"github.com/favonia/cloudflare-zonesync/internal/signal"
	"github.com/favonia/cloudflare-zonesync/internal/syncer"
)

// Version is the version string shown in the output.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

// maxExitCode keeps error counts inside the range of portable exit codes.
const maxExitCode = 125

func formatName() string {
	if Version == "" {
		return "Cloudflare ZoneSync"
	}
	return fmt.Sprintf("Cloudflare ZoneSync (%s)", Version)
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ppfmt := pp.New(os.Stdout)
	if !config.ReadEmoji("ZONESYNC_EMOJI", &ppfmt) {
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}

	exitCode := 0
	cmd := newRootCmd(ppfmt, &exitCode)
	if err := cmd.Execute(); err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%v", err)
		return 1
	}
	return exitCode
}

func newRootCmd(ppfmt pp.PP, exitCode *int) *cobra.Command {
	c := config.Default()
	config.ReadString("ZONESYNC_MAIL", &c.MailOverride)
	config.ReadString("ZONESYNC_DESCRIPTION", &c.ZoneDescription)
	var (
		cronSpec string
		quiet    bool
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "zonesync --from CLOUD --to CLOUD (--all | ZONE ...)",
		Short: "Mirror DNS zones from one cloud to another",
		Long: `Mirror DNS zones from one cloud to another.

The credentials of a cloud named CLOUD are read from the environment
variables ZONESYNC_<CLOUD>_API_TOKEN, ZONESYNC_<CLOUD>_ACCOUNT_ID, and
ZONESYNC_<CLOUD>_API_URL (the cloud name is uppercased). ZONESYNC_MAIL
and ZONESYNC_DESCRIPTION give defaults for --mail and --description.`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case quiet && verbose:
				return fmt.Errorf("--quiet and --verbose are mutually exclusive")
			case quiet:
				ppfmt = ppfmt.SetVerbosity(pp.Quiet)
			case verbose:
				ppfmt = ppfmt.SetVerbosity(pp.Verbose)
			}

			c.Zones = args
			if !c.ReadCron(ppfmt, cronSpec) || !c.Check(ppfmt) {
				ppfmt.Noticef(pp.EmojiBye, "Bye!")
				*exitCode = 1
				return nil
			}

			*exitCode = run(ppfmt, c)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&c.FromCloud, "from", "f", "", "name of the source cloud (required)")
	flags.StringVarP(&c.ToCloud, "to", "t", "", "name of the target cloud (required)")
	flags.BoolVarP(&c.All, "all", "a", false, "sync every zone of the source cloud")
	flags.BoolVarP(&c.RemoveExtras, "remove", "r", false,
		"delete target record sets without a source counterpart")
	flags.StringVarP(&c.MailOverride, "mail", "m", c.MailOverride,
		"contact email for newly created zones (default: taken from the source SOA)")
	flags.StringVar(&c.ZoneDescription, "description", c.ZoneDescription,
		"description for newly created zones")
	flags.StringVar(&cronSpec, "cron", "", "keep running and resync on this cron schedule")
	flags.BoolVarP(&quiet, "quiet", "q", false, "only print notices and errors")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print everything")

	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func initHandles(ppfmt pp.PP, c *config.Config) (source, target api.Handle, ok bool) {
	srcAuth, ok := config.ReadAuth(ppfmt, c.FromCloud)
	if !ok {
		return nil, nil, false
	}
	dstAuth, ok := config.ReadAuth(ppfmt, c.ToCloud)
	if !ok {
		return nil, nil, false
	}

	source, ok = srcAuth.New(ppfmt, c.CacheExpiration)
	if !ok {
		return nil, nil, false
	}
	target, ok = dstAuth.New(ppfmt, c.CacheExpiration)
	if !ok {
		return nil, nil, false
	}

	return source, target, true
}

func run(ppfmt pp.PP, c *config.Config) int { //nolint:funlen
	if !ppfmt.IsShowing(pp.Info) {
		ppfmt.Noticef(pp.EmojiMute, "Quiet mode enabled")
	}

	ppfmt.Noticef(pp.EmojiStar, formatName())
	c.Print(ppfmt)

	source, target, ok := initHandles(ppfmt, c)
	if !ok {
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}

	// Catch signals SIGINT and SIGTERM
	sig := signal.Setup()
	ctxWithSignals, cancel := signal.NotifyContext(context.Background())
	defer cancel()

	s := syncer.New(source, target)
	opts := syncer.Options{
		RemoveExtras:    c.RemoveExtras,
		MailOverride:    c.MailOverride,
		ZoneDescription: c.ZoneDescription,
	}

	for {
		// The next run is computed up front so that the timer is not
		// delayed by the syncing itself.
		next := cron.Next(c.UpdateCron)

		stats := s.Run(ctxWithSignals, ppfmt, c.Zones, c.All, opts)
		stats.Print(ppfmt)

		if c.UpdateCron == nil {
			ppfmt.Noticef(pp.EmojiBye, "Bye!")
			return min(stats.Errors, maxExitCode)
		}

		if ctxWithSignals.Err() != nil {
			ppfmt.Noticef(pp.EmojiBye, "Bye!")
			return 0
		}

		if next.IsZero() {
			ppfmt.Noticef(pp.EmojiUserError, "No scheduled runs in near future")
			ppfmt.Noticef(pp.EmojiBye, "Bye!")
			return 1
		}

		source.FlushCache()
		target.FlushCache()

		now := time.Now()
		cron.PrintCountdown(ppfmt, "Syncing the zones", now, next)
		if !sig.Sleep(ppfmt, next.Sub(now)) {
			ppfmt.Noticef(pp.EmojiBye, "Bye!")
			return 0
		}
	}
}
