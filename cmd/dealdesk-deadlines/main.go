// Command dealdesk-deadlines runs the stage-deadline scanner, either as a
// single cycle or on a cron schedule
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"dealdesk/internal/modkit"
	"dealdesk/internal/modkit/module"
	"dealdesk/internal/platform/config"
	"dealdesk/internal/platform/logger"
	"dealdesk/internal/platform/store"

	deadmod "dealdesk/internal/services/deadlines/module"
	notifydom "dealdesk/internal/services/notify/domain"
	notifymod "dealdesk/internal/services/notify/module"
)

func main() {
	root := config.New()
	dbCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CH_")

	l := logger.Get()

	// Flags
	var (
		fMode     = flag.String("mode", "once", "scanner mode: once | cron")
		fSchedule = flag.String("schedule", "*/15 * * * *", "cron schedule for -mode cron")
		fWindow   = flag.Duration("window", 0, "lookahead window override, e.g. 24h (0 = config default)")
		fChannels = flag.String("channels", "", "comma separated channel override: inapp,email,sms")
		fDryRun   = flag.Bool("dryrun", false, "mark records alerted but do not dispatch")
	)
	flag.Parse()

	st, err := store.Open(context.Background(), store.Config{
		AppName: "dealdesk-deadlines",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         dbCfg.MustString("DBURL"),
			MaxConns:    int32(dbCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: dbCfg.MayInt("SLOW_MS", 500),
			LogSQL:      dbCfg.MayBool("LOG_SQL", false),
		},
		CH: store.CHConfig{
			Enabled: chCfg.MayBool("ENABLED", false),
			URL:     chCfg.MayString("URL", ""),
			Role:    "deadlines",
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		CH:  st.CH,
		Log: *l,
	}

	nm := notifymod.New(deps)
	module.Register(nm.Name(), nm.Ports())
	dispatcher := module.MustPortsOf[notifydom.DispatcherPort](nm)

	dm := deadmod.New(deps, dispatcher, deadmod.Options{
		Lookahead:   *fWindow,
		ChannelsCSV: *fChannels,
		DryRun:      *fDryRun,
	})
	module.Register(dm.Name(), dm.Ports())
	ports := module.MustPortsOf[deadmod.Ports](dm)

	ctx := context.Background()

	switch *fMode {
	case "once":
		rep, err := ports.Scanner.RunCycle(ctx, time.Now().UTC())
		if err != nil {
			l.Fatal().Err(err).Msg("scan cycle failed")
		}
		l.Info().
			Int("processed", rep.Processed).
			Int("notified", rep.Notified).
			Int("errors", rep.Errors).
			Msg("scan cycle done")

	case "cron":
		c := cron.New()
		_, err := c.AddFunc(*fSchedule, func() {
			rep, err := ports.Scanner.RunCycle(ctx, time.Now().UTC())
			if err != nil {
				l.Error().Err(err).Msg("scheduled scan cycle failed")
				return
			}
			l.Info().
				Int("processed", rep.Processed).
				Int("notified", rep.Notified).
				Int("errors", rep.Errors).
				Msg("scheduled scan cycle done")
		})
		if err != nil {
			l.Fatal().Err(err).Str("schedule", *fSchedule).Msg("bad cron schedule")
		}
		c.Start()
		defer c.Stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		l.Info().Msg("shutting down deadline scanner")

	default:
		l.Fatal().Str("mode", *fMode).Msg("unknown mode, want once or cron")
	}
}
