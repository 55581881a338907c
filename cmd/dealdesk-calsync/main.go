// Command dealdesk-calsync exports scheduled appointments as ICS or prints
// an expanded agenda for a window
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"dealdesk/internal/modkit"
	"dealdesk/internal/modkit/module"
	"dealdesk/internal/platform/config"
	"dealdesk/internal/platform/logger"
	"dealdesk/internal/platform/store"

	calmod "dealdesk/internal/services/calendar/module"
)

func parseWhen(label, v string, fallback time.Time) time.Time {
	if v == "" {
		return fallback
	}
	layouts := []string{"2006-01-02T15", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC()
		}
	}
	panic(fmt.Errorf("bad -%s: want YYYY-MM-DD or YYYY-MM-DDTHH", label))
}

func main() {
	root := config.New()
	dbCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	var (
		fMode = flag.String("mode", "export", "calsync mode: export | agenda")
		fOut  = flag.String("out", "calendar.ics", "output path for -mode export")
		fFrom = flag.String("from", "", "window start (UTC) YYYY-MM-DD or YYYY-MM-DDTHH, default now")
		fTo   = flag.String("to", "", "window end (UTC), default from+7d")
	)
	flag.Parse()

	st, err := store.Open(context.Background(), store.Config{
		AppName: "dealdesk-calsync",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         dbCfg.MustString("DBURL"),
			MaxConns:    int32(dbCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: dbCfg.MayInt("SLOW_MS", 500),
			LogSQL:      dbCfg.MayBool("LOG_SQL", false),
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

	deps := modkit.Deps{Cfg: root, PG: st.PG, Log: *l}

	cm := calmod.New(deps)
	module.Register(cm.Name(), cm.Ports())
	ports := module.MustPortsOf[calmod.Ports](cm)

	ctx := context.Background()
	from := parseWhen("from", *fFrom, time.Now().UTC())
	to := parseWhen("to", *fTo, from.AddDate(0, 0, 7))

	// both modes read the same scheduled slice
	appts, err := ports.Export.ListScheduled(ctx, from, to)
	if err != nil {
		l.Fatal().Err(err).Msg("loading appointments failed")
	}
	if len(appts) == 0 {
		l.Info().Msg("no appointments in window")
		return
	}

	switch *fMode {
	case "export":
		out, err := ports.Export.ExportICS(appts)
		if err != nil {
			l.Fatal().Err(err).Msg("ics export failed")
		}
		if err := os.WriteFile(*fOut, out, 0o644); err != nil {
			l.Fatal().Err(err).Str("path", *fOut).Msg("writing ics file failed")
		}
		l.Info().Str("path", *fOut).Int("appointments", len(appts)).Msg("ics exported")

	case "agenda":
		occ, err := ports.Export.Agenda(appts, from, to)
		if err != nil {
			l.Fatal().Err(err).Msg("agenda expansion failed")
		}
		for _, o := range occ {
			fmt.Printf("%s  %s - %s  %s\n",
				o.Start.Format("2006-01-02"),
				o.Start.Format("15:04"),
				o.End.Format("15:04"),
				o.Title,
			)
		}
		l.Info().Int("occurrences", len(occ)).Msg("agenda printed")

	default:
		l.Fatal().Str("mode", *fMode).Msg("unknown mode, want export or agenda")
	}
}
