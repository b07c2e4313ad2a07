//go:build windows

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
	"go.opencensus.io/trace"

	"github.com/Microsoft/settz/internal/history"
	"github.com/Microsoft/settz/internal/log"
	"github.com/Microsoft/settz/internal/logfields"
	"github.com/Microsoft/settz/internal/oc"
	"github.com/Microsoft/settz/internal/timezone"
	"github.com/Microsoft/settz/internal/tzerror"
	"github.com/Microsoft/settz/internal/winapi"
)

const desc = `A stand-alone tool that sets the system time zone from the registry time zone database.
It is intended for hosts where tzutil.exe and the Set-TimeZone cmdlet are unavailable.`

// flag names

const (
	flagLogLevel = "log-level"
	flagLogJSON  = "log-json"
	flagHistory  = "history"
)

//go:generate go tool github.com/josephspurrier/goversioninfo/cmd/goversioninfo -platform-specific

func main() {
	app := &cli.App{
		Name:        "settz",
		Usage:       "set the Windows system time zone",
		Description: desc,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagLogLevel,
				Usage:   "logging `level` (trace, debug, info, warning, error)",
				EnvVars: []string{"SETTZ_LOG_LEVEL"},
				Value:   logrus.WarnLevel.String(),
			},
			&cli.BoolFlag{
				Name:    flagLogJSON,
				Usage:   "format logs as JSON",
				EnvVars: []string{"SETTZ_LOG_JSON"},
			},
			&cli.StringFlag{
				Name:    flagHistory,
				Usage:   "`path` of the change history database; empty disables history",
				EnvVars: []string{"SETTZ_HISTORY"},
				Value:   defaultHistoryPath(),
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			setCommand,
			showCommand,
			getCommand,
			revertCommand,
			historyCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, tzerror.ErrAccessDenied) && !winapi.IsElevated() {
			fmt.Fprintln(os.Stderr, "settz must be run from an elevated prompt")
		}
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) error {
	lvl, err := logrus.ParseLevel(ctx.String(flagLogLevel))
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)
	if ctx.Bool(flagLogJSON) {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: log.TimeFormat})
	}
	logrus.AddHook(log.NewHook())
	trace.ApplyConfig(trace.Config{DefaultSampler: oc.DefaultSampler})
	trace.RegisterExporter(&oc.LogrusExporter{})
	return nil
}

func defaultHistoryPath() string {
	dir := os.Getenv("ProgramData")
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "settz", "history.db")
}

// openHistory opens the history database, or returns nil if it is disabled.
func openHistory(ctx *cli.Context) (*history.Store, error) {
	p := strings.TrimSpace(ctx.String(flagHistory))
	if p == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return nil, errors.Wrap(err, "create history directory")
	}
	s, err := history.Open(p)
	if err != nil {
		return nil, err
	}
	log.G(commandContext(ctx)).WithField(logfields.Path, p).Debug("opened history database")
	return s, nil
}

func newCommitter() *timezone.Committer {
	return timezone.NewHost()
}

// commandContext returns the context of the running command, carrying a log
// entry tagged with the command name.
func commandContext(cctx *cli.Context) context.Context {
	ctx, _ := log.WithContext(cctx.Context, log.L)
	if cctx.Command != nil {
		ctx, _ = log.S(ctx, logrus.Fields{logfields.Operation: cctx.Command.Name})
	}
	return ctx
}
