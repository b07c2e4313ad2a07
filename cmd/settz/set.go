//go:build windows

package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"

	"github.com/Microsoft/settz/internal/history"
	"github.com/Microsoft/settz/internal/log"
	"github.com/Microsoft/settz/internal/logfields"
	"github.com/Microsoft/settz/internal/tzregistry"
)

var setCommand = &cli.Command{
	Name:      "set",
	Usage:     "set the system time zone",
	ArgsUsage: "<time zone key name>",
	Action:    setTimeZone,
}

func setTimeZone(cctx *cli.Context) error {
	if cctx.NArg() != 1 {
		return errors.New("exactly one time zone name is required, for example \"Pacific Standard Time\"")
	}
	name := cctx.Args().First()
	ctx := commandContext(cctx)

	store, err := openHistory(cctx)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	// best effort: a missing previous value only disables revert
	prev, err := tzregistry.CurrentKeyName(tzregistry.LocalMachine{})
	if err != nil {
		log.G(ctx).WithError(err).Warning("could not read the current time zone")
	}

	if err := newCommitter().Set(ctx, name); err != nil {
		return err
	}

	if store != nil && prev != "" && prev != name {
		c := history.Change{Previous: prev, Applied: name, Time: time.Now().UTC()}
		if err := store.Record(ctx, c); err != nil {
			log.G(ctx).WithError(err).WithField(logfields.KeyName, name).Warning("time zone set but not recorded")
		}
	}
	fmt.Fprintf(cctx.App.Writer, "time zone set to %q\n", name)
	return nil
}
