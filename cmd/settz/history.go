//go:build windows

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"

	"github.com/Microsoft/settz/internal/history"
	"github.com/Microsoft/settz/internal/log"
	"github.com/Microsoft/settz/internal/logfields"
)

var errHistoryDisabled = errors.New("history is disabled; set --history or SETTZ_HISTORY")

var revertCommand = &cli.Command{
	Name:   "revert",
	Usage:  "restore the time zone that was active before the last recorded change",
	Action: revertTimeZone,
}

var historyCommand = &cli.Command{
	Name:    "history",
	Aliases: []string{"hist"},
	Usage:   "list recorded time zone changes, oldest first",
	Action:  listHistory,
}

func revertTimeZone(cctx *cli.Context) error {
	ctx := commandContext(cctx)
	store, err := openHistory(cctx)
	if err != nil {
		return err
	}
	if store == nil {
		return errHistoryDisabled
	}
	defer store.Close()

	last, err := store.Last(ctx)
	if err != nil {
		return err
	}
	if err := newCommitter().Set(ctx, last.Previous); err != nil {
		return errors.Wrapf(err, "revert to %q", last.Previous)
	}
	if _, err := store.Pop(ctx); err != nil {
		log.G(ctx).WithError(err).WithField(logfields.KeyName, last.Previous).Warning("time zone reverted but history not updated")
	}
	fmt.Fprintf(cctx.App.Writer, "time zone reverted to %q\n", last.Previous)
	return nil
}

func listHistory(cctx *cli.Context) error {
	ctx := commandContext(cctx)
	store, err := openHistory(cctx)
	if err != nil {
		return err
	}
	if store == nil {
		return errHistoryDisabled
	}
	defer store.Close()

	changes, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		return history.ErrEmpty
	}

	w := tabwriter.NewWriter(cctx.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tPREVIOUS\tAPPLIED")
	for _, c := range changes {
		fmt.Fprintf(w, "%s\t%s\t%s\n", log.FormatTime(c.Time), c.Previous, c.Applied)
	}
	return w.Flush()
}
