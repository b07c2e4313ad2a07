//go:build windows

package main

import (
	"fmt"

	cli "github.com/urfave/cli/v2"

	"github.com/Microsoft/settz/internal/log"
)

const flagJSON = "json"

var getCommand = &cli.Command{
	Name:  "get",
	Usage: "print the active system time zone",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  flagJSON,
			Usage: "print the full time zone information as JSON",
		},
	},
	Action: func(cctx *cli.Context) error {
		ctx := commandContext(cctx)
		cur, err := newCommitter().Current(ctx)
		if err != nil {
			return err
		}
		if cctx.Bool(flagJSON) {
			fmt.Fprintln(cctx.App.Writer, log.FormatIndent(ctx, cur))
			return nil
		}
		fmt.Fprintln(cctx.App.Writer, cur.KeyName)
		return nil
	},
}
