//go:build windows

package main

import (
	"fmt"

	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"

	"github.com/Microsoft/settz/internal/log"
	"github.com/Microsoft/settz/internal/privilege"
	"github.com/Microsoft/settz/internal/timezone"
	"github.com/Microsoft/settz/internal/tzdesc"
	"github.com/Microsoft/settz/internal/tzregistry"
	"github.com/Microsoft/settz/osversion"
)

const flagOSVersion = "os-version"

var showCommand = &cli.Command{
	Name:      "show",
	Usage:     "print the descriptor that set would commit, without changing anything",
	ArgsUsage: "<time zone key name>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  flagOSVersion,
			Usage: "build the descriptor for OS `version` Major.Minor[.Build] instead of the host's",
		},
	},
	Action: showTimeZone,
}

// versionOverride reports a fixed OS version, so show can preview the
// descriptor for other Windows releases.
type versionOverride struct {
	timezone.HostSystem
	v osversion.OSVersion
}

func (o versionOverride) OSVersion() osversion.OSVersion {
	return o.v
}

func showTimeZone(cctx *cli.Context) error {
	if cctx.NArg() != 1 {
		return errors.New("exactly one time zone name is required")
	}
	ctx := commandContext(cctx)

	c := newCommitter()
	if s := cctx.String(flagOSVersion); s != "" {
		v, err := osversion.Parse(s)
		if err != nil {
			return err
		}
		c = timezone.New(tzregistry.LocalMachine{}, versionOverride{v: v}, privilege.NewGate(privilege.ProcessAdjuster{}))
	}

	name := cctx.Args().First()
	d, err := c.Resolve(ctx, name)
	if err != nil {
		return err
	}

	out := shownTimeZone{Summary: d.Summary()}
	if out.Display, err = tzregistry.DisplayName(tzregistry.LocalMachine{}, name); err != nil {
		log.G(ctx).WithError(err).Warning("could not read time zone display name")
	}
	fmt.Fprintln(cctx.App.Writer, log.FormatIndent(ctx, out))
	return nil
}

type shownTimeZone struct {
	Display string `json:"display,omitempty"`
	tzdesc.Summary
}
