// Package timezone resolves a time zone from the registry database and makes
// it the active system time zone.
package timezone

//go:generate go tool go.uber.org/mock/mockgen -source=timezone.go -package=mock -destination=mock/timezone_mock.go

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"

	"github.com/Microsoft/settz/internal/log"
	"github.com/Microsoft/settz/internal/logfields"
	"github.com/Microsoft/settz/internal/oc"
	"github.com/Microsoft/settz/internal/privilege"
	"github.com/Microsoft/settz/internal/tzdesc"
	"github.com/Microsoft/settz/internal/tzerror"
	"github.com/Microsoft/settz/internal/tzi"
	"github.com/Microsoft/settz/internal/tzregistry"
	"github.com/Microsoft/settz/internal/winapi/types"
	"github.com/Microsoft/settz/osversion"
)

// System is the operating system side of a time zone change.
//
// The Set* methods must return the error captured from the very system call
// that failed (as the generated winapi wrappers do), before any other call
// can overwrite the thread's last error.
type System interface {
	OSVersion() osversion.OSVersion
	SetTimeZoneInformation(tzi *types.TimeZoneInformation) error
	SetDynamicTimeZoneInformation(dtzi *types.DynamicTimeZoneInformation) error
	GetDynamicTimeZoneInformation(dtzi *types.DynamicTimeZoneInformation) (uint32, error)
}

// Committer applies time zones from the registry database.
//
// A call to Set moves through
//
//	resolved -> decoded -> descriptor built -> privilege held -> committed|failed -> privilege released
//
// and the privilege is always released once it was requested. Set changes the
// process token and machine-wide state: callers must not run Set concurrently
// within a process. Changes made by other processes are not detected.
type Committer struct {
	reg  tzregistry.Reader
	sys  System
	gate *privilege.Gate
}

// New returns a Committer reading the time zone database from reg and
// applying time zones through sys, with gate holding the privilege.
func New(reg tzregistry.Reader, sys System, gate *privilege.Gate) *Committer {
	return &Committer{
		reg:  reg,
		sys:  sys,
		gate: gate,
	}
}

// Resolve looks name up in the registry and builds the descriptor that Set
// would commit, without changing anything.
func (c *Committer) Resolve(ctx context.Context, name string) (_ *tzdesc.Descriptor, err error) {
	ctx, span := oc.StartSpan(ctx, "timezone::Resolve")
	defer span.End()
	defer func() { oc.SetSpanStatus(span, err) }()
	span.AddAttributes(trace.StringAttribute(logfields.TimeZone, name))

	key, err := tzregistry.FindKey(c.reg, name)
	if err != nil {
		return nil, err
	}

	e, err := tzregistry.ReadEntry(c.reg, key)
	if err != nil {
		return nil, err
	}

	rec, err := tzi.Decode(e.TZI)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", tzregistry.KeyPath(key))
	}

	osv := c.sys.OSVersion()
	d, err := tzdesc.Build(rec, e.StandardName, e.DaylightName, e.KeyName, osv.MajorVersion)
	if err != nil {
		return nil, errors.Wrapf(err, "build descriptor for %q", key)
	}

	log.G(ctx).WithFields(logrus.Fields{
		logfields.KeyName:      key,
		logfields.StandardName: e.StandardName,
		logfields.DaylightName: e.DaylightName,
		logfields.Bias:         rec.Bias,
		logfields.Variant:      d.Variant.String(),
		logfields.OSVersion:    osv.String(),
	}).Debug("resolved time zone")
	return d, nil
}

// Set makes name the active system time zone.
func (c *Committer) Set(ctx context.Context, name string) (err error) {
	ctx, span := oc.StartSpan(ctx, "timezone::Set")
	defer span.End()
	defer func() { oc.SetSpanStatus(span, err) }()
	span.AddAttributes(trace.StringAttribute(logfields.TimeZone, name))

	d, err := c.Resolve(ctx, name)
	if err != nil {
		return err
	}
	return c.Commit(ctx, d)
}

// Commit installs d as the active system time zone, holding
// [privilege.SeTimeZonePrivilege] for the duration of the call.
func (c *Committer) Commit(ctx context.Context, d *tzdesc.Descriptor) error {
	entry := log.G(ctx).WithFields(logrus.Fields{
		logfields.KeyName: d.KeyName(),
		logfields.Variant: d.Variant.String(),
	})

	start := time.Now()
	privErr, err := c.gate.With(ctx, privilege.SeTimeZonePrivilege, func() error {
		switch d.Variant {
		case tzdesc.Legacy:
			return c.sys.SetTimeZoneInformation(d.Legacy)
		case tzdesc.Dynamic:
			return c.sys.SetDynamicTimeZoneInformation(d.Dynamic)
		default:
			return errors.Errorf("unknown descriptor variant %d", d.Variant)
		}
	})
	entry = entry.WithField(logfields.Duration, time.Since(start))
	if err != nil {
		err = tzerror.FromCommit(err, privErr)
		code := tzerror.Win32FromError(err)
		entry.WithFields(logrus.Fields{
			logfields.Win32Code: code,
			logfields.HRESULT:   tzerror.HRESULTFromWin32(code),
		}).WithError(err).Error("failed to set system time zone")
		return err
	}
	if privErr != nil {
		entry.WithError(privErr).Warning("time zone set without enabling privilege")
	}

	entry.WithField(logfields.Bias, d.Bias()).Info("set system time zone")
	return nil
}

// Current describes the active system time zone.
type Current struct {
	tzdesc.Summary
	// State is one of the winapi TIME_ZONE_ID_* values.
	State uint32 `json:"state"`
}

// Current reads the active system time zone from the OS.
func (c *Committer) Current(ctx context.Context) (_ *Current, err error) {
	_, span := oc.StartSpan(ctx, "timezone::Current")
	defer span.End()
	defer func() { oc.SetSpanStatus(span, err) }()

	var dtzi types.DynamicTimeZoneInformation
	id, err := c.sys.GetDynamicTimeZoneInformation(&dtzi)
	if err != nil {
		return nil, errors.Wrap(err, "get dynamic time zone information")
	}
	return &Current{
		Summary: tzdesc.FromDynamic(&dtzi).Summary(),
		State:   id,
	}, nil
}
