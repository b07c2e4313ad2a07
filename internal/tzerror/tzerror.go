// Package tzerror defines the failures surfaced while resolving and applying a
// system time zone.
//
// Every sentinel wraps a [github.com/containerd/errdefs] class, so callers may
// either match the exact failure with [errors.Is] or the broad category with
// the errdefs helpers (errdefs.IsNotFound, errdefs.IsPermissionDenied, ...).
package tzerror

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/containerd/errdefs"
)

var (
	// ErrUnknownTimeZone is returned when no registry subkey matches the requested name.
	ErrUnknownTimeZone = fmt.Errorf("unknown time zone: %w", errdefs.ErrNotFound)

	// ErrRegistryRead is returned when a required registry value is absent or has the wrong type.
	ErrRegistryRead = fmt.Errorf("time zone registry read failed: %w", errdefs.ErrFailedPrecondition)

	// ErrMalformedRecord is returned when the TZI value is not exactly 44 bytes.
	ErrMalformedRecord = fmt.Errorf("malformed time zone record: %w", errdefs.ErrDataLoss)

	// ErrNameTooLong is returned when a name does not fit its descriptor field.
	ErrNameTooLong = fmt.Errorf("time zone name too long: %w", errdefs.ErrOutOfRange)

	// ErrAccessDenied is returned when the OS refuses the change for lack of privilege.
	ErrAccessDenied = fmt.Errorf("access denied changing system time zone: %w", errdefs.ErrPermissionDenied)

	// ErrUnsignedCaller is returned when the OS rejects the calling binary as unsigned.
	ErrUnsignedCaller = fmt.Errorf("application is not signed: %w", errdefs.ErrUnauthenticated)

	// ErrOSCommitFailed is returned for every other OS failure.
	ErrOSCommitFailed = fmt.Errorf("setting system time zone failed: %w", errdefs.ErrUnknown)
)

// Win32 codes the commit path distinguishes.
//
//nolint:revive,stylecheck
const (
	ERROR_ACCESS_DENIED = syscall.Errno(0x5)
	ERROR_GEN_FAILURE   = syscall.Errno(0x1f)

	// CORSEC_E_MISSING_STRONGNAME, reported as a (negative) HRESULT in the last error slot.
	CORSEC_E_MISSING_STRONGNAME = syscall.Errno(0x8013141b)
)

// CommitError describes a failed SetTimeZoneInformation or
// SetDynamicTimeZoneInformation call.
type CommitError struct {
	// Kind is one of ErrAccessDenied, ErrUnsignedCaller or ErrOSCommitFailed.
	Kind error
	// Code is the Win32 error captured from the failing call.
	Code uint32
	// HRESULT is Code converted with HRESULT_FROM_WIN32.
	HRESULT uint32
	// Err is the error returned by the system call.
	Err error
	// Privilege is set when enabling the time zone privilege failed beforehand.
	Privilege error
}

func (e *CommitError) Error() string {
	s := fmt.Sprintf("%s: Win32 error 0x%x (HRESULT 0x%08x)", e.Kind, e.Code, e.HRESULT)
	if e.Privilege != nil {
		s += fmt.Sprintf(": privilege was not enabled: %v", e.Privilege)
	}
	return s
}

func (e *CommitError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// FromCommit translates the error of a failed commit call. privErr is the
// (possibly nil) failure from enabling the privilege before the call.
func FromCommit(err, privErr error) error {
	if err == nil {
		return nil
	}
	code := Win32FromError(err)
	kind := ErrOSCommitFailed
	switch syscall.Errno(code) {
	case ERROR_ACCESS_DENIED:
		kind = ErrAccessDenied
	case CORSEC_E_MISSING_STRONGNAME:
		kind = ErrUnsignedCaller
	}
	return &CommitError{
		Kind:      kind,
		Code:      code,
		HRESULT:   HRESULTFromWin32(code),
		Err:       err,
		Privilege: privErr,
	}
}

// Win32FromError extracts the Win32 error code carried by err.
func Win32FromError(err error) uint32 {
	if cerr := (&CommitError{}); errors.As(err, &cerr) {
		return cerr.Code
	}
	if code := syscall.Errno(0); errors.As(err, &code) {
		return uint32(code)
	}
	return uint32(ERROR_GEN_FAILURE)
}

// HRESULTFromWin32 mirrors the HRESULT_FROM_WIN32 macro: values that already
// look like an HRESULT (zero or with the severity bit set) pass through.
func HRESULTFromWin32(code uint32) uint32 {
	if int32(code) <= 0 {
		return code
	}
	return (code & 0xffff) | 0x80070000
}
