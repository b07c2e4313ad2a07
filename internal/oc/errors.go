package oc

import (
	"context"
	"errors"

	"go.opencensus.io/trace"

	"github.com/Microsoft/settz/internal/tzerror"
)

func toStatusCode(err error) uint32 {
	switch {
	case checkErrors(err, context.Canceled):
		return trace.StatusCodeCancelled
	case checkErrors(err, context.DeadlineExceeded):
		return trace.StatusCodeDeadlineExceeded
	case checkErrors(err, tzerror.ErrUnknownTimeZone):
		return trace.StatusCodeNotFound
	case checkErrors(err, tzerror.ErrNameTooLong):
		return trace.StatusCodeOutOfRange
	case checkErrors(err, tzerror.ErrRegistryRead):
		return trace.StatusCodeFailedPrecondition
	case checkErrors(err, tzerror.ErrMalformedRecord):
		return trace.StatusCodeDataLoss
	case checkErrors(err, tzerror.ErrAccessDenied):
		return trace.StatusCodePermissionDenied
	case checkErrors(err, tzerror.ErrUnsignedCaller):
		return trace.StatusCodeUnauthenticated
	default:
		return trace.StatusCodeUnknown
	}
}

func checkErrors(err error, errs ...error) bool {
	for _, e := range errs {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
