package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

type entryContextKeyType struct{}

var _entryContextKey = entryContextKeyType{}

// L is the default log entry, used when the context carries none.
var L = logrus.NewEntry(logrus.StandardLogger())

// G returns the log entry stored in ctx, or [L] bound to ctx.
func G(ctx context.Context) *logrus.Entry {
	if e := fromContext(ctx); e != nil {
		return e
	}
	return L.WithContext(ctx)
}

// WithContext stores entry in ctx, binding the entry to the new context.
func WithContext(ctx context.Context, entry *logrus.Entry) (context.Context, *logrus.Entry) {
	// the entry references the context it is stored in, so that hooks can read
	// the span from it
	entry = entry.WithContext(ctx)
	ctx = context.WithValue(ctx, _entryContextKey, entry)
	return ctx, entry
}

// UpdateContext rebinds the entry stored in ctx (if any) to ctx itself.
// Call it after ctx gained new values, such as a trace span.
func UpdateContext(ctx context.Context) context.Context {
	if e := fromContext(ctx); e != nil {
		ctx, _ = WithContext(ctx, e)
	}
	return ctx
}

// S adds fields to the entry stored in ctx and stores the result.
func S(ctx context.Context, fields logrus.Fields) (context.Context, *logrus.Entry) {
	return WithContext(ctx, G(ctx).WithFields(fields))
}

func fromContext(ctx context.Context) *logrus.Entry {
	e, _ := ctx.Value(_entryContextKey).(*logrus.Entry)
	return e
}
