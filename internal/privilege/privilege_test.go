package privilege

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/mock/gomock"

	"github.com/Microsoft/settz/internal/privilege/mock"
)

func TestAcquireRelease(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	adj := mock.NewMockAdjuster(ctrl)

	gomock.InOrder(
		adj.EXPECT().Enable(SeTimeZonePrivilege).Return(nil),
		adj.EXPECT().Disable(SeTimeZonePrivilege).Return(errors.New("token closed")),
	)

	g := NewGate(adj)
	if !g.Acquire(ctx, SeTimeZonePrivilege) {
		t.Fatal("expected acquire to succeed")
	}
	if g.Release(ctx, SeTimeZonePrivilege) {
		t.Fatal("expected release to report failure")
	}
}

func TestWith(t *testing.T) {
	errEnable := errors.New("not all privileges assigned")
	errFn := errors.New("commit failed")

	for _, tc := range []struct {
		name       string
		enableErr  error
		disableErr error
		fnErr      error
	}{
		{name: "success"},
		{name: "acquire fails", enableErr: errEnable},
		{name: "operation fails", fnErr: errFn},
		{name: "both fail", enableErr: errEnable, fnErr: errFn},
		{name: "release fails", disableErr: errors.New("invalid handle")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			ctrl := gomock.NewController(t)
			adj := mock.NewMockAdjuster(ctrl)

			ran := false
			gomock.InOrder(
				adj.EXPECT().Enable(SeTimeZonePrivilege).Return(tc.enableErr).Times(1),
				adj.EXPECT().Disable(SeTimeZonePrivilege).Return(tc.disableErr).Times(1),
			)

			acquireErr, err := NewGate(adj).With(ctx, SeTimeZonePrivilege, func() error {
				ran = true
				return tc.fnErr
			})
			if !ran {
				t.Fatal("protected operation did not run")
			}
			if !errors.Is(acquireErr, tc.enableErr) || (tc.enableErr == nil) != (acquireErr == nil) {
				t.Fatalf("expected acquire error %v, got %v", tc.enableErr, acquireErr)
			}
			if err != tc.fnErr { //nolint:errorlint
				t.Fatalf("expected operation error %v, got %v", tc.fnErr, err)
			}
		})
	}
}

func TestWithReleasesOnPanic(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	adj := mock.NewMockAdjuster(ctrl)

	adj.EXPECT().Enable(SeTimeZonePrivilege).Return(nil)
	adj.EXPECT().Disable(SeTimeZonePrivilege).Return(nil).Times(1)

	defer func() {
		if recover() == nil {
			t.Fatal("expected the panic to propagate")
		}
	}()
	_, _ = NewGate(adj).With(ctx, SeTimeZonePrivilege, func() error {
		panic("boom")
	})
}
