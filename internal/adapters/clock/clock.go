package clock

import (
	"context"
	"time"

	"github.com/trebuchet-org/courier/internal/usecase"
)

// Real is the wall clock
type Real struct{}

// NewReal creates a wall clock
func NewReal() *Real {
	return &Real{}
}

// Now returns the current time
func (Real) Now() time.Time {
	return time.Now()
}

// Sleep waits for d or until ctx is done, whichever comes first
func (Real) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ usecase.Clock = (*Real)(nil)
