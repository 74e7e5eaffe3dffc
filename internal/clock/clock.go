// Package clock abstracts wall time, delayed callbacks and identifier
// generation so simulated background work can be driven from tests.
package clock

import (
	"time"

	bclock "github.com/benbjohnson/clock"
)

type Clock = bclock.Clock

// Mock is a manually advanced clock. Add fires every timer whose deadline
// it passes; AfterFunc callbacks run on their own goroutine.
type Mock = bclock.Mock

func NewSystem() Clock {
	return bclock.New()
}

func NewMock(start time.Time) *Mock {
	m := bclock.NewMock()
	m.Set(start)
	return m
}
