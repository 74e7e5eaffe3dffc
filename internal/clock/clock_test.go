package clock

import (
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

func TestMockStartsAtGivenTime(t *testing.T) {
	c := NewMock(epoch)
	assert.Equal(t, epoch, c.Now())

	c.Add(90 * time.Minute)
	assert.Equal(t, epoch.Add(90*time.Minute), c.Now())
}

func TestMockFiresAfterFuncOnceDeadlinePasses(t *testing.T) {
	c := NewMock(epoch)
	var fired atomic.Int32

	c.AfterFunc(2*time.Second, func() { fired.Add(1) })
	c.AfterFunc(5*time.Second, func() { fired.Add(10) })

	c.Add(time.Second)
	assert.Zero(t, fired.Load())

	c.Add(2 * time.Second)
	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)

	c.Add(time.Minute)
	require.Eventually(t, func() bool { return fired.Load() == 11 }, time.Second, time.Millisecond)
}

func TestMockStop(t *testing.T) {
	c := NewMock(epoch)
	var called atomic.Bool
	timer := c.AfterFunc(time.Second, func() { called.Store(true) })

	assert.True(t, timer.Stop())
	c.Add(time.Minute)
	assert.False(t, called.Load())
}

func TestSequence(t *testing.T) {
	seq := NewSequence()
	assert.Equal(t, "ORD-001", seq.NewID("ORD"))
	assert.Equal(t, "ORD-002", seq.NewID("ORD"))
	assert.Equal(t, "NFE-001", seq.NewID("NFE"))
	assert.Equal(t, "001", seq.NewID(""))

	key := seq.Digits(44)
	assert.Len(t, key, 44)
	assert.Equal(t, "000000000000002", seq.Digits(15))
}

func TestUUIDGenerator(t *testing.T) {
	gen := NewUUIDGenerator()

	id := gen.NewID("ACC")
	require.Regexp(t, regexp.MustCompile(`^ACC-[0-9A-F]{8}$`), id)
	assert.NotEqual(t, id, gen.NewID("ACC"))

	digits := gen.Digits(44)
	assert.Regexp(t, regexp.MustCompile(`^[0-9]{44}$`), digits)
}
