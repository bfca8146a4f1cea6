package period

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tutils/prng/counter"
)

var _ counter.Counter = &periodCounter{}

// periodCounter refreshes its rate at most once per period.
type periodCounter struct {
	value      int64
	period     time.Duration
	epoch      time.Time
	ratePerSec int64
	now        func() time.Time

	lastValue int64
	lastTime  time.Time
	mut       sync.Mutex
}

// NewPeriodCounter returns a Counter whose rate is sampled every period.
func NewPeriodCounter(period time.Duration) counter.Counter {
	return newPeriodCounter(period, time.Now)
}

func newPeriodCounter(period time.Duration, now func() time.Time) *periodCounter {
	t := now()
	return &periodCounter{
		period:   period,
		epoch:    t,
		lastTime: t,
		now:      now,
	}
}

// Value implements Counter.
func (c *periodCounter) Value() int64 {
	return atomic.LoadInt64(&c.value)
}

// RatePerSec implements Counter.
func (c *periodCounter) RatePerSec() int64 {
	return atomic.LoadInt64(&c.ratePerSec)
}

// AverageRatePerSec implements Counter.
func (c *periodCounter) AverageRatePerSec() int64 {
	elapsed := c.now().Sub(c.epoch)
	if elapsed <= 0 {
		return 0
	}
	return int64(float64(c.Value()) / elapsed.Seconds())
}

// Add implements Counter.
func (c *periodCounter) Add(n int64) {
	atomic.AddInt64(&c.value, n)
	c.check()
}

func (c *periodCounter) check() {
	c.mut.Lock()
	defer c.mut.Unlock()

	now := c.now()
	elapsed := now.Sub(c.lastTime)
	if elapsed < c.period {
		return
	}

	value := c.Value()
	atomic.StoreInt64(&c.ratePerSec, int64(float64(value-c.lastValue)/elapsed.Seconds()))
	c.lastValue = value
	c.lastTime = now
}
