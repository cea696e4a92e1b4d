package syncer

import "time"

const (
	defaultInterval           = 30 * time.Minute
	defaultFailureThreshold   = 5
	defaultBackoffFactor      = 2
	defaultMaxBackoffMultiple = 4
)

// Scheduler decides when a sync cycle is due. It is a pure function of
// the sync state and the clock; it owns no goroutines and keeps no
// state of its own.
type Scheduler struct {
	// Interval is the base cadence between sync attempts.
	Interval time.Duration
	// FailureThreshold is how many consecutive failures are tolerated
	// before the cadence backs off.
	FailureThreshold int
	// BackoffFactor multiplies the interval per failure beyond the
	// threshold.
	BackoffFactor int
	// MaxBackoffMultiple caps the effective interval at this multiple
	// of the base, so the badge still retries periodically no matter
	// how long the network stays down.
	MaxBackoffMultiple int
}

// NewScheduler builds a scheduler, substituting defaults for zero or
// negative settings.
func NewScheduler(interval time.Duration, threshold, factor, maxMultiple int) Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	if threshold <= 0 {
		threshold = defaultFailureThreshold
	}
	if factor < 2 {
		factor = defaultBackoffFactor
	}
	if maxMultiple < 1 {
		maxMultiple = defaultMaxBackoffMultiple
	}
	return Scheduler{
		Interval:           interval,
		FailureThreshold:   threshold,
		BackoffFactor:      factor,
		MaxBackoffMultiple: maxMultiple,
	}
}

// Due reports whether a sync cycle should run now. A manual refresh is
// always due; otherwise a cycle is due once the effective interval has
// elapsed since the last attempt. A state that has never attempted is
// due immediately.
func (s Scheduler) Due(st State, now time.Time, manual bool) bool {
	if manual {
		return true
	}
	if st.NeverAttempted() {
		return true
	}
	return now.Sub(st.LastAttempt) >= s.EffectiveInterval(st.ConsecutiveFailures)
}

// EffectiveInterval returns the wait between attempts given the current
// failure streak: the base interval until the threshold is crossed,
// then multiplied per additional failure up to the capped maximum.
func (s Scheduler) EffectiveInterval(failures int) time.Duration {
	interval := s.Interval
	if failures <= s.FailureThreshold {
		return interval
	}
	ceiling := s.Interval * time.Duration(s.MaxBackoffMultiple)
	for i := s.FailureThreshold; i < failures; i++ {
		interval *= time.Duration(s.BackoffFactor)
		if interval >= ceiling {
			return ceiling
		}
	}
	return interval
}
