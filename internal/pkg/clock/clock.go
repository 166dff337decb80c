// Package clock abstracts time.Now so TTL and freshness logic can be driven
// forward in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a fixed clock advanced explicitly by the test.
type MockClock struct {
	current time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

func (m *MockClock) Now() time.Time {
	return m.current
}

func (m *MockClock) Set(t time.Time) {
	m.current = t
}

func (m *MockClock) Add(d time.Duration) {
	m.current = m.current.Add(d)
}
