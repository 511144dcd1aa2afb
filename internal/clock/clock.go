// Package clock источник времени для кода с ожиданиями: реальный и записывающий для тестов.
package clock

import (
	"sync"
	"time"
)

// Clock время и таймеры
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// Real системное время
type Real struct{}

// Now текущее время в UTC
func (Real) Now() time.Time {
	return time.Now().UTC()
}

func (Real) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// Recorder виртуальные часы: таймер срабатывает сразу, запрошенная задержка
// запоминается и сдвигает Now.
type Recorder struct {
	now    time.Time
	delays []time.Duration
	mu     sync.Mutex
}

// NewRecorder создает Recorder с начальным временем start
func NewRecorder(start time.Time) *Recorder {
	return &Recorder{now: start.UTC()}
}

func (r *Recorder) Now() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.now
}

// After записывает d, сдвигает время и возвращает уже сработавший канал
func (r *Recorder) After(d time.Duration) <-chan time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delays = append(r.delays, d)
	r.now = r.now.Add(d)
	fired := make(chan time.Time, 1)
	fired <- r.now
	return fired
}

// Delays копия всех запрошенных задержек по порядку
func (r *Recorder) Delays() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]time.Duration, len(r.delays))
	copy(out, r.delays)
	return out
}

// Advance сдвигает время без записи задержки
func (r *Recorder) Advance(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = r.now.Add(d)
}
