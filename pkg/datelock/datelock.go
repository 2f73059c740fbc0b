package datelock

import (
	"context"
	"sync"
	"time"
)

// DateLock сериализует выполнение критических секций по календарной дате.
// Бронирования на разные даты не конкурируют между собой, поэтому блокировка
// берётся на дату, а не на весь стор.
type DateLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

const dateKeyFormat = "2006-01-02"

// New creates an empty DateLock.
func New() *DateLock {
	return &DateLock{
		locks: make(map[string]*sync.Mutex),
	}
}

// WithDate runs fn while holding the exclusive lock for the given date.
// The lock is released on every exit path, including an error from fn.
func (l *DateLock) WithDate(ctx context.Context, date time.Time, fn func(ctx context.Context) error) error {
	mu := l.lockFor(date.Format(dateKeyFormat))

	mu.Lock()
	defer mu.Unlock()

	return fn(ctx)
}

func (l *DateLock) lockFor(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	mu, ok := l.locks[key]
	if !ok {
		mu = &sync.Mutex{}
		l.locks[key] = mu
	}
	return mu
}
