package connection

import (
	"sync"
	"time"
)

// keepAlive tracks the per-connection last-sent timestamp and resends
// the channel-select handshake whenever it is stale, per §4.6. It holds
// its own mutex because it is invoked from the reader goroutine (via
// nrp.KeepAliveFunc) but reads a period that is fixed at construction.
type keepAlive struct {
	mu     sync.Mutex
	period time.Duration
	last   time.Time
	send   func() error
}

func newKeepAlive(period time.Duration, send func() error) *keepAlive {
	return &keepAlive{period: period, last: time.Now(), send: send}
}

// touch resends the handshake if more than period has elapsed since the
// last send, and records the new timestamp when it does.
func (k *keepAlive) touch() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if time.Since(k.last) <= k.period {
		return nil
	}
	if err := k.send(); err != nil {
		return err
	}
	k.last = time.Now()
	return nil
}

// reset marks the keep-alive as freshly sent, used right after connect.
func (k *keepAlive) reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.last = time.Now()
}
