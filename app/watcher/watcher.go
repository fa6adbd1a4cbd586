// Package watcher implements the supplier-side order poller: a timer-driven
// component that detects new orders exactly once, guards list replacement
// against no-op refreshes, and drives banner/sound/unread alert state.
//
// A Watcher is an explicit instance owned by the active view (dashboard
// session, CLI process). It holds no global state: construct it when the
// view becomes active and Stop() it on every teardown path.
package watcher

import (
	"log/slog"
	"sync"
	"time"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/pkg/metrics"
)

// Fetcher returns the supplier's current order set. It is the only
// suspension point of a poll cycle.
type Fetcher func() ([]models.Order, error)

// Notifier receives alert output for newly detected orders.
type Notifier interface {
	// Banner shows a transient, auto-dismissing notice for new orders.
	Banner(orders []models.Order)
	// Sound plays the new-order chime.
	Sound()
}

// PrefStore persists the sound preference across reloads. Everything else
// in the watcher is session-local and intentionally lost on teardown.
type PrefStore interface {
	SoundEnabled(supplierID uint) bool
	SetSoundEnabled(supplierID uint, enabled bool) error
}

// Watcher polls for a single supplier. Cycles never overlap: one goroutine
// runs them sequentially off a ticker.
type Watcher struct {
	supplierID uint
	fetch      Fetcher
	notifier   Notifier
	prefs      PrefStore
	interval   time.Duration
	log        *slog.Logger

	// onReplace receives the fetched list, but only when it differs from
	// the previous snapshot in count, membership, or some order's status.
	onReplace func([]models.Order)

	mu        sync.Mutex
	orders    []models.Order
	statuses  map[uint]models.OrderStatus
	alerted   map[uint]struct{}
	unread    int
	panelOpen bool
	started   bool

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithOnReplace sets the list sink invoked when the snapshot changes.
func WithOnReplace(fn func([]models.Order)) Option {
	return func(w *Watcher) { w.onReplace = fn }
}

// WithLogger overrides the watcher's logger.
func WithLogger(log *slog.Logger) Option {
	return func(w *Watcher) { w.log = log }
}

// New builds a watcher for one supplier. fetch, notifier and prefs are
// required; interval must be positive.
func New(supplierID uint, fetch Fetcher, notifier Notifier, prefs PrefStore, interval time.Duration, opts ...Option) *Watcher {
	if fetch == nil || notifier == nil || prefs == nil || interval <= 0 {
		panic("watcher: missing fetch, notifier, prefs, or positive interval")
	}

	w := &Watcher{
		supplierID: supplierID,
		fetch:      fetch,
		notifier:   notifier,
		prefs:      prefs,
		interval:   interval,
		log:        slog.Default(),
		statuses:   make(map[uint]models.OrderStatus),
		alerted:    make(map[uint]struct{}),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start runs the poll loop in its own goroutine: one immediate cycle, then
// one per interval tick until Stop.
func (w *Watcher) Start() {
	w.mu.Lock()
	w.started = true
	w.mu.Unlock()

	go func() {
		defer close(w.done)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.Poll()
		for {
			select {
			case <-w.stop:
				return
			case <-ticker.C:
				w.Poll()
			}
		}
	}()
}

// Stop halts the poll loop and releases the ticker. Safe to call from any
// teardown path, any number of times, including before Start.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })

	// done is only ever closed by the poll goroutine; waiting on it without
	// one running would block forever.
	w.mu.Lock()
	started := w.started
	w.mu.Unlock()
	if started {
		<-w.done
	}
}

// Poll runs a single cycle synchronously. Fetch failures are soft: logged,
// counted, and retried next cycle. Accumulated alert state is never
// cleared on a failed cycle.
func (w *Watcher) Poll() {
	orders, err := w.fetch()
	if err != nil {
		metrics.WatcherCycles.WithLabelValues("error").Inc()
		w.log.Warn("watcher: fetch failed", "supplier_id", w.supplierID, "error", err)
		return
	}
	metrics.WatcherCycles.WithLabelValues("ok").Inc()

	w.mu.Lock()

	if w.snapshotChanged(orders) {
		w.orders = orders
		w.statuses = make(map[uint]models.OrderStatus, len(orders))
		for _, o := range orders {
			w.statuses[o.ID] = o.Status
		}
		if w.onReplace != nil {
			w.onReplace(orders)
		}
	}

	// An order is alerted at most once per watcher lifetime: the id joins
	// the alerted set the moment it is detected.
	var newly []models.Order
	for _, o := range orders {
		if o.Status != models.StatusNovo {
			continue
		}
		if _, seen := w.alerted[o.ID]; seen {
			continue
		}
		w.alerted[o.ID] = struct{}{}
		newly = append(newly, o)
	}

	if len(newly) > 0 && !w.panelOpen {
		w.unread += len(newly)
	}
	w.mu.Unlock()

	if len(newly) == 0 {
		return
	}

	metrics.WatcherAlerts.Add(float64(len(newly)))
	w.notifier.Banner(newly)
	if w.prefs.SoundEnabled(w.supplierID) {
		w.notifier.Sound()
	}
}

// snapshotChanged reports whether the fetched set differs from the held one
// in count, membership, or any order's status. Callers hold w.mu.
func (w *Watcher) snapshotChanged(fetched []models.Order) bool {
	if len(fetched) != len(w.orders) {
		return true
	}
	for _, o := range fetched {
		prev, ok := w.statuses[o.ID]
		if !ok || prev != o.Status {
			return true
		}
	}
	return false
}

// OpenPanel marks the notification panel open and resets the unread counter
// to zero. Opening the panel is the explicit mark-as-read action.
func (w *Watcher) OpenPanel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.panelOpen = true
	w.unread = 0
}

// ClosePanel marks the panel closed; subsequent alerts count as unread again.
func (w *Watcher) ClosePanel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.panelOpen = false
}

// Unread returns the current unread alert count.
func (w *Watcher) Unread() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.unread
}

// Orders returns the last accepted snapshot.
func (w *Watcher) Orders() []models.Order {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]models.Order, len(w.orders))
	copy(out, w.orders)
	return out
}

// SoundEnabled reads the persisted sound preference.
func (w *Watcher) SoundEnabled() bool {
	return w.prefs.SoundEnabled(w.supplierID)
}

// SetSoundEnabled persists the sound preference.
func (w *Watcher) SetSoundEnabled(enabled bool) error {
	return w.prefs.SetSoundEnabled(w.supplierID, enabled)
}
