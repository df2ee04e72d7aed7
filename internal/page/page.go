// Package page holds the product list view: its load task and its view state.
package page

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fairyhunter13/product-list-ui/internal/catalog"
	"github.com/fairyhunter13/product-list-ui/internal/model"
)

// Loader fetches the product collection. *catalog.Client satisfies it.
type Loader interface {
	List(ctx context.Context) (model.Collection, error)
}

// Status is the tag of a page's load state.
type Status int

const (
	NotStarted Status = iota
	Loading
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a snapshot of the page. Products is only replaced wholesale, so a failed load
// keeps whatever the page held before (empty on the first load).
type State struct {
	Status   Status
	Products model.Collection
	FailKind catalog.Kind
}

// Page owns one product collection for the duration of its mounted lifetime.
type Page struct {
	loader Loader
	log    *slog.Logger

	mountOnce sync.Once
	done      chan struct{}

	mu        sync.Mutex
	state     State
	cancel    context.CancelFunc
	unmounted bool
}

// New returns an unmounted page. Failures are reported to logger.
func New(loader Loader, logger *slog.Logger) *Page {
	return &Page{
		loader: loader,
		log:    logger,
		done:   make(chan struct{}),
		state:  State{Status: NotStarted, Products: model.Collection{}},
	}
}

// Mount starts the load task. Only the first call has an effect, and a page that was already
// unmounted never starts loading.
func (p *Page) Mount(ctx context.Context) {
	p.mountOnce.Do(func() {
		p.mu.Lock()
		if p.unmounted {
			p.mu.Unlock()
			close(p.done)
			return
		}
		ctx, cancel := context.WithCancel(ctx)
		p.cancel = cancel
		p.state.Status = Loading
		p.mu.Unlock()
		go p.load(ctx)
	})
}

func (p *Page) load(ctx context.Context) {
	defer close(p.done)
	products, err := p.loader.List(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.unmounted {
		p.log.Debug("products_fetch_discarded", "reason", "unmounted")
		return
	}
	if err != nil {
		kind := catalog.KindOf(err)
		p.state.Status = Failed
		p.state.FailKind = kind
		p.log.Error("products_fetch_failed", "kind", kind.String(), "error", err)
		return
	}
	p.state = State{Status: Loaded, Products: products}
}

// Unmount cancels an in-flight load. Results arriving afterwards are dropped.
func (p *Page) Unmount() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unmounted = true
	if p.cancel != nil {
		p.cancel()
	}
}

// Snapshot returns the current state.
func (p *Page) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.state
	s.Products = append(model.Collection(nil), p.state.Products...)
	if s.Products == nil {
		s.Products = model.Collection{}
	}
	return s
}

// Wait blocks until the load task has finished or ctx is done, then returns the state.
// On a page that was never mounted it returns immediately.
func (p *Page) Wait(ctx context.Context) State {
	p.mu.Lock()
	started := p.cancel != nil
	p.mu.Unlock()
	if started {
		select {
		case <-p.done:
		case <-ctx.Done():
		}
	}
	return p.Snapshot()
}
