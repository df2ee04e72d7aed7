package page

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/product-list-ui/internal/catalog"
	"github.com/fairyhunter13/product-list-ui/internal/model"
	"github.com/fairyhunter13/product-list-ui/internal/render"
)

// recordingHandler keeps every log record so tests can count diagnostics.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}
func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) count(level slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level == level {
			n++
		}
	}
	return n
}

type loaderFunc func(ctx context.Context) (model.Collection, error)

func (f loaderFunc) List(ctx context.Context) (model.Collection, error) { return f(ctx) }

func newPage(t *testing.T, l Loader) (*Page, *recordingHandler) {
	t.Helper()
	h := &recordingHandler{}
	return New(l, slog.New(h)), h
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

var ball = model.Product{ID: 1, Name: "Ball", Description: "Bouncy", Price: 4.5, CreatedAt: "2024-03-01T00:00:00Z"}

func TestPage_InitialState(t *testing.T) {
	p, _ := newPage(t, loaderFunc(func(context.Context) (model.Collection, error) { return nil, nil }))
	s := p.Wait(context.Background())
	assert.Equal(t, NotStarted, s.Status)
	assert.NotNil(t, s.Products)
	assert.Empty(t, s.Products)
}

func TestPage_MountLoadsOnce(t *testing.T) {
	var calls atomic.Int32
	p, logs := newPage(t, loaderFunc(func(context.Context) (model.Collection, error) {
		calls.Add(1)
		return model.Collection{ball}, nil
	}))
	p.Mount(context.Background())
	p.Mount(context.Background())
	s := p.Wait(waitCtx(t))
	p.Mount(context.Background())

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, Loaded, s.Status)
	assert.Equal(t, model.Collection{ball}, s.Products)
	assert.Zero(t, logs.count(slog.LevelError))

	v, err := View(s, render.NewLocaleResolver("en-US").Default())
	require.NoError(t, err)
	require.Len(t, v.Cards, 1)
	assert.Equal(t, render.Card{Key: "1", Name: "Ball", Description: "Bouncy", PriceText: "$4.50", DateText: "3/1/2024"}, v.Cards[0])
	assert.Empty(t, v.Notice)
}

func TestPage_FailureKeepsCollectionAndReportsOnce(t *testing.T) {
	netErr := &catalog.FetchError{Kind: catalog.KindNetwork, Err: errors.New("connection refused")}
	p, logs := newPage(t, loaderFunc(func(context.Context) (model.Collection, error) { return nil, netErr }))
	p.Mount(context.Background())
	s := p.Wait(waitCtx(t))

	assert.Equal(t, Failed, s.Status)
	assert.Equal(t, catalog.KindNetwork, s.FailKind)
	assert.Empty(t, s.Products)
	assert.Equal(t, 1, logs.count(slog.LevelError))

	v, err := View(s, render.NewLocaleResolver("en-US").Default())
	require.NoError(t, err)
	assert.Empty(t, v.Cards)
	assert.Equal(t, noticeFailed, v.Notice)
}

func TestPage_UnmountDropsLateResponse(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	p, logs := newPage(t, loaderFunc(func(ctx context.Context) (model.Collection, error) {
		close(started)
		<-release
		// Ignores ctx on purpose to model a response that arrives after teardown.
		return model.Collection{ball}, nil
	}))
	p.Mount(context.Background())
	<-started
	assert.Equal(t, Loading, p.Snapshot().Status)

	p.Unmount()
	close(release)
	s := p.Wait(waitCtx(t))

	assert.Equal(t, Loading, s.Status)
	assert.Empty(t, s.Products)
	assert.Zero(t, logs.count(slog.LevelError))
}

func TestPage_UnmountCancelsLoad(t *testing.T) {
	p, logs := newPage(t, loaderFunc(func(ctx context.Context) (model.Collection, error) {
		<-ctx.Done()
		return nil, &catalog.FetchError{Kind: catalog.KindNetwork, Err: ctx.Err()}
	}))
	p.Mount(context.Background())
	p.Unmount()
	s := p.Wait(waitCtx(t))
	assert.NotEqual(t, Failed, s.Status)
	assert.Zero(t, logs.count(slog.LevelError))
}

func TestPage_UnmountBeforeMount(t *testing.T) {
	var calls atomic.Int32
	p, _ := newPage(t, loaderFunc(func(context.Context) (model.Collection, error) {
		calls.Add(1)
		return nil, nil
	}))
	p.Unmount()
	p.Mount(context.Background())
	s := p.Wait(waitCtx(t))
	assert.Equal(t, NotStarted, s.Status)
	assert.Zero(t, calls.Load())
}

func TestView_RejectsMalformedCollection(t *testing.T) {
	s := State{Status: Loaded, Products: model.Collection{ball, ball}}
	_, err := View(s, render.NewLocaleResolver("en-US").Default())
	assert.Error(t, err)
}
