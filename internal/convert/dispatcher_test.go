package convert

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markerBackend produces a distinguishable marker per page so tests can verify
// the reassembly order byte for byte.
type markerBackend struct {
	pages        int
	extractCalls atomic.Int32

	// failPage, when >= 0, fails any unit whose range contains that page.
	failPage int
	// block, when set, parks Extract until the context is cancelled.
	block bool
}

func newMarkerBackend(pages int) *markerBackend {
	return &markerBackend{pages: pages, failPage: -1}
}

func (b *markerBackend) Name() string { return "marker" }

func (b *markerBackend) PageCount(_ context.Context, _ string, _ Params) (int, error) {
	return b.pages, nil
}

func (b *markerBackend) Extract(ctx context.Context, _ string, r PageRange, _ Params) (string, error) {
	b.extractCalls.Add(1)
	if b.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	var sb strings.Builder
	for _, p := range r.Pages() {
		if p == b.failPage {
			return "", fmt.Errorf("corrupt page %d", p)
		}
		fmt.Fprintf(&sb, "[p%d]", p)
	}
	return sb.String(), nil
}

func (b *markerBackend) Join(chunks []string) string {
	return strings.Join(chunks, "")
}

func TestDispatchOrderingInvariant(t *testing.T) {
	for _, pages := range []int{1, 2, 5, 11, 32} {
		t.Run(fmt.Sprintf("%d_pages", pages), func(t *testing.T) {
			sequential, err := Dispatch(context.Background(), "doc.pdf", pages, Params{}, 1, newMarkerBackend(pages))
			require.NoError(t, err)

			parallel, err := Dispatch(context.Background(), "doc.pdf", pages, Params{}, 4, newMarkerBackend(pages))
			require.NoError(t, err)

			assert.Equal(t, sequential, parallel, "output must not depend on worker count")
		})
	}
}

func TestDispatchSingleWorkerEquivalence(t *testing.T) {
	const pages = 9

	one, err := Dispatch(context.Background(), "doc.pdf", pages, Params{}, 0, newMarkerBackend(pages))
	require.NoError(t, err)

	max, err := Dispatch(context.Background(), "doc.pdf", pages, Params{}, pages, newMarkerBackend(pages))
	require.NoError(t, err)

	assert.Equal(t, one, max)
}

func TestDispatchEmptyDocument(t *testing.T) {
	backend := newMarkerBackend(0)
	text, err := Dispatch(context.Background(), "doc.pdf", 0, Params{}, 4, backend)
	require.NoError(t, err)
	assert.Empty(t, text)
	assert.Zero(t, backend.extractCalls.Load(), "no units may be dispatched for an empty document")
}

func TestDispatchPoolSizedToRanges(t *testing.T) {
	// 3 pages split across 8 requested workers must spawn exactly 3 units.
	backend := newMarkerBackend(3)
	text, err := Dispatch(context.Background(), "doc.pdf", 3, Params{}, 8, backend)
	require.NoError(t, err)
	assert.Equal(t, "[p0][p1][p2]", text)
	assert.Equal(t, int32(3), backend.extractCalls.Load())
}

func TestDispatchFailurePropagation(t *testing.T) {
	backend := newMarkerBackend(12)
	backend.failPage = 7

	text, err := Dispatch(context.Background(), "doc.pdf", 12, Params{}, 4, backend)
	require.Error(t, err)
	assert.Empty(t, text, "a failed dispatch must not return partial text")

	var ee *ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "marker", ee.Backend)
	assert.LessOrEqual(t, ee.Range.Start, 7)
	assert.Greater(t, ee.Range.End, 7)
	assert.False(t, IsCanceled(err))
}

func TestDispatchCancellation(t *testing.T) {
	backend := newMarkerBackend(8)
	backend.block = true

	ctx, cancel := context.WithCancel(context.Background())

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := Dispatch(ctx, "doc.pdf", 8, Params{}, 4, backend)
		done <- result{text, err}
	}()

	// Let the units start blocking, then interrupt.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case res := <-done:
		require.Error(t, res.err)
		assert.True(t, IsCanceled(res.err), "interrupt must surface as cancellation, got %v", res.err)
		assert.True(t, errors.Is(res.err, context.Canceled))
		assert.Empty(t, res.text)
	case <-time.After(5 * time.Second):
		t.Fatal("dispatch did not return after cancellation")
	}
}

func TestDispatchPreCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	backend := newMarkerBackend(4)
	_, err := Dispatch(ctx, "doc.pdf", 4, Params{}, 2, backend)
	require.Error(t, err)
	assert.True(t, IsCanceled(err))
	assert.Zero(t, backend.extractCalls.Load())
}
