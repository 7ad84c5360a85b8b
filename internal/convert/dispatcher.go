package convert

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Dispatch runs backend over all pages of the document at path, splitting the
// index space across up to workers concurrent units and reassembling the
// per-range results in page order. Completion order is irrelevant: each result
// lands in the slot of its originating range, so the output is deterministic
// for a given document regardless of worker timing.
//
// A zero-page document yields an empty string with no units dispatched. With a
// single worker (or a single page) the backend runs synchronously over the
// full range. Any unit failure cancels the remaining units and surfaces that
// unit's error; no partial text is ever returned. Cancelling ctx aborts the
// dispatch with the context's error.
func Dispatch(ctx context.Context, path string, totalPages int, p Params, workers int, backend Backend) (string, error) {
	if totalPages <= 0 {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if workers <= 1 || totalPages == 1 {
		full := PageRange{Start: 0, End: totalPages}
		text, err := backend.Extract(ctx, path, full, p)
		if err != nil {
			return "", wrapExtraction(backend, full, err)
		}
		return backend.Join([]string{text}), nil
	}

	ranges := Partition(totalPages, workers)
	chunks := make([]string, len(ranges))

	// One goroutine per range, not per worker: Partition may return fewer
	// ranges than workers for short documents.
	g, gctx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		g.Go(func() error {
			text, err := backend.Extract(gctx, path, r, p)
			if err != nil {
				return wrapExtraction(backend, r, err)
			}
			chunks[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			// The caller interrupted the run; report cancellation rather
			// than whichever unit error the group surfaced first.
			return "", ctx.Err()
		}
		return "", err
	}

	return backend.Join(chunks), nil
}
