package convert

import "context"

// Params carries the extraction settings shared by every work unit of one
// conversion. Values are read-only once a conversion starts.
type Params struct {
	// Password unlocks encrypted documents for the text-layer reader.
	Password string
	// Language selects the recognition language set, e.g. "eng" or "eng+hin".
	Language string
	// ToolPath overrides the location of the external recognition executable.
	ToolPath string
}

// Backend extracts text for contiguous page ranges of a document.
// Implementations must be safe for concurrent use: every Extract call opens
// its own document handle and releases it before returning, so no handle is
// ever shared between workers.
type Backend interface {
	Name() string

	// PageCount reports the document's total page count using the same
	// library the backend extracts with.
	PageCount(ctx context.Context, path string, p Params) (int, error)

	// Extract returns the text of exactly the pages in r, in index order.
	Extract(ctx context.Context, path string, r PageRange, p Params) (string, error)

	// Join concatenates per-range chunks, given in ascending range order,
	// using the backend's own boundary semantics.
	Join(chunks []string) string
}
