// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across JSONL writes to avoid per-call mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Write encodes every item as one JSON line.
// encode converts one value to its wire type and calls enc.Encode.
func Write[T any](out io.Writer, items []T, encode func(*json.Encoder, T) error) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	// Always put back to pool and drop references to 'out'.
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for _, v := range items {
		if err := encode(enc, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
