// internal/textin/open.go
package textin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encodings accepted by LookupEncoding, in help-text order.
var Encodings = []string{"utf-8", "windows-1252", "latin1"}

// LookupEncoding maps a user-facing charset name to a decoder.
// UTF-8 input has a leading byte-order mark stripped.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q (want %s)", name, strings.Join(Encodings, " | "))
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a UTF-8 reader over path. "-" reads stdin. Gzip input is
// detected by magic number (1F 8B) or by a .gz suffix.
func Open(path, charset string) (io.ReadCloser, error) {
	enc, err := LookupEncoding(charset)
	if err != nil {
		return nil, err
	}

	var src io.ReadCloser
	if path == "-" {
		src = io.NopCloser(os.Stdin)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src = fh
	}

	br := bufio.NewReader(src)
	sig, err := br.Peek(2)
	if err != nil && err != io.EOF {
		_ = src.Close()
		return nil, err
	}
	closers := []io.Closer{src}
	var r io.Reader = br
	if (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := pgzip.NewReader(br)
		if err != nil {
			_ = src.Close()
			return nil, err
		}
		closers = []io.Closer{gr, src}
		r = gr
	}
	return &multiReadCloser{
		Reader:  transform.NewReader(r, enc.NewDecoder()),
		closers: closers,
	}, nil
}
