// Package container locates a single embedded document inside a zip-packaged
// instrument export (EDS) and hands it out as a stream.
package container

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// Member name suffixes of the documents read from an EDS archive.
const (
	MulticomponentSuffix = "multicomponentdata.xml"
	PlateSetupSuffix     = "plate_setup.xml"
)

// ArchiveOpenError reports a path that is not a readable zip archive.
type ArchiveOpenError struct {
	Path string
	Err  error
}

func (e *ArchiveOpenError) Error() string {
	return fmt.Sprintf("failed to open EDS file %q", e.Path)
}

func (e *ArchiveOpenError) Unwrap() error { return e.Err }

// MemberNotFoundError reports an archive without a member ending in Suffix.
// Content names what the member holds ("multicomponent", "plate_setup").
type MemberNotFoundError struct {
	Path    string
	Suffix  string
	Content string
}

func (e *MemberNotFoundError) Error() string {
	return fmt.Sprintf("%s XML data not present", e.Content)
}

// Member is an open archive member. Close releases both the member and the
// archive that holds it.
type Member struct {
	Name string

	rc      io.ReadCloser
	archive *zip.ReadCloser
}

func (m *Member) Read(p []byte) (int, error) { return m.rc.Read(p) }

func (m *Member) Close() error {
	err := m.rc.Close()
	if cerr := m.archive.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Open scans the archive's members in stored order and opens the first one
// whose name ends with suffix.
func Open(path, suffix, content string) (*Member, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ArchiveOpenError{Path: path, Err: err}
	}
	for _, f := range zr.File {
		if !strings.HasSuffix(f.Name, suffix) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			_ = zr.Close()
			return nil, &ArchiveOpenError{Path: path, Err: err}
		}
		return &Member{Name: f.Name, rc: rc, archive: zr}, nil
	}
	_ = zr.Close()
	return nil, &MemberNotFoundError{Path: path, Suffix: suffix, Content: content}
}

// With opens the member, passes it to fn and closes the archive afterwards,
// whether or not fn succeeded.
func With(path, suffix, content string, fn func(io.Reader) error) (err error) {
	m, err := Open(path, suffix, content)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil && err == nil {
			err = &ArchiveOpenError{Path: path, Err: cerr}
		}
	}()
	return fn(m)
}
