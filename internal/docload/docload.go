// Package docload loads a document's text for Parse, memory-mapping
// regular files on unix the way the teacher's scanner.ScanFile maps a
// scan target: this keeps a large corpus/document off the Go heap instead
// of copying it in with os.ReadFile. Falls back to os.ReadFile for
// non-regular or empty files and when mmap fails.
package docload

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/extractly/duckling/internal/xlog"
)

// mapping is a live mmap region; Close munmaps it. The zero value is not
// usable; construct one only via File.
type mapping struct {
	data []byte
}

func (m *mapping) Close() error {
	if m == nil || m.data == nil {
		return nil
	}
	return unix.Munmap(m.data)
}

// File reads path's contents for parsing, memory-mapping regular
// non-empty files and falling back to a plain read otherwise (zero-length
// files, pipes, mmap failures). The returned closer must be Closed once
// the caller is done referencing the returned string's bytes; for the
// os.ReadFile fallback, Close is a no-op.
func File(path string) (text string, closer func() error, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return "", nil, err
	}

	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", nil, err
		}
		return string(data), func() error { return nil }, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		xlog.Warningf("mmap failed for %s, falling back to ReadFile: %v", path, err)
		raw, rerr := os.ReadFile(path)
		if rerr != nil {
			return "", nil, rerr
		}
		return string(raw), func() error { return nil }, nil
	}

	m := &mapping{data: data}
	return unsafe.String(&data[0], len(data)), m.Close, nil
}
