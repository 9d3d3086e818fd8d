// Package mmapbuf provides a file-backed, memory-mapped byte buffer with a
// fixed byte order. All multi-byte reads performed through the buffer honour
// that order, so callers never deal with byte swapping themselves.
package mmapbuf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/lunixbochs/struc"
)

// Mode selects whether the mapping may be written through.
type Mode int

const (
	ReadOnly Mode = iota
	ReadWrite
)

var (
	// ErrInvalidOffset is returned when a read or write would fall outside
	// the mapped region.
	ErrInvalidOffset = errors.New("offset out of mapped range")

	// ErrNotMutable is returned by mutating operations on a buffer opened
	// in [ReadOnly] mode.
	ErrNotMutable = errors.New("buffer is not mapped writable")
)

// Buffer is a memory-mapped view of an entire file. The zero value is not
// usable; create one with [Open].
type Buffer struct {
	file  *os.File
	data  mmap.MMap
	order binary.ByteOrder
	mode  Mode
}

// Open maps the whole of the file at path. [ReadWrite] gives a private
// copy-on-write mapping: writes land in the mapping only and the backing
// file is never touched, so edits go nowhere until [Buffer.PersistTo].
// [ReadOnly] gives an immutable view.
func Open(path string, order binary.ByteOrder, mode Mode) (*Buffer, error) {
	prot := mmap.RDONLY
	if mode == ReadWrite {
		prot = mmap.COPY
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open '%s': %w", path, err)
	}

	data, err := mmap.Map(f, prot, 0)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to map '%s': %w", path, err)
	}

	return &Buffer{
		file:  f,
		data:  data,
		order: order,
		mode:  mode,
	}, nil
}

// Len returns the length of the mapped region in bytes.
func (b *Buffer) Len() uint64 {
	return uint64(len(b.data))
}

// Order returns the byte order applied to multi-byte reads.
func (b *Buffer) Order() binary.ByteOrder {
	return b.order
}

// Writable reports whether the mapping was opened in [ReadWrite] mode.
func (b *Buffer) Writable() bool {
	return b.mode == ReadWrite
}

// Bytes returns the full mapped region. The slice aliases the mapping and is
// invalidated by [Buffer.Close].
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Slice returns the sub-range [off, off+size) of the mapping. The slice
// aliases the mapping and is invalidated by [Buffer.Close].
func (b *Buffer) Slice(off, size uint64) ([]byte, error) {
	if off+size < off || off+size > uint64(len(b.data)) {
		return nil, fmt.Errorf("slice [%d, %d): %w", off, off+size, ErrInvalidOffset)
	}

	return b.data[off : off+size], nil
}

// ReadRecord decodes the fixed-layout struct pointed to by v from the mapping
// at off, swapping every scalar field into native order as needed.
func (b *Buffer) ReadRecord(off uint64, v interface{}) error {
	if off > uint64(len(b.data)) {
		return fmt.Errorf("record at %d: %w", off, ErrInvalidOffset)
	}

	// The record types decoded here are flat fixed-width integers, so the
	// only way an unpack can fail is running out of mapped bytes.
	r := bytes.NewReader(b.data[off:])
	if err := struc.UnpackWithOptions(r, v, &struc.Options{Order: b.order}); err != nil {
		return fmt.Errorf("failed to decode record at %d (%v): %w", off, err, ErrInvalidOffset)
	}

	return nil
}

// WriteBytes copies p into the mapping at off. The buffer must have been
// opened in [ReadWrite] mode.
func (b *Buffer) WriteBytes(p []byte, off uint64) error {
	if b.mode != ReadWrite {
		return ErrNotMutable
	}

	end := off + uint64(len(p))
	if end < off || end > uint64(len(b.data)) {
		return fmt.Errorf("write [%d, %d): %w", off, end, ErrInvalidOffset)
	}

	copy(b.data[off:end], p)

	return nil
}

// PersistTo writes the current contents of the mapping verbatim to a new file
// at path. The mapped file itself is left untouched.
func (b *Buffer) PersistTo(path string) error {
	if b.mode != ReadWrite {
		return ErrNotMutable
	}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("could not create '%s': %w", path, err)
	}

	if _, err := out.Write(b.data); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write buffer to '%s': %w", path, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close '%s': %w", path, err)
	}

	return nil
}

// Close unmaps the region and releases the file handle. Slices previously
// returned by the buffer must not be used afterwards.
func (b *Buffer) Close() error {
	err := b.data.Unmap()
	if cerr := b.file.Close(); err == nil {
		err = cerr
	}

	return err
}
