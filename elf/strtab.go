package elf

import (
	"bytes"
	"fmt"
)

// readCString reads the NUL-terminated string at off in a string table. A
// table may legally end without a terminator; the string then runs to the
// end of the table.
func readCString(table []byte, off uint64) (string, error) {
	if off >= uint64(len(table)) {
		return "", fmt.Errorf("offset %d in table of %d bytes: %w", off, len(table), ErrInvalidNameOffset)
	}

	rest := table[off:]
	if end := bytes.IndexByte(rest, 0); end >= 0 {
		rest = rest[:end]
	}

	return string(rest), nil
}
