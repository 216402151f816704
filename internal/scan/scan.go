// internal/scan/scan.go

// Package scan reads candidate lines into owned buffers.
package scan

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// EachLine calls visit once per input line with an owned copy, line
// terminators (\n, \r\n) stripped. Line length is bounded only by memory;
// partial reads are accumulated until the terminator arrives. The copy is
// never reused by the reader, so visit may hand it off to another
// goroutine. Returns the first error from visit or from the underlying
// reader.
func EachLine(r io.Reader, visit func(line string) error) error {
	br := bufio.NewReaderSize(r, 64*1024)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if verr := visit(line); verr != nil {
				return verr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
}
