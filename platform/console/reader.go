package console

import (
	"bufio"
	"context"
	"io"
)

// LineReader turns a blocking io.Reader into lines that can be awaited
// with a context.
type LineReader struct {
	src   io.Reader
	lines chan string
}

func NewLineReader(src io.Reader) *LineReader {
	return &LineReader{
		src:   src,
		lines: make(chan string),
	}
}

// Pump scans src until EOF, a read error or ctx cancellation. It must be
// called exactly once. A Scan blocked on src outlives a cancelled ctx and
// exits with the process.
func (r *LineReader) Pump(ctx context.Context) error {
	scanErr := make(chan error, 1)

	go func() {
		defer close(r.lines)

		sc := bufio.NewScanner(r.src)
		for sc.Scan() {
			select {
			case r.lines <- sc.Text():
			case <-ctx.Done():
				scanErr <- nil
				return
			}
		}
		scanErr <- sc.Err()
	}()

	select {
	case err := <-scanErr:
		return err
	case <-ctx.Done():
		return nil
	}
}

// ReadLine returns the next line without its terminator, or io.EOF once
// the source is exhausted.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}
