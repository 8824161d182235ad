package utils

import (
	"io"
	"sync"
)

// FlushingWriter makes buffered output visible immediately by flushing the
// wrapped writer after every write when the writer supports flushing.
type FlushingWriter struct {
	underlyingWriter io.Writer
	writeGuard       sync.Mutex
}

// NewFlushingWriter wraps the provided writer; nil writers and already wrapped writers pass through.
func NewFlushingWriter(writer io.Writer) io.Writer {
	if writer == nil {
		return nil
	}
	if _, alreadyWrapped := writer.(*FlushingWriter); alreadyWrapped {
		return writer
	}
	return &FlushingWriter{underlyingWriter: writer}
}

// Write delegates to the wrapped writer and flushes it when possible.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	flushingWriter.writeGuard.Lock()
	defer flushingWriter.writeGuard.Unlock()

	bytesWritten, writeError := flushingWriter.underlyingWriter.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}

	if flushableWriter, supportsFlush := flushingWriter.underlyingWriter.(interface{ Flush() error }); supportsFlush {
		if flushError := flushableWriter.Flush(); flushError != nil {
			return bytesWritten, flushError
		}
	}

	return bytesWritten, nil
}
