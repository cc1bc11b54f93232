package klog

import (
	"os"
	"path/filepath"
	"time"
)

// fileSink owns the rotation state: the active file handle and the line
// count within it. Only the consumer goroutine touches a fileSink after
// Start, so none of this needs synchronization.
//
// Files are opened lazily. A sink with no open file opens one on the next
// write; a sink whose line count has reached maxLines closes the old file
// (flushing first) and opens a fresh one. Open and write failures drop the
// line and leave the sink in the no-file state so the next write retries.
type fileSink struct {
	directory string
	name      string
	extension string
	maxLines  int64

	// disabled marks console-only mode, entered when the log directory
	// could not be created at configuration time.
	disabled bool

	file      *os.File
	lineCount int64
	buf       []byte
}

// write appends one line, rotating first when required. wrote reports
// whether the line landed; rotated reports whether a new file was opened.
func (s *fileSink) write(line []byte) (wrote bool, rotated bool, err error) {
	if s.disabled {
		return false, false, nil
	}

	if s.file == nil || s.lineCount >= s.maxLines {
		if err = s.rotate(); err != nil {
			return false, false, err
		}
		rotated = true
	}

	s.buf = append(s.buf[:0], line...)
	s.buf = append(s.buf, '\n')

	if _, werr := s.file.Write(s.buf); werr != nil {
		// Drop this line and force a reopen on the next write; the handle
		// may be beyond recovery (disk full, revoked permissions).
		name := s.file.Name()
		_ = s.file.Close()
		s.file = nil
		return false, rotated, fmtErrorf("failed to write to log file '%s': %w", name, werr)
	}

	s.lineCount++
	return true, rotated, nil
}

// rotate flushes and closes the active file, then opens a new timestamped
// one. On open failure the sink stays in the no-file state. The line count
// resets exactly when a new file is opened.
func (s *fileSink) rotate() error {
	if s.file != nil {
		_ = s.file.Sync()
		_ = s.file.Close()
		s.file = nil
	}

	path := filepath.Join(s.directory, rotationFileName(s.name, s.extension, time.Now()))
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmtErrorf("failed to open log file '%s': %w", path, err)
	}

	s.file = file
	s.lineCount = 0
	return nil
}

// sync flushes the active file buffer to disk.
func (s *fileSink) sync() error {
	if s.file == nil {
		return nil
	}
	if err := s.file.Sync(); err != nil {
		return fmtErrorf("failed to sync log file '%s': %w", s.file.Name(), err)
	}
	return nil
}

// close flushes and closes the active file. Safe to call with no file open.
func (s *fileSink) close() error {
	if s.file == nil {
		return nil
	}

	var finalErr error
	if err := s.file.Sync(); err != nil {
		finalErr = fmtErrorf("failed to sync log file '%s' during shutdown: %w", s.file.Name(), err)
	}
	if err := s.file.Close(); err != nil {
		closeErr := fmtErrorf("failed to close log file '%s' during shutdown: %w", s.file.Name(), err)
		finalErr = combineErrors(finalErr, closeErr)
	}
	s.file = nil
	return finalErr
}
