package klog

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/fatih/color"
)

// consoleSink writes one colored line per entry. INFO and WARNING go to the
// standard output stream, ERROR to standard error; the color package appends
// the ANSI reset. Write failures are ignored: console loss must never
// disturb the pipeline.
type consoleSink struct {
	out atomic.Value // stores *sink
	err atomic.Value // stores *sink

	info    *color.Color
	warning *color.Color
	errlvl  *color.Color
}

// sink wraps an io.Writer so atomic.Value always stores one concrete type.
type sink struct {
	w io.Writer
}

func newConsoleSink(cfg *Config) *consoleSink {
	s := &consoleSink{
		info:    color.New(color.FgHiGreen),
		warning: color.New(color.FgHiYellow),
		errlvl:  color.New(color.FgHiRed),
	}

	// enable_color=true leaves the color package's TTY/NO_COLOR detection in
	// charge; false forces plain output.
	if !cfg.EnableColor {
		s.info.DisableColor()
		s.warning.DisableColor()
		s.errlvl.DisableColor()
	}

	if cfg.EnableConsole {
		s.out.Store(&sink{w: os.Stdout})
		s.err.Store(&sink{w: os.Stderr})
	} else {
		s.out.Store(&sink{w: io.Discard})
		s.err.Store(&sink{w: io.Discard})
	}

	return s
}

// write emits one line to the stream matching the level.
func (s *consoleSink) write(level int64, line []byte) {
	var c *color.Color
	var w io.Writer

	switch level {
	case LevelError:
		c = s.errlvl
		w = s.err.Load().(*sink).w
	case LevelWarning:
		c = s.warning
		w = s.out.Load().(*sink).w
	default:
		c = s.info
		w = s.out.Load().(*sink).w
	}

	_, _ = c.Fprintln(w, string(line))
}

// setWriters swaps the target streams; used by tests to capture output.
func (s *consoleSink) setWriters(out, err io.Writer) {
	s.out.Store(&sink{w: out})
	s.err.Store(&sink{w: err})
}
