package stacktrace

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors/errbase"
)

// StackTrace is the type of the data for a call stack.
// This mirrors the type of the same name in [github.com/cockroachdb/errors/errbase.StackTrace].
type StackTrace errbase.StackTrace

// Frame is a resolved program counter.
type Frame struct {
	Function string
	File     string
	Line     int
}

func (f Frame) String() string {
	return fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line)
}

// ParseErrStackTrace extracts the stack trace recorded by a cockroachdb error.
func ParseErrStackTrace(err error) (StackTrace, bool) {
	var provider errbase.StackTraceProvider
	for e := err; e != nil; e = errbase.UnwrapOnce(e) {
		if p, ok := e.(errbase.StackTraceProvider); ok {
			provider = p
		}
	}
	if provider == nil {
		return nil, false
	}
	return StackTrace(provider.StackTrace()), true
}

// Frames resolves the stack, innermost frame first, dropping runtime frames at the bottom.
func (s StackTrace) Frames() []Frame {
	frames := make([]Frame, 0, len(s))
	for _, pc := range s {
		fn := runtime.FuncForPC(uintptr(pc) - 1)
		if fn == nil {
			frames = append(frames, Frame{Function: "unknown"})
			continue
		}
		file, line := fn.FileLine(uintptr(pc) - 1)
		frames = append(frames, Frame{Function: fn.Name(), File: file, Line: line})
	}
	for len(frames) > 0 && strings.HasPrefix(frames[len(frames)-1].Function, "runtime.") {
		frames = frames[:len(frames)-1]
	}
	return frames
}

func (s StackTrace) FramesStrings() []string {
	frames := s.Frames()
	lines := make([]string, len(frames))
	for i, f := range frames {
		lines[i] = f.String()
	}
	return lines
}
