package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) inside a single file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

// Detached reports whether the span belongs to no file. Detached spans
// carry no source context and must not be resolved against a FileSet.
func (s Span) Detached() bool {
	return s.File == NoFile
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover expands the span to include other. Spans from different files
// are left untouched.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// After returns an empty span positioned immediately past s.
// Useful for "expected X after Y" diagnostics at end of input.
func (s Span) After() Span {
	return Span{File: s.File, Start: s.End, End: s.End}
}
