package diagfmt

import (
	"fmt"

	"callop/internal/source"
)

func formatFilePath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath(source.PathAbsolute, "")
	case PathModeRelative:
		return f.FormatPath(source.PathRelative, fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath(source.PathBasename, "")
	default:
		return f.FormatPath(source.PathAuto, "")
	}
}

func formatSpan(sp source.Span, fs *source.FileSet) string {
	if fs == nil {
		return fmt.Sprintf("%d..%d", sp.Start, sp.End)
	}
	start, end := fs.Resolve(sp)
	if start.Line == end.Line {
		return fmt.Sprintf("%d:%d-%d", start.Line, start.Col, end.Col)
	}
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}
