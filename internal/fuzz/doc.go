// Package fuzztests houses Go fuzz harnesses that exercise the front-end
// pipeline (source -> lexer -> parser -> desugar). Its goal is to smoke
// test robustness and guard against panics or hangs on arbitrary inputs.
package fuzztests
