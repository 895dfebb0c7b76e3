package fuzztests

import "testing"

const maxFuzzInput = 1 << 16 // 64 KiB

var languageSeeds = []string{
	"",
	"f::(recv);",
	"f::(recv, a, b,);",
	"f::(a)::(b);",
	"f:: (a);",
	"f::();",
	"f::x;",
	"obj.method::(obj, ...args);",
	"let x = a + b * c;",
	"const y = cond ? f::(r) : g::(r);",
	"a?.b?.(c);",
	"a?.5:b;",
	"[1, 2, ...rest,];",
	"\"unterminated",
	"/* open comment",
	"0x 1e+ .5e3;",
	"f::(recv",
	"::(",
	"::::((",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range languageSeeds {
		f.Add([]byte(seed))
	}
}

func clampSeed(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
