package diag

import (
	"testing"

	"callop/internal/source"
)

func mkDiag(code Code, sev Severity, file source.FileID, start, end uint32) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  code.Title(),
		Primary:  source.Span{File: file, Start: start, End: end},
	}
}

func TestBagCap(t *testing.T) {
	b := NewBag(2)
	if !b.Add(mkDiag(SynUnexpectedToken, SevError, 0, 0, 1)) {
		t.Fatal("first Add should succeed")
	}
	if !b.Add(mkDiag(SynUnexpectedToken, SevError, 0, 1, 2)) {
		t.Fatal("second Add should succeed")
	}
	if b.Add(mkDiag(SynUnexpectedToken, SevError, 0, 2, 3)) {
		t.Error("Add beyond cap should fail")
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

// Caps past 65535 must hold, not wrap to a tiny (or zero) limit.
func TestBagLargeCap(t *testing.T) {
	b := NewBag(1 << 16)
	if b.Cap() != 1<<16 {
		t.Fatalf("Cap() = %d, want %d", b.Cap(), 1<<16)
	}
	if !b.Add(mkDiag(SynUnexpectedToken, SevError, 0, 0, 1)) {
		t.Error("Add under a large cap should succeed")
	}

	if c := NewBag(-1).Cap(); c != 0 {
		t.Errorf("negative max: Cap() = %d, want 0", c)
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	b := NewBag(10)
	if b.HasErrors() || b.HasWarnings() {
		t.Fatal("fresh bag must be clean")
	}

	b.Add(mkDiag(SynInfo, SevInfo, 0, 0, 0))
	if b.HasWarnings() {
		t.Error("info alone should not count as warning")
	}

	b.Add(mkDiag(SynCallOperatorSpace, SevWarning, 0, 0, 1))
	if !b.HasWarnings() || b.HasErrors() {
		t.Error("expected warnings without errors")
	}

	b.Add(mkDiag(SynMissingReceiver, SevError, 0, 2, 3))
	if !b.HasErrors() {
		t.Error("expected errors after adding one")
	}
}

func TestBagSortDeterministic(t *testing.T) {
	b := NewBag(10)
	b.Add(mkDiag(SynUnexpectedToken, SevError, 1, 5, 6))
	b.Add(mkDiag(SynMissingReceiver, SevError, 0, 9, 10))
	b.Add(mkDiag(LexUnknownChar, SevError, 0, 2, 3))
	b.Sort()

	items := b.Items()
	if items[0].Code != LexUnknownChar || items[1].Code != SynMissingReceiver || items[2].Code != SynUnexpectedToken {
		t.Errorf("unexpected order: %v, %v, %v", items[0].Code, items[1].Code, items[2].Code)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(10)
	d := mkDiag(SynMissingReceiver, SevError, 0, 4, 8)
	b.Add(d)
	b.Add(d)
	b.Add(mkDiag(SynMissingReceiver, SevError, 0, 9, 10))
	b.Dedup()
	if b.Len() != 2 {
		t.Errorf("Len() after Dedup = %d, want 2", b.Len())
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(mkDiag(SynInfo, SevInfo, 0, 0, 0))
	other := NewBag(2)
	other.Add(mkDiag(SynUnexpectedToken, SevError, 0, 1, 2))
	other.Add(mkDiag(SynExpectSemicolon, SevError, 0, 3, 4))

	a.Merge(other)
	if a.Len() != 3 {
		t.Errorf("Len() after Merge = %d, want 3", a.Len())
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynMissingReceiver, "SYN2100"},
		{SynUnterminatedCallOperator, "SYN2101"},
		{IOLoadFileError, "IO4000"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range cases {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("Code(%d).ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestReportBuilder(t *testing.T) {
	bag := NewBag(10)
	r := BagReporter{Bag: bag}

	ReportError(r, SynMissingReceiver, source.Span{File: 0, Start: 3, End: 5}, "call operator requires a receiver").
		WithNote(source.Span{File: 0, Start: 0, End: 3}, "callee is here").
		WithFix("insert receiver", FixEdit{Span: source.Span{File: 0, Start: 5, End: 5}, NewText: "this"}).
		Emit()

	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || len(d.Fixes) != 1 {
		t.Errorf("expected 1 note and 1 fix, got %d and %d", len(d.Notes), len(d.Fixes))
	}
}
