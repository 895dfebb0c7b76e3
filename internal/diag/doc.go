// Package diag carries diagnostics between the front-end phases and the
// output formatters.
//
// Phases never print; they report structured Diagnostic values through a
// Reporter. The standard sink is a Bag, which enforces a cap and provides
// deterministic ordering for output. Codes are numeric and grouped by
// phase: LEX 1xxx, SYN 2xxx, IO 4xxx.
package diag
