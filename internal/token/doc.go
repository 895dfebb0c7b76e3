// Package token defines lexical token kinds and trivia for the callop front-end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies), except
//     identifiers, which may be NFC-normalized by the lexer.
//   - Token.Span matches the consumed bytes exactly (Start..End).
//   - CallOp covers the exact contiguous sequence "::(" as one token; the
//     lexer never forms it across whitespace.
//   - "::" without a trailing "(" is ColonColon (the bind-this token, kept
//     distinct so both proposals can coexist in the grammar).
//   - Comments never appear in the main token stream; they are leading trivia.
package token
