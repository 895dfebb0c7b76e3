package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Ranges are reserved per phase.
type Code uint16

const (
	// UnknownCode is the fallback for unmapped diagnostics.
	UnknownCode Code = 0

	// Lexical (1000-1999)
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Syntax (2000-2999)
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2002
	SynExpectExpression   Code = 2003
	SynExpectIdentifier   Code = 2004
	SynUnclosedParen      Code = 2005
	SynUnclosedBracket    Code = 2006
	SynExpectMemberName   Code = 2007
	SynExpectColon        Code = 2008
	SynUnexpectedTopLevel Code = 2009

	// Call-operator productions (2100-2199)
	SynMissingReceiver          Code = 2100
	SynUnterminatedCallOperator Code = 2101
	SynCallOperatorSpace        Code = 2102
	SynBindThisDisabled         Code = 2103

	// I/O (4000-4999)
	IOLoadFileError Code = 4000
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown diagnostic",

	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed numeric literal",

	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynExpectSemicolon:    "Expected ';'",
	SynExpectExpression:   "Expected expression",
	SynExpectIdentifier:   "Expected identifier",
	SynUnclosedParen:      "Unclosed parenthesis",
	SynUnclosedBracket:    "Unclosed bracket",
	SynExpectMemberName:   "Expected member name",
	SynExpectColon:        "Expected ':'",
	SynUnexpectedTopLevel: "Unexpected top-level construct",

	SynMissingReceiver:          "Call operator requires a receiver",
	SynUnterminatedCallOperator: "Unterminated call operator",
	SynCallOperatorSpace:        "Whitespace inside call operator",
	SynBindThisDisabled:         "Bind-this operator is not enabled",

	IOLoadFileError: "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
