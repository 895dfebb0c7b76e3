package token

var keywords = map[string]Kind{
	"let":        KwLet,
	"const":      KwConst,
	"typeof":     KwTypeof,
	"in":         KwIn,
	"instanceof": KwInstanceof,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
	"undefined":  KwUndefined,
}

// LookupKeyword returns the keyword kind for ident, if it is a reserved word.
// Keywords are case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
