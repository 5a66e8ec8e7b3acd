/*
Package scanner defines an interface for tokenizers of range expressions.

Parsing range expressions does not need a tokenizer, as package comb operates
directly on the input string. Tokenizers serve for diagnostics: they show how
an expression breaks up into lexemes and where unrecognizable input starts.
A tokenizer based on lexmachine lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/pagerange"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagerange.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("pagerange.scanner")
}

// EOF is identical to text/scanner.EOF.
const EOF = scanner.EOF

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() pagerange.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Tokens drains a tokenizer and returns all tokens up to, but not including,
// EOF.
func Tokens(t Tokenizer) []pagerange.Token {
	var toks []pagerange.Token
	for {
		token := t.NextToken()
		if token.TokType() == EOF {
			return toks
		}
		toks = append(toks, token)
	}
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for
// the LexMachine scanner.
type DefaultToken struct {
	kind   pagerange.TokType
	lexeme string
	Val    interface{}
	span   pagerange.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ pagerange.TokType, lexeme string, span pagerange.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() pagerange.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() pagerange.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%d:%q%s", t.kind, t.lexeme, t.span)
}

var _ pagerange.Token = DefaultToken{}
