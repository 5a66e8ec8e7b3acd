package rangelang

import (
	"fmt"
	"sync"

	"github.com/npillmayer/pagerange"
	"github.com/npillmayer/pagerange/scanner"
	"github.com/npillmayer/pagerange/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Token categories of range expressions, as produced by Lexer.
const (
	NUM     pagerange.TokType = iota + 1 // page number
	RANGE                                // ..
	COMMA                                // ,
	ILLEGAL                              // any other character
)

var tokenIds = map[string]int{
	"NUM":     int(NUM),
	"..":      int(RANGE),
	",":       int(COMMA),
	"ILLEGAL": int(ILLEGAL),
}

// TokenName returns a display name for a token category.
func TokenName(t pagerange.TokType) string {
	switch t {
	case NUM:
		return "NUM"
	case RANGE:
		return "RANGE"
	case COMMA:
		return "COMMA"
	case ILLEGAL:
		return "ILLEGAL"
	case scanner.EOF:
		return "EOF"
	}
	return fmt.Sprintf("<%d>", t)
}

var lexer *lexmach.LMAdapter
var lexerErr error
var lexOnce sync.Once // monitors one-time creation of the lexer DFA

// Lexer returns a lexmachine lexer for range expressions. The DFA is compiled
// on first use.
func Lexer() (*lexmach.LMAdapter, error) {
	lexOnce.Do(func() {
		tracer().Infof("Creating lexer")
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`[0-9]+`), lexmach.MakeToken("NUM", tokenIds["NUM"]))
			lexer.Add([]byte(`\.\.`), lexmach.MakeToken("..", tokenIds[".."]))
			lexer.Add([]byte(`\,`), lexmach.MakeToken(",", tokenIds[","]))
			lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
			// catch-all has to come last, as rule order decides between matches of equal length
			lexer.Add([]byte(`.`), lexmach.MakeToken("ILLEGAL", tokenIds["ILLEGAL"]))
		}
		lexer, lexerErr = lexmach.NewLMAdapter(init, nil, nil, tokenIds)
	})
	return lexer, lexerErr
}

// Tokens splits a range expression into tokens. Characters not part of the
// range language are returned as ILLEGAL tokens. NUM tokens carry their page
// number as value.
//
// Tokens is not used for parsing, it is a diagnostic view on an expression.
func Tokens(input string) ([]pagerange.Token, error) {
	lex, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lex.Scanner(input)
	if err != nil {
		return nil, err
	}
	toks := scanner.Tokens(scan)
	for i, tok := range toks {
		if dt, ok := tok.(scanner.DefaultToken); ok && dt.TokType() == NUM {
			dt.Val = pageNumber(dt.Lexeme())
			toks[i] = dt
		}
	}
	return toks, nil
}
