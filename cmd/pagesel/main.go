package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pagerange"
	"github.com/npillmayer/pagerange/rangelang"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("pagesel"), where users may enter range
// expressions. pagesel will print the pages selected by an expression,
// for a document with a page count given by flag -pages or by command :pages.
//
// If an expression is given as command line arguments, pagesel prints its
// selection and exits.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	pagecnt := flag.Int("pages", 10, "Page count of the document")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	tracer().Infof("Trace level is %s", *tlevel)
	setTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	intp := &Intp{
		pageCount: *pagecnt,
		cache:     make(map[selectionKey]*pagerange.PageSet),
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if _, err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
		return
	}
	//
	// set up REPL
	pterm.Info.Println("Welcome to pagesel") // colored welcome message
	repl, err := readline.New("pagesel> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// selectionKey identifies a resolved selection.
type selectionKey struct {
	fingerprint string
	pageCount   int
}

// Intp is our interpreter object
type Intp struct {
	pageCount int
	repl      *readline.Instance
	cache     map[selectionKey]*pagerange.PageSet
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		_, err := intp.Eval(line)
		if err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a line, which is either a command (starting with ':') or a
// range expression.
//
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		cmd, arg := line, ""
		if i := strings.IndexAny(line, " \t"); i > 0 {
			cmd, arg = line[:i], strings.TrimSpace(line[i:])
		}
		return intp.Execute(cmd, arg)
	}
	return false, intp.printSelection(line)
}

// Execute executes a command.
func (intp *Intp) Execute(cmd string, arg string) (bool, error) {
	var err error
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":pages":
		var n int
		if n, err = strconv.Atoi(arg); err != nil || n < 1 {
			err = fmt.Errorf("page count must be a positive number, is %q", arg)
			break
		}
		intp.pageCount = n
		pterm.Info.Println(fmt.Sprintf("document has %d pages", n))
	case ":tokens":
		err = printTokens(arg)
	case ":tree":
		err = printTree(arg)
	case ":trace":
		setTraceLevel(traceLevel(arg))
	default:
		err = fmt.Errorf("unknown command %s", cmd)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return false, err
}

func (intp *Intp) printSelection(expr string) error {
	ranges, synerr := rangelang.Fallback(expr)
	if synerr != nil {
		pterm.Warning.Println(synerr.Error())
		pterm.Info.Println("selecting all pages")
	}
	pages, err := intp.resolve(ranges)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%s ⇒ %s", ranges, pages))
	return nil
}

// resolve resolves a range list, re-using earlier selections of the same
// ranges for the same page count.
func (intp *Intp) resolve(ranges pagerange.RangeList) (*pagerange.PageSet, error) {
	fp, err := ranges.Fingerprint()
	if err != nil {
		tracer().Errorf("cannot fingerprint %s: %v", ranges, err)
	}
	key := selectionKey{fingerprint: fp, pageCount: intp.pageCount}
	if pages, ok := intp.cache[key]; ok && err == nil {
		tracer().Debugf("selection %s for %d pages found in cache", ranges, intp.pageCount)
		return pages, nil
	}
	notes := &pagerange.NoteCollector{}
	pages, rerr := rangelang.Resolve(ranges, intp.pageCount, notes)
	if rerr != nil {
		return nil, rerr
	}
	for _, n := range notes.Notes {
		pterm.Warning.Println(n.String())
	}
	if err == nil {
		intp.cache[key] = pages
	}
	return pages, nil
}

func printTokens(expr string) error {
	toks, err := rangelang.Tokens(expr)
	if err != nil {
		return err
	}
	data := pterm.TableData{{"Token", "Lexeme", "Value", "Span"}}
	illegal := 0
	for _, tok := range toks {
		if tok.TokType() == rangelang.ILLEGAL {
			illegal++
		}
		data = append(data, []string{
			rangelang.TokenName(tok.TokType()),
			tok.Lexeme(),
			tokenValue(tok),
			tok.Span().String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if illegal > 0 {
		return fmt.Errorf("%d illegal character(s) in %q", illegal, expr)
	}
	return nil
}

func tokenValue(tok pagerange.Token) string {
	if tok.Value() == nil {
		return ""
	}
	return fmt.Sprintf("%v", tok.Value())
}

func printTree(expr string) error {
	ranges, err := rangelang.Parse(expr)
	if err != nil {
		return err
	}
	pterm.Println(expr)
	root := pterm.NewTreeFromLeveledList(leveledRanges(ranges))
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

func leveledRanges(ranges pagerange.RangeList) pterm.LeveledList {
	ll := pterm.LeveledList{}
	for _, r := range ranges {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: r.String()})
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: r.Shape().String()})
		if !r.Left.IsOpen() {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: "from " + r.Left.String()})
		}
		if !r.Right.IsOpen() {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: "to " + r.Right.String()})
		}
	}
	return ll
}

func setTraceLevel(level tracing.TraceLevel) {
	tracer().SetTraceLevel(level)
	for _, key := range []string{"pagerange", "pagerange.lang", "pagerange.comb", "pagerange.scanner"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
