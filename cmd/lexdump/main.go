// Command lexdump scans a source file and prints its lexeme stream,
// one classified lexeme per line, followed by an optional summary.
// Malformed lexemes are reported but never stop the scan.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/heronlang/heron/scanner"
)

var (
	flagAtmosphere = flag.Bool("atmosphere", true, "print atmosphere lexemes (whitespace, tabs, newlines, comments)")
	flagSummary    = flag.Bool("summary", false, "print totals after the lexeme listing")
)

var (
	structureColor = color.New(color.FgCyan)
	literalColor   = color.New(color.FgGreen)
	atmoColor      = color.New(color.Faint)
	malformedColor = color.New(color.FgRed, color.Bold)
)

func kindColor(kind scanner.LexemeKind) *color.Color {
	switch {
	case kind.Malformed():
		return malformedColor
	case kind.Atmosphere():
		return atmoColor
	}

	switch kind {
	case scanner.KindLParen, scanner.KindRParen,
		scanner.KindLBracket, scanner.KindRBracket,
		scanner.KindLBrace, scanner.KindRBrace:
		return structureColor
	case scanner.KindIntLit, scanner.KindFloatLit, scanner.KindCharLit,
		scanner.KindBoolLit, scanner.KindKeywordLit,
		scanner.KindLString, scanner.KindStringContent, scanner.KindRString:
		return literalColor
	}

	return color.New()
}

func main() {
	flag.Parse()

	src, err := readSource(flag.Arg(0))
	if err != nil {
		log.Fatal("lexdump:", err)
	}

	start := time.Now()

	sc := scanner.New(src)

	total := 0
	malformed := map[scanner.LexemeKind]int{}

	for sc.Next() {
		lex := sc.Lexeme()

		if lex.Kind().Malformed() {
			malformed[lex.Kind()]++
		}
		if lex.Kind().Atmosphere() && !*flagAtmosphere {
			total++
			continue
		}

		kindColor(lex.Kind()).Printf("lexeme[%d]\t%v\t%q\n", total, lex.Kind(), lex.Text())
		total++
	}

	elapsed := time.Since(start)

	if *flagSummary {
		fmt.Printf("\n%d lexemes, %s scanned in %v\n", total, humanize.Bytes(uint64(len(src))), elapsed)
		for kind, n := range malformed {
			malformedColor.Printf("%d malformed lexeme(s) of kind %v\n", n, kind)
		}
	}
}

func readSource(name string) ([]byte, error) {
	if name == "" {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(name)
}
