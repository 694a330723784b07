package main

import (
	"fmt"

	"github.com/heronlang/heron/scanner"
)

func main() {
	input := `
		(def (f x) (* x x)) ; square
		(print #:out file 5.4)
		(print "hello \"world\"" #\newline #t)
	`

	lexemes := scanner.Scan([]byte(input))

	for i, lex := range lexemes {
		fmt.Printf("lexeme[%d] (kind: %v, len: %d)\n\t-> %q\n\n", i, lex.Kind(), lex.Len(), lex.Text())
	}
}
