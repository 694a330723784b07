package main

import (
	"fmt"

	"github.com/heronlang/heron/reader"
)

func main() {
	input := `
		(def long 5.0)
		(def (laugh) (print "hahaha"))
	`

	r := reader.New([]byte(input))

	for {
		tok, ok := r.Next()
		if !ok {
			break
		}

		line, col := tok.Pos()
		fmt.Printf("%d:%d\t%v\t%q\n", line, col, tok.Kind(), tok.Text())
	}
}
