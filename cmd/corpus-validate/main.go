// Command corpus-validate parses a training-corpus DSL file (package
// corpus) and reports how many examples it contains and whether it parses
// at all, without running the trainer — a quick sanity check for corpus
// fixtures before wiring them into `duckling train`. Grounded in the
// teacher's cmd/corpus-validator, repurposed from validating YARA-match
// test corpora to validating this module's annotated-example DSL.
package main

import (
	"fmt"
	"os"

	"github.com/extractly/duckling/corpus"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: corpus-validate <corpus-file>\n")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	c, err := corpus.Parse(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid corpus: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ok: %d example(s), locale %s\n", len(c.Examples), c.Context.Locale)
}
