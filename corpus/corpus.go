// Package corpus parses the small textual DSL used to write annotated
// training examples for rank/train.Trainer: a sequence of
// `example "text" -> dim[: expected]` lines under a `lang:`/`ref_time:`
// header. github.com/alecthomas/participle/v2 drives the grammar, the same
// struct-tag-grammar technique the teacher uses to parse YARA rule files
// (parser/grammar.go) repurposed here for training-corpus fixtures instead
// of scan rules.
package corpus

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/participle/v2"

	"github.com/extractly/duckling/entity"
	"github.com/extractly/duckling/locale"
	"github.com/extractly/duckling/rank/train"
	"github.com/extractly/duckling/resolve"
)

// file is the participle grammar for one corpus document.
type file struct {
	Lang     string     `parser:"'lang' ':' @Ident"`
	RefTime  string     `parser:"'ref_time' ':' @String"`
	Examples []*example `parser:"@@*"`
}

type example struct {
	Text  string  `parser:"'example' @String '-' '>'"`
	Dim   string  `parser:"@(Ident|String)"`
	Value *string `parser:"(':' @String)?"`
}

var parser = participle.MustBuild[file]()

// Parse decodes src into a rank/train.Corpus. Each example's predicate
// checks that the resolved entity's dimension matches Dim and, when Value
// is present, that one of the entity's top-level string or numeric values
// stringifies exactly to it. Nested values are not searched and substrings
// do not match.
func Parse(src string) (train.Corpus, error) {
	var f file
	if err := parser.ParseString("", src, &f); err != nil {
		return train.Corpus{}, fmt.Errorf("parsing corpus: %w", err)
	}

	ref, err := time.Parse(time.RFC3339, unquote(f.RefTime))
	if err != nil {
		return train.Corpus{}, fmt.Errorf("parsing ref_time %q: %w", f.RefTime, err)
	}

	loc := locale.Locale{Lang: unquote0(f.Lang)}
	ctx := resolve.Context{ReferenceTime: ref, Locale: loc}

	examples := make([]train.Example, 0, len(f.Examples))
	for _, ex := range f.Examples {
		dim := unquote0(ex.Dim)
		var want *string
		if ex.Value != nil {
			v := unquote(*ex.Value)
			want = &v
		}
		examples = append(examples, train.Example{
			Text:      unquote(ex.Text),
			Predicate: predicateFor(dim, want),
		})
	}

	return train.Corpus{Context: ctx, Options: resolve.Options{WithLatent: true}, Examples: examples}, nil
}

func predicateFor(dim string, want *string) func(entity.Entity) bool {
	return func(e entity.Entity) bool {
		if e.Dim != dim {
			return false
		}
		if want == nil {
			return true
		}
		return valueContains(e.Value, *want)
	}
}

// valueContains is a shallow scan over an entity's resolved value map,
// string-comparing every top-level scalar against want; enough to assert
// "value: 523" or "value: USD" in a fixture without a full value grammar.
func valueContains(v entity.Value, want string) bool {
	for _, x := range v {
		switch t := x.(type) {
		case string:
			if t == want {
				return true
			}
		case float64:
			if strconv.FormatFloat(t, 'g', -1, 64) == want {
				return true
			}
		case int64:
			if strconv.FormatInt(t, 10) == want {
				return true
			}
		}
	}
	return false
}

func unquote(s string) string {
	return unquote0(s)
}

func unquote0(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
