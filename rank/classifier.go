// Package rank scores and dedupes candidate nodes using a naive-Bayes
// classifier per rule, then discards dominated and overlapping candidates
// so a parse's output is entities, not a raw ambiguity lattice.
package rank

import (
	_ "embed"
	"encoding/json"
	"os"
	"sync"

	"github.com/extractly/duckling/internal/xlog"
	"github.com/extractly/duckling/locale"
	"github.com/extractly/duckling/metrics"
)

// ClassData is one trained class (the "ok" class; mis-parses are never
// scored at runtime, only used during training to shape priors).
type ClassData struct {
	Prior       float64            `json:"prior"`
	Unseen      float64            `json:"unseen"`
	Likelihoods map[string]float64 `json:"likelihoods"`
}

// Classifier holds the scoring data for one rule name.
type Classifier struct {
	OKData ClassData
}

// Classifiers maps a rule name to its trained classifier.
type Classifiers map[string]Classifier

type jsonClassData struct {
	Prior       float64            `json:"prior"`
	Unseen      float64            `json:"unseen"`
	Likelihoods map[string]float64 `json:"likelihoods"`
}

// defaultClassifiersJSON ships as a neutral seed: every rule not yet
// trained on a corpus scores 0, matching the "missing classifier" fallback.
// `duckling train` (package rank/train) regenerates a real file from an
// annotated corpus.
//
//go:embed classifiers/en_xx.json
var defaultClassifiersJSON []byte

var (
	enOnce    sync.Once
	enLoaded  Classifiers
	enLoadErr error

	overrideMu sync.RWMutex
	override   Classifiers // non-nil once SetOverride has been called
)

// ForLocale returns the process's classifier table for loc: a
// hot-reloaded override if serve --watch-classifiers has installed one
// (§4.15), else the embedded default for locales that ship one, else an
// empty table (every rule scores 0, per the classifier-load-error
// fallback in spec.md §7).
func ForLocale(loc locale.Locale) Classifiers {
	overrideMu.RLock()
	ov := override
	overrideMu.RUnlock()
	if ov != nil {
		return ov
	}

	if loc.Lang != "en" {
		return Classifiers{}
	}
	enOnce.Do(func() {
		enLoaded, enLoadErr = ParseClassifiers(defaultClassifiersJSON)
		if enLoadErr != nil {
			xlog.Warningf("embedded classifier table failed to parse: %v", enLoadErr)
			metrics.Get().ClassifierLoadFail.Inc()
			enLoaded = Classifiers{}
		}
	})
	return enLoaded
}

// SetOverride installs c as the process-wide classifier table for every
// locale, replacing whatever ForLocale would otherwise return. Used by
// the `--classifier-file` CLI/config option and by the fsnotify-driven
// hot-reload in serve mode; the mutex is the single critical section
// both paths take, mirroring the rule cache's build-once-then-share
// discipline (spec.md §4.8/§5).
func SetOverride(c Classifiers) {
	overrideMu.Lock()
	override = c
	overrideMu.Unlock()
}

// LoadFile reads and parses a classifier JSON file from disk, logging and
// counting the failure (without panicking) so a bad --classifier-file
// degrades to the existing table instead of crashing the process.
func LoadFile(path string) (Classifiers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		xlog.Warningf("could not read classifier file %s: %v", path, err)
		metrics.Get().ClassifierLoadFail.Inc()
		return nil, err
	}
	c, err := ParseClassifiers(data)
	if err != nil {
		xlog.Warningf("could not parse classifier file %s: %v", path, err)
		metrics.Get().ClassifierLoadFail.Inc()
		return nil, err
	}
	return c, nil
}

// ParseClassifiers decodes a classifier JSON file (rule name -> {prior,
// unseen, likelihoods}) as described by the external classifier file
// format.
func ParseClassifiers(data []byte) (Classifiers, error) {
	var raw map[string]jsonClassData
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(Classifiers, len(raw))
	for rule, c := range raw {
		out[rule] = Classifier{OKData: ClassData{Prior: c.Prior, Unseen: c.Unseen, Likelihoods: c.Likelihoods}}
	}
	return out, nil
}

// Marshal encodes classifiers back into the external JSON shape, used by
// the trainer to persist a freshly trained table.
func Marshal(c Classifiers) ([]byte, error) {
	raw := make(map[string]jsonClassData, len(c))
	for rule, cl := range c {
		raw[rule] = jsonClassData{Prior: cl.OKData.Prior, Unseen: cl.OKData.Unseen, Likelihoods: cl.OKData.Likelihoods}
	}
	return json.MarshalIndent(raw, "", "  ")
}
