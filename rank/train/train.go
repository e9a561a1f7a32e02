// Package train fits a naive-Bayes classifier per rule from an annotated
// corpus, producing the table package rank scores parses against.
package train

import (
	"fmt"
	"math"

	"github.com/extractly/duckling/engine"
	"github.com/extractly/duckling/entity"
	"github.com/extractly/duckling/rank"
	"github.com/extractly/duckling/resolve"
	"github.com/extractly/duckling/rule"
	"github.com/extractly/duckling/token"
)

// Example is one annotated corpus sentence: Text is parsed, and every
// resolved entity is classified ok/ko by Predicate.
type Example struct {
	Text      string
	Predicate func(entity.Entity) bool
}

// Corpus is everything Train needs: the reference context/options examples
// were annotated under, and the examples themselves.
type Corpus struct {
	Context resolve.Context
	Options resolve.Options
	Examples []Example
}

type datum struct {
	feats map[string]int
	ok    bool
}

type nodeKey string

func keyOf(n *token.Node) nodeKey {
	dk, _ := n.DimensionKind()
	return nodeKey(fmt.Sprintf("%d:%d:%s:%s", n.Range.Start, n.Range.End, n.RuleName, dk))
}

// collectSubnodes returns the key set of every non-leaf node (nodes with
// children) in the derivation tree rooted at n, including n itself.
func collectSubnodes(n *token.Node) map[nodeKey]bool {
	out := make(map[nodeKey]bool)
	if len(n.Children) == 0 {
		return out
	}
	out[keyOf(n)] = true
	for _, c := range n.Children {
		for k := range collectSubnodes(c) {
			out[k] = true
		}
	}
	return out
}

// collectSubnodesWithNodes is collectSubnodes but keeping a node reference
// per key, for feature extraction.
func collectSubnodesWithNodes(n *token.Node) []*token.Node {
	if len(n.Children) == 0 {
		return nil
	}
	out := []*token.Node{n}
	for _, c := range n.Children {
		out = append(out, collectSubnodesWithNodes(c)...)
	}
	return out
}

func extractFeatures(n *token.Node) map[string]int {
	var ruleFeat string
	for _, c := range n.Children {
		ruleFeat += c.RuleName
	}
	var grainFeat string
	for _, c := range n.Children {
		switch d := c.Data.(type) {
		case token.Duration:
			grainFeat += d.Grain.String()
		case token.TimeGrainToken:
			grainFeat += d.Grain.String()
		}
	}
	out := map[string]int{ruleFeat: 1}
	if grainFeat != "" {
		out[grainFeat] = 1
	}
	return out
}

// makeDataset1 runs one corpus example through the engine and resolver,
// splits its terminal nodes into ok/ko by predicate, and folds their
// derivation subnodes into dataset keyed by rule name.
func makeDataset1(rules []rule.Rule, ctx resolve.Context, opts resolve.Options, dataset map[string][]datum, ex Example, dims []token.Dimension) {
	st := engine.Parse(ex.Text, rules)

	var okNodes, koNodes []*token.Node
	for _, n := range st.AllNodes() {
		dk, has := n.DimensionKind()
		if !has {
			continue
		}
		if len(dims) > 0 && !containsDim(dims, dk) {
			continue
		}
		e, ok := resolve.Resolve(n, ctx, opts, ex.Text)
		if !ok {
			continue
		}
		if ex.Predicate(e) {
			okNodes = append(okNodes, n)
		} else {
			koNodes = append(koNodes, n)
		}
	}

	okKeys := make(map[nodeKey]bool)
	for _, n := range okNodes {
		for k := range collectSubnodes(n) {
			okKeys[k] = true
		}
	}
	koKeys := make(map[nodeKey]bool)
	for _, n := range koNodes {
		for k := range collectSubnodes(n) {
			if !okKeys[k] {
				koKeys[k] = true
			}
		}
	}

	okByKey := make(map[nodeKey]*token.Node)
	for _, root := range okNodes {
		for _, n := range collectSubnodesWithNodes(root) {
			k := keyOf(n)
			if okKeys[k] {
				if _, exists := okByKey[k]; !exists {
					okByKey[k] = n
				}
			}
		}
	}
	koByKey := make(map[nodeKey]*token.Node)
	for _, root := range koNodes {
		for _, n := range collectSubnodesWithNodes(root) {
			k := keyOf(n)
			if koKeys[k] {
				if _, exists := koByKey[k]; !exists {
					koByKey[k] = n
				}
			}
		}
	}

	for _, n := range okByKey {
		if n.RuleName == "" {
			continue
		}
		dataset[n.RuleName] = append(dataset[n.RuleName], datum{feats: extractFeatures(n), ok: true})
	}
	for _, n := range koByKey {
		if n.RuleName == "" {
			continue
		}
		dataset[n.RuleName] = append(dataset[n.RuleName], datum{feats: extractFeatures(n), ok: false})
	}
}

func containsDim(dims []token.Dimension, d token.Dimension) bool {
	for _, x := range dims {
		if x == d {
			return true
		}
	}
	return false
}

func makeClass(feats map[string]int, total, classTotal, vocSize int) rank.ClassData {
	prior := math.Log(float64(classTotal) / float64(total))
	featSum := 0
	for _, c := range feats {
		featSum += c
	}
	denom := vocSize + featSum
	unseen := math.Log(1.0 / (float64(denom) + 1.0))
	likelihoods := make(map[string]float64, len(feats))
	for f, count := range feats {
		likelihoods[f] = math.Log((float64(count) + 1.0) / float64(denom))
	}
	return rank.ClassData{Prior: prior, Unseen: unseen, Likelihoods: likelihoods}
}

// trainRule fits the ok-class ClassData for one rule's data points. The
// source also fits a ko_data class (used only to decide the ok prior's
// complement); since runtime scoring uses ok_data exclusively, we compute
// both counts but only keep ok_data in the returned Classifier.
func trainRule(datums []datum) rank.Classifier {
	total := len(datums)

	okCounts := make(map[string]int)
	koCounts := make(map[string]int)
	nOK, nKO := 0, 0
	for _, d := range datums {
		target := koCounts
		if d.ok {
			target = okCounts
			nOK++
		} else {
			nKO++
		}
		for f, c := range d.feats {
			target[f] += c
		}
	}

	allFeats := make(map[string]bool)
	for f := range okCounts {
		allFeats[f] = true
	}
	for f := range koCounts {
		allFeats[f] = true
	}
	vocSize := len(allFeats)

	okData := makeClass(okCounts, total, nOK, vocSize)
	return rank.Classifier{OKData: okData}
}

// MakeClassifiers parses and resolves every example in corpus against
// rules, accumulates per-rule training data, and fits a classifier per
// rule that produced at least one data point.
func MakeClassifiers(rules []rule.Rule, corpus Corpus, dims []token.Dimension) rank.Classifiers {
	dataset := make(map[string][]datum)
	for _, ex := range corpus.Examples {
		makeDataset1(rules, corpus.Context, corpus.Options, dataset, ex, dims)
	}

	out := make(rank.Classifiers, len(dataset))
	for ruleName, datums := range dataset {
		out[ruleName] = trainRule(datums)
	}
	return out
}
