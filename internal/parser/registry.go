package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	acceptScore = 0.6
	tieMargin   = 0.05
)

type namePhrase struct {
	canonical string
	alias     string
}

type Registry struct {
	names   map[string]NameDef
	order   []string
	phrases []namePhrase
}

func NewRegistry(defs ...NameDef) *Registry {
	r := &Registry{
		names: make(map[string]NameDef),
	}
	for _, d := range defs {
		r.Register(d)
	}
	return r
}

func (r *Registry) Register(d NameDef) {
	d.Canonical = normaliseInput(d.Canonical)
	if d.Canonical == "" {
		return
	}
	if _, exists := r.names[d.Canonical]; !exists {
		r.order = append(r.order, d.Canonical)
	}
	r.names[d.Canonical] = d

	r.phrases = append(r.phrases, namePhrase{canonical: d.Canonical, alias: d.Canonical})
	for _, a := range d.Aliases {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, namePhrase{canonical: d.Canonical, alias: n})
	}
}

// Names returns canonical names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

type nameCandidate struct {
	canonical string
	kind      MatchKind
	score     float64
}

func (r *Registry) Resolve(raw string) Match {
	m := Match{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       NoMatch,
	}
	if m.Normalised == "" {
		return m
	}

	cands := r.candidates(m.Normalised)
	if len(cands) == 0 {
		return m
	}

	best := cands[0]
	if best.score < acceptScore {
		m.Suggestions = suggestionNames(cands, 3)
		return m
	}
	if len(cands) > 1 && best.score-cands[1].score < tieMargin && cands[1].score > acceptScore {
		m.Kind = Ambiguous
		m.Confidence = best.score
		m.Suggestions = tiedNames(cands, best.score)
		return m
	}

	m.Canonical = best.canonical
	m.Kind = best.kind
	m.Confidence = best.score
	return m
}

// candidates scores every phrase and keeps the best score per canonical,
// highest first.
func (r *Registry) candidates(in string) []nameCandidate {
	bestByName := make(map[string]nameCandidate)
	squashed := squash(in)
	for _, phrase := range r.phrases {
		cand, ok := scorePhrase(in, squashed, phrase)
		if !ok {
			continue
		}
		if prev, seen := bestByName[cand.canonical]; !seen || cand.score > prev.score {
			bestByName[cand.canonical] = cand
		}
	}

	cands := make([]nameCandidate, 0, len(bestByName))
	for _, c := range bestByName {
		cands = append(cands, c)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score == cands[j].score {
			return cands[i].canonical < cands[j].canonical
		}
		return cands[i].score > cands[j].score
	})
	return cands
}

func scorePhrase(in, squashed string, phrase namePhrase) (nameCandidate, bool) {
	cand := nameCandidate{canonical: phrase.canonical}
	isAlias := phrase.alias != phrase.canonical

	switch {
	case in == phrase.alias || squashed == squash(phrase.alias):
		cand.score = 1.0
		cand.kind = Exact
		if isAlias {
			cand.score = 0.97
			cand.kind = Alias
		}
		return cand, true
	case len(in) >= 2 && strings.HasPrefix(phrase.alias, in):
		cand.score = 0.9
		cand.kind = Prefix
		return cand, true
	}

	if len(in) < 3 {
		return nameCandidate{}, false
	}
	dist := levenshtein.ComputeDistance(in, phrase.alias)
	if dist > levenshteinLimit(len(phrase.alias)) {
		return nameCandidate{}, false
	}
	cand.score = 0.72 - (0.08 * float64(dist))
	if isAlias {
		cand.score += 0.03
	}
	cand.kind = Fuzzy
	return cand, true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func suggestionNames(cands []nameCandidate, limit int) []string {
	out := make([]string, 0, limit)
	for _, c := range cands {
		out = append(out, c.canonical)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func tiedNames(cands []nameCandidate, top float64) []string {
	var out []string
	for _, c := range cands {
		if top-c.score < tieMargin {
			out = append(out, c.canonical)
		}
	}
	return out
}
