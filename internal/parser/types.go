package parser

type MatchKind int

const (
	Exact MatchKind = iota
	Alias
	Prefix
	Fuzzy
	Ambiguous
	NoMatch
)

func (k MatchKind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Alias:
		return "alias"
	case Prefix:
		return "prefix"
	case Fuzzy:
		return "fuzzy"
	case Ambiguous:
		return "ambiguous"
	default:
		return "none"
	}
}

type NameDef struct {
	Canonical string
	Aliases   []string
}

// Match is the result of resolving one raw name. Canonical is empty unless
// the input resolved; Suggestions then lists the closest names, if any.
type Match struct {
	Raw         string
	Normalised  string
	Canonical   string
	Kind        MatchKind
	Confidence  float64
	Suggestions []string
}

func (m Match) Resolved() bool {
	return m.Canonical != ""
}
