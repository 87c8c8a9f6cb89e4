package syntax

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	cerr "github.com/barun-bash/cfront/internal/errors"
	"github.com/barun-bash/cfront/internal/lexer"
)

// Relevance tiers. A pattern scores the best tier any of its fields reaches.
const (
	scoreCode     = 100 // the query is the pattern's diagnostic code
	scoreProfile  = 90  // the query names the example's profile
	scoreTemplate = 80  // every query token appears in the template
	scoreExample  = 60  // every query token appears in the example
	scoreTag      = 55
	scoreText     = 50 // substring of the template
	scoreTagPart  = 40
	scoreDescr    = 30
	scoreFuzzy    = 20
)

// placeholder matches "<expression>" style slots in templates so they are
// not lexed as '<' and '>'.
var placeholder = regexp.MustCompile(`<[a-z][a-z ]*>`)

// shape is the set of operator and keyword tokens a piece of code contains.
type shape map[lexer.TokenType]bool

func (s shape) covers(kinds []lexer.TokenType) bool {
	if len(kinds) == 0 {
		return false
	}
	for _, k := range kinds {
		if !s[k] {
			return false
		}
	}
	return true
}

type patternShape struct {
	template shape
	example  shape
}

var shapes = sync.OnceValue(func() []patternShape {
	out := make([]patternShape, len(allPatterns))
	for i, p := range allPatterns {
		out[i] = patternShape{
			template: shapeOf(placeholder.ReplaceAllString(p.Template, " ")),
			example:  shapeOf(p.Example),
		}
	}
	return out
})

// shapeOf lexes src with the full keyword table. Illegal characters are
// skipped; identifiers and numbers carry no shape.
func shapeOf(src string) shape {
	tokens, _ := lexer.Tokenize(src, lexer.DefaultKeywords())
	s := shape{}
	for _, tok := range significant(tokens) {
		s[tok] = true
	}
	return s
}

func significant(tokens []lexer.Token) []lexer.TokenType {
	var kinds []lexer.TokenType
	for _, tok := range tokens {
		switch tok.Type {
		case lexer.TOKEN_EOF, lexer.TOKEN_IDENTIFIER, lexer.TOKEN_NUMBER:
		default:
			kinds = append(kinds, tok.Type)
		}
	}
	return kinds
}

// query is a search string split into the forms patterns are matched on.
type query struct {
	text  string // lowercased
	raw   string
	kinds []lexer.TokenType
	// reserved is set when the query is a single reserved word.
	reserved bool
	// near holds the token of a keyword the query looks like a misspelling of.
	near []lexer.TokenType
}

func parseQuery(s string) query {
	q := query{raw: s, text: strings.ToLower(s)}
	keywords := lexer.DefaultKeywords()
	tokens, diags := lexer.Tokenize(s, keywords)
	if len(diags) > 0 {
		return q
	}
	q.kinds = significant(tokens)
	q.reserved = len(tokens) == 2 && len(q.kinds) == 1 && keywords.Lookup(s) != lexer.TOKEN_IDENTIFIER
	if len(tokens) == 2 && tokens[0].Type == lexer.TOKEN_IDENTIFIER {
		if word := cerr.FindClosest(s, keywords.Words(), 0.6); word != "" {
			q.near = []lexer.TokenType{keywords.Lookup(word)}
		}
	}
	return q
}

// Search ranks patterns against a query. Diagnostic codes and profile
// names match exactly. Operators and keywords ("<=", "while") match the
// code a pattern shows. Other words match tags and descriptions, with a
// fuzzy fallback on tags and misspelled keywords. Ties keep category order.
func Search(s string) []Pattern {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllPatterns()
	}

	q := parseQuery(s)
	rank := make(map[Category]int)
	for i, cat := range AllCategories() {
		rank[cat] = i
	}

	type hit struct {
		pattern Pattern
		score   int
	}
	var hits []hit
	for i, p := range allPatterns {
		if score := q.score(p, shapes()[i]); score > 0 {
			hits = append(hits, hit{p, score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return rank[hits[i].pattern.Category] < rank[hits[j].pattern.Category]
	})

	out := make([]Pattern, len(hits))
	for i, h := range hits {
		out[i] = h.pattern
	}
	return out
}

func (q query) score(p Pattern, sh patternShape) int {
	switch {
	case p.Code != "" && strings.EqualFold(q.raw, p.Code):
		return scoreCode
	case p.Profile != "" && q.raw == p.Profile && !q.reserved:
		return scoreProfile
	case sh.template.covers(q.kinds):
		return scoreTemplate
	case sh.example.covers(q.kinds):
		return scoreExample
	}

	best := 0
	raise := func(score int) {
		best = max(best, score)
	}
	for _, tag := range p.Tags {
		tag = strings.ToLower(tag)
		if tag == q.text {
			raise(scoreTag)
		} else if strings.Contains(tag, q.text) {
			raise(scoreTagPart)
		}
	}
	if strings.Contains(strings.ToLower(p.Template), q.text) {
		raise(scoreText)
	}
	if strings.Contains(strings.ToLower(p.Description), q.text) {
		raise(scoreDescr)
	}
	if best > 0 {
		return best
	}

	if sh.template.covers(q.near) {
		return scoreFuzzy
	}
	for _, tag := range p.Tags {
		if cerr.Similarity(q.text, tag) > 0.6 {
			return scoreFuzzy
		}
	}
	return 0
}

// Completions returns search terms starting with prefix: reserved words,
// diagnostic codes, category names and templates, in that order.
func Completions(prefix string) []string {
	if prefix == "" {
		return nil
	}
	p := strings.ToLower(prefix)

	var candidates []string
	candidates = append(candidates, lexer.DefaultKeywords().Words()...)
	for _, pat := range ByCategory(CatErrors) {
		candidates = append(candidates, pat.Code)
	}
	for _, cat := range AllCategories() {
		candidates = append(candidates, string(cat))
	}
	for _, pat := range allPatterns {
		candidates = append(candidates, pat.Template)
	}

	seen := make(map[string]bool)
	var out []string
	for _, c := range candidates {
		if c == "" || seen[c] || !strings.HasPrefix(strings.ToLower(c), p) {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
