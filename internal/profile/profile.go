// Package profile describes language feature levels: which words are
// keywords and which grammar constructs the parser accepts. Profiles are
// plain data handed to a single lexer/parser core.
package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/barun-bash/cfront/internal/lexer"
)

// Construct names a grammar production that a profile can enable.
type Construct string

const (
	ConstructAssign   Construct = "assign"
	ConstructIf       Construct = "if"
	ConstructElse     Construct = "else"
	ConstructWhile    Construct = "while"
	ConstructReturn   Construct = "return"
	ConstructFunction Construct = "function"
)

// AllConstructs returns every construct in grammar order.
func AllConstructs() []Construct {
	return []Construct{
		ConstructAssign,
		ConstructIf,
		ConstructElse,
		ConstructWhile,
		ConstructReturn,
		ConstructFunction,
	}
}

// leadingKind is the keyword that introduces a construct. Assignments
// start with an identifier and need no keyword.
var leadingKind = map[Construct]lexer.TokenType{
	ConstructIf:       lexer.TOKEN_IF,
	ConstructElse:     lexer.TOKEN_ELSE,
	ConstructWhile:    lexer.TOKEN_WHILE,
	ConstructReturn:   lexer.TOKEN_RETURN,
	ConstructFunction: lexer.TOKEN_TYPE,
}

// ExprMode selects the arithmetic expression sub-grammar.
type ExprMode string

const (
	// ExprFlat is term (('+'|'-') term)*, folded left-associatively.
	ExprFlat ExprMode = "flat"
	// ExprNarrow is IDENT | NUMBER | IDENT ('+'|'-') NUMBER.
	ExprNarrow ExprMode = "narrow"
)

// DefaultName is the profile used when none is configured.
const DefaultName = "full"

// Profile is a validated feature level.
type Profile struct {
	Name        string
	Keywords    lexer.Keywords
	Expressions ExprMode
	// SingleItem parses exactly one item; anything after it is trailing input.
	SingleItem bool
	// Start, when set, is the only construct allowed at the top level.
	Start Construct

	constructs map[Construct]bool
}

// Enabled reports whether the profile accepts construct c.
func (p *Profile) Enabled(c Construct) bool {
	return p.constructs[c]
}

// Constructs returns the enabled constructs in grammar order.
func (p *Profile) Constructs() []Construct {
	var out []Construct
	for _, c := range AllConstructs() {
		if p.constructs[c] {
			out = append(out, c)
		}
	}
	return out
}

// Spec converts the profile back to its serializable form.
func (p *Profile) Spec() Spec {
	s := Spec{
		Name:        p.Name,
		Keywords:    make(map[string]string, len(p.Keywords)),
		Expressions: string(p.Expressions),
		SingleItem:  p.SingleItem,
		Start:       string(p.Start),
	}
	for word, kind := range p.Keywords {
		s.Keywords[word] = kindName(kind)
	}
	for _, c := range p.Constructs() {
		s.Constructs = append(s.Constructs, string(c))
	}
	return s
}

// StartKind returns the token every top-level item must begin with, or
// false when any item may appear.
func (p *Profile) StartKind() (lexer.TokenType, bool) {
	switch p.Start {
	case "":
		return 0, false
	case ConstructAssign:
		return lexer.TOKEN_IDENTIFIER, true
	}
	return leadingKind[p.Start], true
}

// Summary is a one-line description used in listings.
func (p *Profile) Summary() string {
	names := make([]string, 0, len(p.constructs))
	for _, c := range p.Constructs() {
		names = append(names, string(c))
	}
	mode := "program"
	if p.SingleItem {
		mode = "single item"
	}
	return fmt.Sprintf("%s; %s expressions; %s", strings.Join(names, ", "), p.Expressions, mode)
}

// Spec is the on-disk description of a profile.
type Spec struct {
	Name        string            `toml:"name,omitempty" yaml:"name,omitempty"`
	Base        string            `toml:"base,omitempty" yaml:"base,omitempty"`
	Keywords    map[string]string `toml:"keywords,omitempty" yaml:"keywords,omitempty"`
	Constructs  []string          `toml:"constructs,omitempty" yaml:"constructs,omitempty"`
	Expressions string            `toml:"expressions,omitempty" yaml:"expressions,omitempty"`
	SingleItem  bool              `toml:"single_item,omitempty" yaml:"single_item,omitempty"`
	Start       string            `toml:"start,omitempty" yaml:"start,omitempty"`
}

// Build validates spec and returns the profile it describes. When Base
// names a built-in profile, fields left empty in spec are inherited from it.
func Build(spec Spec) (*Profile, error) {
	name := spec.Name
	if name == "" {
		name = "custom"
	}

	p := &Profile{
		Name:        name,
		Keywords:    lexer.Keywords{},
		Expressions: ExprFlat,
		SingleItem:  spec.SingleItem,
		constructs:  map[Construct]bool{},
	}

	if spec.Base != "" {
		base, err := Builtin(spec.Base)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		p.Keywords = base.Keywords.Clone()
		p.Expressions = base.Expressions
		p.SingleItem = base.SingleItem || spec.SingleItem
		p.Start = base.Start
		for c := range base.constructs {
			p.constructs[c] = true
		}
	}

	for word, kindName := range spec.Keywords {
		if !isWord(word) {
			return nil, fmt.Errorf("profile %q: keyword %q is not a valid identifier", name, word)
		}
		kind, ok := lexer.KindByName(kindName)
		if !ok {
			return nil, fmt.Errorf("profile %q: keyword %q has unknown kind %q", name, word, kindName)
		}
		p.Keywords[word] = kind
	}

	if len(spec.Constructs) > 0 {
		p.constructs = map[Construct]bool{}
		for _, raw := range spec.Constructs {
			c := Construct(strings.ToLower(strings.TrimSpace(raw)))
			if !isConstruct(c) {
				return nil, fmt.Errorf("profile %q: unknown construct %q", name, raw)
			}
			p.constructs[c] = true
		}
	}

	if spec.Start != "" {
		c := Construct(strings.ToLower(strings.TrimSpace(spec.Start)))
		if !isConstruct(c) {
			return nil, fmt.Errorf("profile %q: unknown start construct %q", name, spec.Start)
		}
		p.Start = c
	}

	switch ExprMode(spec.Expressions) {
	case "":
	case ExprFlat, ExprNarrow:
		p.Expressions = ExprMode(spec.Expressions)
	default:
		return nil, fmt.Errorf("profile %q: unknown expression mode %q (want flat or narrow)", name, spec.Expressions)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// validate checks that every enabled keyword-led construct can actually
// be written with the profile's keyword table.
func (p *Profile) validate() error {
	if len(p.constructs) == 0 {
		return fmt.Errorf("profile %q: no constructs enabled", p.Name)
	}
	if p.constructs[ConstructElse] && !p.constructs[ConstructIf] {
		return fmt.Errorf("profile %q: construct \"else\" requires \"if\"", p.Name)
	}
	if p.Start != "" {
		if p.Start == ConstructElse {
			return fmt.Errorf("profile %q: \"else\" cannot be the start construct", p.Name)
		}
		if !p.constructs[p.Start] {
			return fmt.Errorf("profile %q: start construct %q is not enabled", p.Name, p.Start)
		}
	}
	for _, c := range p.Constructs() {
		kind, ok := leadingKind[c]
		if !ok {
			continue
		}
		if !p.Keywords.Has(kind) {
			return fmt.Errorf("profile %q: construct %q is enabled but no keyword maps to %s",
				p.Name, c, kindName(kind))
		}
	}
	return nil
}

// Lookup resolves name against custom profiles first, then built-ins.
func Lookup(name string, custom map[string]Spec) (*Profile, error) {
	if name == "" {
		name = DefaultName
	}
	if spec, ok := custom[name]; ok {
		if spec.Name == "" {
			spec.Name = name
		}
		return Build(spec)
	}
	return Builtin(name)
}

func isConstruct(c Construct) bool {
	for _, known := range AllConstructs() {
		if c == known {
			return true
		}
	}
	return false
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		letter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		if !letter && (i == 0 || r < '0' || r > '9') {
			return false
		}
	}
	return true
}

func kindName(kind lexer.TokenType) string {
	for _, name := range []string{"if", "else", "while", "return", "type"} {
		if k, _ := lexer.KindByName(name); k == kind {
			return name
		}
	}
	return kind.Name()
}

// sortedNames returns the keys of m in sorted order.
func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
