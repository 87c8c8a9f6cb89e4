package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/barun-bash/cfront/internal/lexer"
	"github.com/barun-bash/cfront/internal/parser"
)

func loadSource(b *testing.B, example string) string {
	b.Helper()
	path := filepath.Join("..", "..", "examples", example, "main.cf")
	source, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("reading %s: %v", path, err)
	}
	return string(source)
}

func BenchmarkLexLoops(b *testing.B) {
	source := loadSource(b, "loops")
	b.ResetTimer()
	for b.Loop() {
		if _, diags := lexer.Tokenize(source, nil); len(diags) > 0 {
			b.Fatal(diags[0])
		}
	}
}

func BenchmarkParseTokensLoops(b *testing.B) {
	source := loadSource(b, "loops")
	tokens, diags := lexer.Tokenize(source, nil)
	if len(diags) > 0 {
		b.Fatal(diags[0])
	}
	b.ResetTimer()
	for b.Loop() {
		if _, diags := parser.ParseTokens(tokens, parser.Options{}); len(diags) > 0 {
			b.Fatal(diags[0])
		}
	}
}

func BenchmarkParseFunctions(b *testing.B) {
	source := loadSource(b, "functions")
	b.ResetTimer()
	for b.Loop() {
		if _, diags := parser.Parse(source); len(diags) > 0 {
			b.Fatal(diags[0])
		}
	}
}

func BenchmarkPrintFunctions(b *testing.B) {
	prog, diags := parser.Parse(loadSource(b, "functions"))
	if len(diags) > 0 {
		b.Fatal(diags[0])
	}
	b.ResetTimer()
	for b.Loop() {
		_ = parser.Print(prog)
	}
}
