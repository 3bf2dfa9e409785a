package internal

import (
	"strings"
	"testing"
)

var benchSource = strings.Repeat("(1.5 + -2) * 3 / \"abc\" != !nil == ", 200) + "true"

func BenchmarkScan(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Scan(benchSource, nil)
	}
}

func BenchmarkParse(b *testing.B) {
	toks := Scan(benchSource, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(toks, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRunSource(b *testing.B) {
	d, _ := newTestDiagnostics()
	for i := 0; i < b.N; i++ {
		if _, _, err := RunSource(benchSource, d); err != nil {
			b.Fatal(err)
		}
	}
}
