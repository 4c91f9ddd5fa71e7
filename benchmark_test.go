package xgxreport

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func buildDeepChain(depth int) error {
	var err error = errors.New("leaf\nwith a second line")
	for i := depth - 1; i >= 0; i-- {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}
	return err
}

func BenchmarkRenderNoCause(b *testing.B) {
	err := errors.New("boom")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Render(io.Discard, err, false)
	}
}

func BenchmarkRenderDeep(b *testing.B) {
	err := buildDeepChain(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Render(io.Discard, err, false)
	}
}

func BenchmarkRenderAlternate(b *testing.B) {
	err := buildDeepChain(8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Render(io.Discard, err, true)
	}
}

func BenchmarkSprintDeep(b *testing.B) {
	err := buildDeepChain(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Sprint(err)
	}
}

func BenchmarkCausesDeep(b *testing.B) {
	err := buildDeepChain(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Causes(err)
	}
}
