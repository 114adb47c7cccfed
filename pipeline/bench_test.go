package pipeline

import (
	"context"
	"testing"
)

func benchmarkRefine(b *testing.B, tile int) {
	in := input(b, "bench", 2020, 42)
	p, err := New(testConfig(), WithTileSize(tile))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Refine(ctx, in); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRefine_Whole(b *testing.B) { benchmarkRefine(b, 0) }
func BenchmarkRefine_Tiled(b *testing.B) { benchmarkRefine(b, 16) }
