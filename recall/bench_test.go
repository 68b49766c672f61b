package recall_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hopnet/hebbian"
	"github.com/katalvlaran/hopnet/pattern"
	"github.com/katalvlaran/hopnet/recall"
)

// BenchmarkRecall measures one relaxation of a random probe for growing N.
func BenchmarkRecall(b *testing.B) {
	for _, n := range []int{64, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			ps := []pattern.Pattern{randomPattern(rng, n), randomPattern(rng, n)}
			w, err := hebbian.Train[int64](ps)
			if err != nil {
				b.Fatal(err)
			}
			probe := randomPattern(rng, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err = recall.Recall(w, probe, recall.Options{Seed: int64(i + 1)}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRecallBatch measures 64 probes across the default worker count.
func BenchmarkRecallBatch(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	const n = 128
	ps := []pattern.Pattern{randomPattern(rng, n), randomPattern(rng, n)}
	w, err := hebbian.Train[int64](ps)
	if err != nil {
		b.Fatal(err)
	}
	probes := make([]pattern.Pattern, 64)
	for i := range probes {
		probes[i] = randomPattern(rng, n)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = recall.RecallBatch(context.Background(), w, probes, recall.Options{Seed: 5}, 0); err != nil {
			b.Fatal(err)
		}
	}
}
