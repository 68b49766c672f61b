package hebbian_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hopnet/hebbian"
	"github.com/katalvlaran/hopnet/pattern"
)

// BenchmarkTrain measures outer-product accumulation for growing N with M=10.
func BenchmarkTrain(b *testing.B) {
	for _, n := range []int{64, 256, 1024} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			ps := make([]pattern.Pattern, 10)
			for k := range ps {
				v := make([]int, n)
				for i := range v {
					v[i] = rng.Intn(2)*2 - 1
				}
				ps[k] = pattern.MustNew(v...)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := hebbian.Train[int64](ps); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
