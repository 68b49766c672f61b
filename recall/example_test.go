package recall_test

import (
	"fmt"

	"github.com/katalvlaran/hopnet/hebbian"
	"github.com/katalvlaran/hopnet/pattern"
	"github.com/katalvlaran/hopnet/recall"
)

// ExampleRecall stores one pattern and recalls it from a probe with one flipped unit.
func ExampleRecall() {
	memory := pattern.MustNew(1, -1, 1, -1)
	w, err := hebbian.Train[int64]([]pattern.Pattern{memory})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := recall.Recall(w, pattern.MustNew(-1, -1, 1, -1), recall.Options{Seed: 42})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Pattern, res.Epochs, res.Converged)
	// Output:
	// +-+- 2 true
}
