package hebbian_test

import (
	"fmt"

	"github.com/katalvlaran/hopnet/hebbian"
	"github.com/katalvlaran/hopnet/pattern"
)

// ExampleTrain stores one 4-unit pattern and prints the weight matrix.
func ExampleTrain() {
	p := pattern.MustNew(1, -1, 1, -1)

	w, err := hebbian.Train[int64]([]pattern.Pattern{p})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(w)
	// Output:
	// [0, -1, 1, -1]
	// [-1, 0, -1, 1]
	// [1, -1, 0, -1]
	// [-1, 1, -1, 0]
}
