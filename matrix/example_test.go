package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hopnet/matrix"
)

// ExampleValidateHopfield shows the checks every weight matrix must pass.
func ExampleValidateHopfield() {
	good, _ := matrix.FromRows([][]int64{{0, -1}, {-1, 0}})
	bad, _ := matrix.FromRows([][]int64{{0, 2}, {1, 0}})

	fmt.Println(matrix.ValidateHopfield(good))
	fmt.Println(errors.Is(matrix.ValidateHopfield(bad), matrix.ErrAsymmetry))
	// Output:
	// <nil>
	// true
}

// ExampleDense_ColumnDot computes the net input of unit 1 for state [+1,-1,+1].
func ExampleDense_ColumnDot() {
	w, _ := matrix.FromRows([][]int64{
		{0, 1, -1},
		{1, 0, 1},
		{-1, 1, 0},
	})
	net, _ := w.ColumnDot(1, []int8{1, -1, 1})
	fmt.Println(net)
	// Output:
	// 2
}
