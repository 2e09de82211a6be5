package assignment_test

import (
	"fmt"

	"github.com/katalvlaran/asap/assignment"
	"github.com/katalvlaran/asap/sparse"
)

// ExampleMinWeightFullBipartiteMatching reproduces the debug script:
//
//	[[1 0 2]
//	 [0 0 3]
//	 [4 5 6]]
//
// Row 1 can only take column 2, which forces row 0 onto column 0 and row 2
// onto column 1.
func ExampleMinWeightFullBipartiteMatching() {
	m, err := sparse.NewCSR(
		[]float64{1, 2, 3, 4, 5, 6},
		[]int{0, 2, 2, 0, 1, 2},
		[]int{0, 2, 3, 6},
		3, 3,
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	res, err := assignment.MinWeightFullBipartiteMatching(m, assignment.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	cost, _ := assignment.Cost(m, res)
	fmt.Println(res)
	fmt.Println("cost:", cost)
	// Output:
	// ([0 1 2], [0 2 1])
	// cost: 9
}

// ExampleMaximumBipartiteMatching shows the cardinality matching used as the
// feasibility check: only one of the two rows can be matched.
func ExampleMaximumBipartiteMatching() {
	b, _ := sparse.NewBuilder(2, 3)
	_ = b.Insert(0, 1, 7)
	_ = b.Insert(1, 1, 8)
	match, size := assignment.MaximumBipartiteMatching(b.Build())
	fmt.Println(size, match)
	// Output:
	// 1 [1 -1]
}
