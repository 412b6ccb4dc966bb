package nullspace_test

import (
	"fmt"

	"github.com/katalvlaran/planar/matrix"
	"github.com/katalvlaran/planar/nullspace"
)

// ExampleJacobi_Solve picks the eigenvector of the smallest eigenvalue.
func ExampleJacobi_Solve() {
	a, _ := matrix.NewDenseFrom(3, 3, []float64{
		3, 0, 0,
		0, 1, 0,
		0, 0, 2,
	})
	res, err := nullspace.NewJacobi().Solve(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("λ=%.3f v=%.3f\n", res.Eigenvalue, res.Vector)
	// Output:
	// λ=1.000 v=[0.000 1.000 0.000]
}

// ExampleParseKind resolves a solver from a configuration string.
func ExampleParseKind() {
	k, _ := nullspace.ParseKind("Power")
	_, err := nullspace.ParseKind("svd")
	fmt.Println(k)
	fmt.Println(err)
	// Output:
	// power
	// "svd": nullspace: unknown solver
}
