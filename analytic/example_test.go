// SPDX-License-Identifier: MIT

package analytic_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cauchy/analytic"
)

// ExampleFunction_Eval shows that a sample on the pole is reported rather
// than turned into an infinite value.
func ExampleFunction_Eval() {
	f := analytic.Function{Kind: analytic.Reciprocal}

	w, err := f.Eval(2)
	fmt.Println(w, err)

	_, err = f.Eval(0)
	fmt.Println(errors.Is(err, analytic.ErrSingularPoint))

	// Output:
	// (0.5+0i) <nil>
	// true
}
