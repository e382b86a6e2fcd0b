// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// MatVec computes the row activities y = m·x, e.g. a_i·x for every
// constraint row of a model at a candidate point x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense does one flat pass per row and skips zero x[j].
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf("MatVec", err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, validatorErrorf("MatVec", err)
	}
	y := make([]float64, m.Rows())

	if d, ok := m.(*Dense); ok {
		var (
			i, j, base int
			acc        float64
		)
		for i = 0; i < d.r; i++ {
			acc, base = 0, i*d.c
			for j = 0; j < d.c; j++ {
				if x[j] != 0 {
					acc += d.data[base+j] * x[j]
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, validatorErrorf("MatVec", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += v * x[j]
		}
	}

	return y, nil
}
