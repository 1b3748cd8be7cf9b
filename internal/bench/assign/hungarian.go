// Package assign solves the linear assignment problem: pairing the rows and
// columns of a square cost matrix one-to-one with minimum total cost.
package assign

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNotSquare    = errors.New("assign: cost matrix is not square")
	ErrInvalidCost  = errors.New("assign: cost is NaN or infinite")
	ErrNoAugmenting = errors.New("assign: no augmenting path found")
)

// Solve returns rowToCol, the column assigned to every row, such that the
// sum of cost[i][rowToCol[i]] is minimal.
//
// It runs the Hungarian method in its shortest augmenting path form with
// row and column potentials, O(n^3). Columns are scanned in index order
// and only strictly smaller reduced costs replace a candidate, so equal
// inputs always give the same permutation.
func Solve(cost [][]float64) ([]int, error) {
	n := len(cost)
	if err := validate(cost); err != nil {
		return nil, err
	}
	if n == 0 {
		return []int{}, nil
	}

	// 1-based internally; index 0 is the virtual source column.
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	colOwner := make([]int, n+1)
	way := make([]int, n+1)
	minv := make([]float64, n+1)
	used := make([]bool, n+1)

	for row := 1; row <= n; row++ {
		colOwner[0] = row
		j0 := 0
		for j := range minv {
			minv[j] = math.Inf(1)
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := colOwner[j0]
			delta := math.Inf(1)
			j1 := 0

			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 == 0 {
				return nil, fmt.Errorf("%w for row %d", ErrNoAugmenting, row-1)
			}

			for j := 0; j <= n; j++ {
				if used[j] {
					u[colOwner[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if colOwner[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			colOwner[j0] = colOwner[j1]
			j0 = j1
		}
	}

	rowToCol := make([]int, n)
	for j := 1; j <= n; j++ {
		rowToCol[colOwner[j]-1] = j - 1
	}
	return rowToCol, nil
}

// Total sums the cost of an assignment returned by Solve.
func Total(cost [][]float64, rowToCol []int) float64 {
	var sum float64
	for i, j := range rowToCol {
		sum += cost[i][j]
	}
	return sum
}

func validate(cost [][]float64) error {
	n := len(cost)
	for i, row := range cost {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), n)
		}
		for j, c := range row {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("%w at [%d][%d]", ErrInvalidCost, i, j)
			}
		}
	}
	return nil
}
