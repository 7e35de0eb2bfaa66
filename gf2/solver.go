package gf2

// Solve solves A x = b over GF(2) for every right-hand-side column of B,
// returning one *Vector (non-nil) per solvable column and nil for columns
// with no solution.
//
// Stage 1 (Validate): shapes, A m×n, B m×k.
// Stage 2 (Prepare): build the augmented matrix [A | B] and reduce it to
// reduced row-echelon form (RREF), recording each row's pivot column.
// Stage 3 (Execute): per right-hand side, detect inconsistency, then
// among all solutions pick the one of minimum Hamming weight, breaking
// ties by the lexicographically smallest free-variable bit pattern.
// Stage 4 (Finalize): return the k-length result slice.
//
// Determinism: identical (A, B) always yields an identical result slice;
// this is relied upon by every finder for maximally-delayed layering.
//
// Complexity: Θ(m·(n+k)²/w) for elimination, plus Θ(2^f · n) for the
// minimum-weight search where f = n - rank(A) is the free-variable count.
// Finders are constructed so f stays small in practice (spec.md §4.B).
func Solve(a, b *Matrix) ([]*Vector, error) {
	if a == nil || b == nil {
		return nil, gf2Errorf("Solve", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() {
		return nil, gf2Errorf("Solve", ErrDimensionMismatch)
	}
	m, n, k := a.Rows(), a.Cols(), b.Cols()

	aug, err := NewMatrix(m, n+k)
	if err != nil {
		return nil, gf2Errorf("Solve", err)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if a.Get(i, j) {
				_ = aug.Set(i, j, true)
			}
		}
		for j := 0; j < k; j++ {
			if b.Get(i, j) {
				_ = aug.Set(i, n+j, true)
			}
		}
	}

	pivotOfRow := gaussJordan(aug, n)

	pivotCols := make(map[int]int, m) // column -> row
	for r, c := range pivotOfRow {
		if c >= 0 {
			pivotCols[c] = r
		}
	}
	freeCols := make([]int, 0, n-len(pivotCols))
	for c := 0; c < n; c++ {
		if _, ok := pivotCols[c]; !ok {
			freeCols = append(freeCols, c)
		}
	}

	out := make([]*Vector, k)
	for j := 0; j < k; j++ {
		out[j] = solveColumn(aug, n, j, pivotOfRow, freeCols)
	}
	return out, nil
}

// gaussJordan reduces aug to RREF in place, restricting pivot search to the
// first pivotLimit columns (the A-part; the B-part rides along as the
// right-hand side). Returns, per row, its pivot column or -1.
func gaussJordan(aug *Matrix, pivotLimit int) []int {
	rows := aug.Rows()
	pivotOfRow := make([]int, rows)
	for i := range pivotOfRow {
		pivotOfRow[i] = -1
	}

	pr := 0 // next row to place a pivot into
	for col := 0; col < pivotLimit && pr < rows; col++ {
		sel := -1
		for r := pr; r < rows; r++ {
			if aug.Get(r, col) {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		_ = aug.SwapRows(pr, sel)
		for r := 0; r < rows; r++ {
			if r != pr && aug.Get(r, col) {
				_ = aug.XORRowInto(r, pr)
			}
		}
		pivotOfRow[pr] = col
		pr++
	}
	return pivotOfRow
}

// solveColumn derives the minimum-weight solution for right-hand-side
// column j of the reduced augmented matrix, or nil if inconsistent.
func solveColumn(aug *Matrix, n, j int, pivotOfRow []int, freeCols []int) *Vector {
	rows := aug.Rows()
	bCol := n + j

	for r := 0; r < rows; r++ {
		if pivotOfRow[r] == -1 && aug.Get(r, bCol) {
			return nil // zero A-row, nonzero RHS: inconsistent
		}
	}

	f := len(freeCols)
	if f == 0 {
		x, _ := NewVector(n)
		for r := 0; r < rows; r++ {
			if c := pivotOfRow[r]; c >= 0 {
				x.Set(c, aug.Get(r, bCol))
			}
		}
		return &x
	}

	var best *Vector
	bestWeight := -1
	total := 1 << uint(f)
	for mask := 0; mask < total; mask++ {
		x, _ := NewVector(n)
		for bit, col := range freeCols {
			if mask&(1<<uint(bit)) != 0 {
				x.Set(col, true)
			}
		}
		for r := 0; r < rows; r++ {
			c := pivotOfRow[r]
			if c < 0 {
				continue
			}
			val := aug.Get(r, bCol)
			for _, fc := range freeCols {
				if aug.Get(r, fc) && x.Get(fc) {
					val = !val
				}
			}
			x.Set(c, val)
		}
		w := x.PopCount()
		if bestWeight == -1 || w < bestWeight {
			bestWeight = w
			best = &x
		}
	}
	return best
}
