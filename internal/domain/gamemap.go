package domain

// GameMap is a square board. Walls[r][c] is true where a wall stands. The
// two spawn cells are (Rows-2, 1) and (1, Cols-2).
type GameMap struct {
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Walls [][]bool `json:"walls"`
}

// IsWall reports whether (r, c) is a wall. Cells outside the board count as walls.
func (m *GameMap) IsWall(r, c int) bool {
	if r < 0 || r >= m.Rows || c < 0 || c >= m.Cols {
		return true
	}
	return m.Walls[r][c]
}
