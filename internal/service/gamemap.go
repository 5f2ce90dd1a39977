package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"kob-backend/internal/domain"
)

const (
	DefaultMapSize       = 13
	DefaultInnerWalls    = 20
	maxMapAttempts       = 1000
	maxPlacementAttempts = 1000
)

// ErrNoConnectedMap is returned when no attempt produced a board whose spawn
// cells are connected.
var ErrNoConnectedMap = errors.New("could not generate a connected map")

// GameMapService builds random boards for a match.
type GameMapService interface {
	Generate(ctx context.Context) (*domain.GameMap, error)
}

type gameMapService struct {
	size       int
	innerWalls int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGameMapService returns a generator for size x size boards. A nil rng
// gets a randomly seeded PCG source.
func NewGameMapService(size, innerWalls int, rng *rand.Rand) GameMapService {
	if size < 4 {
		size = DefaultMapSize
	}
	if innerWalls < 0 {
		innerWalls = DefaultInnerWalls
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &gameMapService{
		size:       size,
		innerWalls: innerWalls,
		rng:        rng,
	}
}

func (s *gameMapService) Generate(ctx context.Context) (*domain.GameMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < maxMapAttempts; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m := s.placeWalls()
		if connected(m, m.Rows-2, 1, 1, m.Cols-2) {
			return m, nil
		}
	}
	return nil, ErrNoConnectedMap
}

// placeWalls puts walls on the border and innerWalls/2 mirrored pairs of
// inner walls, symmetric across the main diagonal. Spawn cells stay free.
func (s *gameMapService) placeWalls() *domain.GameMap {
	n := s.size
	g := make([][]bool, n)
	for r := range g {
		g[r] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		g[i][0], g[i][n-1] = true, true
		g[0][i], g[n-1][i] = true, true
	}

	for i := 0; i < s.innerWalls/2; i++ {
		for j := 0; j < maxPlacementAttempts; j++ {
			r, c := s.rng.IntN(n), s.rng.IntN(n)
			if g[r][c] || g[c][r] {
				continue
			}
			if (r == n-2 && c == 1) || (r == 1 && c == n-2) {
				continue
			}
			g[r][c], g[c][r] = true, true
			break
		}
	}

	return &domain.GameMap{Rows: n, Cols: n, Walls: g}
}

// connected flood-fills from (sr, sc) and reports whether (tr, tc) is reachable.
func connected(m *domain.GameMap, sr, sc, tr, tc int) bool {
	seen := make([][]bool, m.Rows)
	for r := range seen {
		seen[r] = make([]bool, m.Cols)
	}

	type cell struct{ r, c int }
	stack := []cell{{sr, sc}}
	seen[sr][sc] = true
	dr := [4]int{-1, 0, 1, 0}
	dc := [4]int{0, 1, 0, -1}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.r == tr && cur.c == tc {
			return true
		}
		for i := 0; i < 4; i++ {
			r, c := cur.r+dr[i], cur.c+dc[i]
			if m.IsWall(r, c) || seen[r][c] {
				continue
			}
			seen[r][c] = true
			stack = append(stack, cell{r, c})
		}
	}
	return false
}
