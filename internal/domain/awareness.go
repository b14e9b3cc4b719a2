package domain

// AwarenessMap - per-tile belief weights an AI uses to track a probable
// but unobserved player position. Two grids are kept so a diffusion
// step can read one while writing the other.
type AwarenessMap struct {
	Weights    [][]float64
	altWeights [][]float64
	Width      int
	Height     int
}

func NewAwarenessMap(width, height int) *AwarenessMap {
	weights := make([][]float64, height)
	alt := make([][]float64, height)
	for y := 0; y < height; y++ {
		weights[y] = make([]float64, width)
		alt[y] = make([]float64, width)
	}
	return &AwarenessMap{
		Weights:    weights,
		altWeights: alt,
		Width:      width,
		Height:     height,
	}
}

// ExpectedPosition collapses the whole map to certainty at one tile.
// Used on a direct sighting.
func (a *AwarenessMap) ExpectedPosition(pos Position) {
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if x == pos.X && y == pos.Y {
				a.Weights[y][x] = 1.0
			} else {
				a.Weights[y][x] = 0.0
			}
		}
	}
}

// Visible zeroes the belief at a directly observed tile: the player is
// known not to be there.
func (a *AwarenessMap) Visible(pos Position) {
	if pos.X >= 0 && pos.X < a.Width && pos.Y >= 0 && pos.Y < a.Height {
		a.Weights[pos.Y][pos.X] = 0.0
	}
}

// Disperse spreads a fraction of each tile's weight to its open
// neighbors, modeling a target that may have kept moving. Weight never
// leaks into blocked tiles. The rate is the fraction given away, split
// evenly among open neighbors.
func (a *AwarenessMap) Disperse(m *Map, rate float64) {
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			a.altWeights[y][x] = 0.0
		}
	}

	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			weight := a.Weights[y][x]
			if weight <= 0.0 {
				continue
			}

			var open []Position
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					pos := Position{X: x + dx, Y: y + dy}
					if m.InBounds(pos) && !m.IsBlocked(pos) {
						open = append(open, pos)
					}
				}
			}

			if len(open) == 0 {
				a.altWeights[y][x] += weight
				continue
			}

			spread := weight * rate
			a.altWeights[y][x] += weight - spread
			share := spread / float64(len(open))
			for _, pos := range open {
				a.altWeights[pos.Y][pos.X] += share
			}
		}
	}

	a.Weights, a.altWeights = a.altWeights, a.Weights
}

// Peak returns the tile with the highest belief weight and that weight.
// Ties resolve to the first tile in row-major order for determinism.
func (a *AwarenessMap) Peak() (Position, float64) {
	best := Position{}
	bestWeight := 0.0
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.Weights[y][x] > bestWeight {
				bestWeight = a.Weights[y][x]
				best = Position{X: x, Y: y}
			}
		}
	}
	return best, bestWeight
}
