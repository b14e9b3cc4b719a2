package dungeon

import (
	"crawl-server/internal/domain"
)

// WithSurfaces decorates open floor with grass and rubble patches.
// Purely cosmetic for now; surfaces are carried on tiles so future
// rules (quiet grass, noisy rubble) have somewhere to hook in.
func (b *LevelBuilder) WithSurfaces() *LevelBuilder {
	if b.err != nil {
		return b
	}

	b.scatterSurface(domain.SurfaceGrass, 3)
	b.scatterSurface(domain.SurfaceRubble, 2)
	return b
}

// scatterSurface paints small blobs of the given surface around random
// floor seeds.
func (b *LevelBuilder) scatterSurface(surface domain.Surface, patches int) {
	for i := 0; i < patches; i++ {
		seed, ok := b.randomFloor()
		if !ok {
			return
		}
		size := b.randRange(2, 4)
		for dy := -size / 2; dy <= size/2; dy++ {
			for dx := -size / 2; dx <= size/2; dx++ {
				pos := seed.Shift(dx, dy)
				if !b.m.InBounds(pos) || b.m.IsBlocked(pos) {
					continue
				}
				b.m.At(pos).Surface = surface
			}
		}
	}
}
