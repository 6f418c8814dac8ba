package alloc

import (
	"github.com/vkngwrapper/gralloc/format"
	"github.com/vkngwrapper/gralloc/memutils"
)

// PlaneLayout describes one color plane of a finished allocation. Planes
// are ordered luma-first; plane 0 always starts at offset 0.
type PlaneLayout struct {
	// Offset is the plane's byte offset from the start of the allocation.
	Offset int
	// ByteStride is the byte distance between rows (or block rows for
	// compressed layouts).
	ByteStride int
	// AllocWidth and AllocHeight are the plane's dimensions in pixels after
	// all alignment has been applied.
	AllocWidth  int
	AllocHeight int
}

// planeDimensions computes the aligned pixel dimensions for one plane,
// starting from the requested (usage-adjusted) buffer dimensions.
func planeDimensions(width, height int, info *format.Info, at AllocType, plane int, hasCPUUsage bool) (int, int) {
	// Round up to whole samples for all channels and to whole memory words
	// for packed formats.
	w := memutils.AlignUpMultiple(width, info.AlignW)
	h := memutils.AlignUpMultiple(height, info.AlignH)

	// Sub-sample chroma planes.
	if plane > 0 {
		w /= info.HSub
		h /= info.VSub
	}

	pixelAlignW := 1
	pixelAlignH := 1
	if hasCPUUsage {
		pixelAlignW = info.AlignWCPU
	} else {
		switch t := at.(type) {
		case AFBCType:
			sb := t.PlaneSuperblock(plane)

			superblockAlign := 0
			if t.Padded && !info.IsYUV {
				// Align to 4 superblocks in width, i.e. a 64-byte header
				// stride at 16 bytes per superblock header.
				superblockAlign = 4
			}
			pixelAlignW = superblockAlign * sb.Width

			// Tiled headers group superblocks into larger compression
			// tiles; the plane must cover whole tiles.
			tile := sb
			if t.TiledHeaders {
				if info.BPPAFBC[plane] > 32 {
					tile.Width *= 4
					tile.Height *= 4
				} else {
					tile.Width *= 8
					tile.Height *= 8
				}
			}

			pixelAlignW = memutils.Max(pixelAlignW, tile.Width)
			pixelAlignH = memutils.Max(pixelAlignH, tile.Height)

			if t.Kind == BlockWide && !t.TiledHeaders {
				// Wide block with linear headers: the hardware reads and
				// writes 32x16 blocks even though headers are 32x8, so the
				// body buffer needs the extra height. Multi-plane never
				// takes this branch since it requires tiled headers.
				pixelAlignH = memutils.Max(pixelAlignH, 16)
			}
		case AFRCType:
			pixelAlignW = t.PagingTile.Width * t.ClumpWidth[plane]
			pixelAlignH = t.PagingTile.Height * t.ClumpHeight[plane]
		case BlockLinearType:
			pixelAlignW = 16
			pixelAlignH = 16
		}
	}

	w = memutils.AlignUpMultiple(w, memutils.Max(1, pixelAlignW, info.TileSize))
	h = memutils.AlignUpMultiple(h, memutils.Max(1, pixelAlignH, info.TileSize))
	return w, h
}
