package alloc

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/gralloc/format"
	"golang.org/x/exp/slog"
)

// Rect is a width/height pair in pixels.
type Rect struct {
	Width  int
	Height int
}

// BlockKind selects the AFBC superblock geometry.
type BlockKind int

const (
	// BlockBasic is the 16x16 superblock.
	BlockBasic BlockKind = iota
	// BlockWide is the 32x8 superblock.
	BlockWide
	// BlockExtraWide is the 64x4 superblock.
	BlockExtraWide
)

// Superblock returns the pixel dimensions for the block kind.
func (k BlockKind) Superblock() Rect {
	switch k {
	case BlockWide:
		return Rect{Width: 32, Height: 8}
	case BlockExtraWide:
		return Rect{Width: 64, Height: 4}
	}
	return Rect{Width: 16, Height: 16}
}

// AllocType is the decoded allocation layout for a buffer. Classification
// produces exactly one of Uncompressed, AFBCType, AFRCType or
// BlockLinearType; geometry code switches on the concrete type and never
// re-reads the packed extended-format bits.
type AllocType interface {
	isAllocType()
}

// Uncompressed is plain linear layout.
type Uncompressed struct{}

func (Uncompressed) isAllocType() {}

// AFBCType is header/body superblock compression.
type AFBCType struct {
	// Kind is the primary superblock geometry. Multi-plane allocations use
	// extra-wide superblocks for planes after the first regardless of Kind.
	Kind BlockKind

	TiledHeaders    bool
	MultiPlane      bool
	Padded          bool
	FrontBufferSafe bool

	// The remaining modifiers do not affect alignment or size; they are
	// carried so the external tag mapper never has to re-decode raw bits.
	SplitBlock         bool
	BufferContentHints bool
	YUVTransform       bool
	Sparse             bool
	USM                bool
}

func (AFBCType) isAllocType() {}

// PlaneSuperblock returns the superblock dimensions used by the given plane.
func (t AFBCType) PlaneSuperblock(plane int) Rect {
	if plane > 0 && t.MultiPlane {
		return BlockExtraWide.Superblock()
	}
	return t.Kind.Superblock()
}

// AFRCType is fixed-ratio coding-unit compression.
type AFRCType struct {
	PagingTile    Rect
	RotatedLayout bool

	LumaCodingUnitBytes   int
	LumaPlaneAlignment    int
	ChromaCodingUnitBytes int
	ChromaPlaneAlignment  int

	ClumpWidth  [format.MaxPlanes]int
	ClumpHeight [format.MaxPlanes]int
}

func (AFRCType) isAllocType() {}

// CodingUnitBytes returns the per-plane coding unit size.
func (t AFRCType) CodingUnitBytes(plane int) int {
	if plane == 0 {
		return t.LumaCodingUnitBytes
	}
	return t.ChromaCodingUnitBytes
}

// PlaneAlignment returns the byte alignment the plane's first coding unit
// must start at.
func (t AFRCType) PlaneAlignment(plane int) int {
	if plane == 0 {
		return t.LumaPlaneAlignment
	}
	return t.ChromaPlaneAlignment
}

// BlockLinearType is generic 16x16 block-linear tiling.
type BlockLinearType struct{}

func (BlockLinearType) isAllocType() {}

// afrcPlaneAlignment maps a coding-unit byte size to the byte alignment the
// plane must satisfy. Returns 0 for coding-unit sizes the hardware does not
// define.
func afrcPlaneAlignment(codingUnitBytes int) int {
	switch codingUnitBytes {
	case 16:
		return 1024
	case 24:
		return 512
	case 32:
		return 2048
	}
	return 0
}

// classifyAllocType decodes the extended-format modifier bits against the
// format table entry into a concrete AllocType. Hard incompatibilities
// return an error wrapping ErrClassification; tolerated ones only log.
func classifyAllocType(extFmt format.ExtendedFormat, info *format.Info, usage format.Usage, logger *slog.Logger) (AllocType, error) {
	switch {
	case extFmt.IsAFBC():
		return classifyAFBC(extFmt, info, usage, logger)
	case extFmt.IsAFRC():
		return classifyAFRC(extFmt, info)
	case extFmt.IsBlockLinear():
		return BlockLinearType{}, nil
	}
	return Uncompressed{}, nil
}

func classifyAFBC(extFmt format.ExtendedFormat, info *format.Info, usage format.Usage, logger *slog.Logger) (AllocType, error) {
	if info.IsYUV && extFmt&format.AFBCYUVTransform != 0 {
		logger.Warn("YUV transform is incorrectly enabled for a YUV format",
			slog.String("Format", info.Name))
	}

	t := AFBCType{
		Kind:               BlockBasic,
		MultiPlane:         info.PlaneCount > 1,
		Padded:             usage&format.UsageAFBCPadding != 0,
		SplitBlock:         extFmt&format.AFBCSplitBlock != 0,
		BufferContentHints: extFmt&format.AFBCBufferContentHints != 0,
		YUVTransform:       extFmt&format.AFBCYUVTransform != 0,
		Sparse:             extFmt&format.AFBCSparse != 0,
		USM:                extFmt&format.AFBCUSM != 0,
	}

	if extFmt&format.AFBCWideBlock != 0 {
		t.Kind = BlockWide
	} else if extFmt&format.AFBCExtraWideBlock != 0 {
		t.Kind = BlockExtraWide
	}

	if extFmt&format.AFBCTiledHeaders != 0 {
		t.TiledHeaders = true

		if info.PlaneCount > 1 && extFmt&format.AFBCExtraWideBlock == 0 {
			logger.Warn("extra-wide block must be signalled for multi-plane formats, falling back to single plane",
				slog.String("Format", info.Name))
			t.MultiPlane = false
		}

		if extFmt&format.AFBCDoubleBody != 0 {
			t.FrontBufferSafe = true
		}
	} else {
		if info.PlaneCount > 1 {
			logger.Warn("multi-plane compression is not supported without tiled headers, falling back to single plane",
				slog.String("Format", info.Name))
		}
		t.MultiPlane = false
	}

	if extFmt&format.AFBCExtraWideBlock != 0 && !t.TiledHeaders {
		// Headers must be tiled for extra-wide.
		return nil, cerrors.Wrap(ErrClassification, "extra-wide block requires tiled headers")
	}

	if t.FrontBufferSafe && extFmt&(format.AFBCWideBlock|format.AFBCExtraWideBlock) != 0 {
		// The hardware tolerates this combination; it is only flagged.
		logger.Warn("front-buffer safe mode is not supported with wide/extra-wide block",
			slog.String("Format", info.Name))
	}

	if info.PlaneCount == 1 &&
		extFmt&format.AFBCWideBlock != 0 &&
		extFmt&format.AFBCExtraWideBlock != 0 {
		// "Wide + extra-wide" implicitly means "multi-plane".
		return nil, cerrors.Wrap(ErrClassification, "multi-plane block layout requested for a single-plane format")
	}

	return t, nil
}

func classifyAFRC(extFmt format.ExtendedFormat, info *format.Info) (AllocType, error) {
	t := AFRCType{
		PagingTile:    Rect{Width: 16, Height: 4},
		RotatedLayout: extFmt&format.AFRCRotLayout != 0,
	}
	if t.RotatedLayout {
		t.PagingTile = Rect{Width: 8, Height: 8}
	}

	t.LumaCodingUnitBytes = extFmt.LumaCodingUnitBytes()
	t.LumaPlaneAlignment = afrcPlaneAlignment(t.LumaCodingUnitBytes)
	if t.LumaPlaneAlignment == 0 {
		return nil, cerrors.Wrapf(ErrClassification, "invalid luma coding unit size (%d)", t.LumaCodingUnitBytes)
	}

	t.ChromaCodingUnitBytes = extFmt.ChromaCodingUnitBytes()
	t.ChromaPlaneAlignment = afrcPlaneAlignment(t.ChromaCodingUnitBytes)
	if t.ChromaPlaneAlignment == 0 {
		return nil, cerrors.Wrapf(ErrClassification, "invalid chroma coding unit size (%d)", t.ChromaCodingUnitBytes)
	}

	for plane := 0; plane < info.PlaneCount; plane++ {
		switch info.ComponentCount[plane] {
		case 1:
			t.ClumpWidth[plane] = t.PagingTile.Width
			t.ClumpHeight[plane] = t.PagingTile.Height
		case 2:
			t.ClumpWidth[plane] = 8
			t.ClumpHeight[plane] = 4
		case 3, 4:
			t.ClumpWidth[plane] = 4
			t.ClumpHeight[plane] = 4
		default:
			return nil, cerrors.Wrapf(ErrClassification, "invalid number of components in plane %d (%d)",
				plane, info.ComponentCount[plane])
		}
	}

	return t, nil
}
