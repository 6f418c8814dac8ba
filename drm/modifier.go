package drm

import (
	"github.com/vkngwrapper/gralloc/alloc"
	"github.com/vkngwrapper/gralloc/format"
)

// Modifier is a DRM format modifier bitmask.
type Modifier uint64

// ModifierLinear is the zero modifier: plain linear layout.
const ModifierLinear Modifier = 0

const (
	vendorSamsung uint64 = 0x04
	vendorARM     uint64 = 0x08

	armTypeAFBC uint64 = 0x00
	armTypeAFRC uint64 = 0x02
)

// AFBC modifier payload bits.
const (
	afbcBlockSize16x16     uint64 = 1
	afbcBlockSize32x8      uint64 = 2
	afbcBlockSize64x4      uint64 = 3
	afbcBlockSize32x8_64x4 uint64 = 4

	afbcModYTR    uint64 = 1 << 4
	afbcModSplit  uint64 = 1 << 5
	afbcModSparse uint64 = 1 << 6
	afbcModTiled  uint64 = 1 << 8
	afbcModDB     uint64 = 1 << 10
	afbcModBCH    uint64 = 1 << 11
	afbcModUSM    uint64 = 1 << 12
)

// AFRC modifier payload bits.
const (
	afrcCUSize16 uint64 = 1
	afrcCUSize24 uint64 = 2
	afrcCUSize32 uint64 = 3

	afrcCUSizeP12Shift = 4

	afrcModLayoutScan uint64 = 1 << 8
)

// ModifierGeneric16x16Tile is the fixed tag for generic block-linear tiling.
var ModifierGeneric16x16Tile = vendorModifier(vendorSamsung, 2)

func vendorModifier(vendor, value uint64) Modifier {
	return Modifier(vendor<<56 | value)
}

func armModifier(armType, value uint64) Modifier {
	return vendorModifier(vendorARM, armType<<52|value&0xfffffffffffff)
}

// FourCCFromDescriptor maps the descriptor's resolved format to its DRM
// fourcc. Returns FormatInvalid when no mapping exists.
func FourCCFromDescriptor(descriptor *alloc.BufferDescriptor) FourCC {
	entry, ok := table.Get(descriptor.AllocFormat.FormatID())
	if !ok {
		return FormatInvalid
	}

	// The internal RGB565 representation describes two different component
	// orderings depending on block compression.
	if _, isAFBC := descriptor.AllocType.(alloc.AFBCType); isAFBC &&
		descriptor.AllocFormat.FormatID() == format.RGB565 {
		return FormatBGR565
	}

	return entry.fourcc
}

// ModifierFromDescriptor derives the DRM format modifier for the
// descriptor's allocation type. Uncompressed and unmapped layouts report
// ModifierLinear.
func ModifierFromDescriptor(descriptor *alloc.BufferDescriptor) Modifier {
	switch t := descriptor.AllocType.(type) {
	case alloc.AFBCType:
		return afbcModifier(t, descriptor.PlaneCount > 1)
	case alloc.AFRCType:
		return afrcModifier(t, descriptor)
	case alloc.BlockLinearType:
		return ModifierGeneric16x16Tile
	}
	return ModifierLinear
}

func afbcModifier(t alloc.AFBCType, multiPlane bool) Modifier {
	var modifier uint64

	if t.SplitBlock {
		modifier |= afbcModSplit
	}
	if t.TiledHeaders {
		modifier |= afbcModTiled
	}
	if t.FrontBufferSafe {
		modifier |= afbcModDB
	}
	if t.BufferContentHints {
		modifier |= afbcModBCH
	}
	if t.YUVTransform {
		modifier |= afbcModYTR
	}
	if t.Sparse {
		modifier |= afbcModSparse
	}
	if t.USM {
		modifier |= afbcModUSM
	}

	switch t.Kind {
	case alloc.BlockWide:
		if multiPlane {
			modifier |= afbcBlockSize32x8_64x4
		} else {
			modifier |= afbcBlockSize32x8
		}
	case alloc.BlockExtraWide:
		modifier |= afbcBlockSize64x4
	default:
		modifier |= afbcBlockSize16x16
	}

	return armModifier(armTypeAFBC, modifier)
}

func afrcModifier(t alloc.AFRCType, descriptor *alloc.BufferDescriptor) Modifier {
	entry, ok := table.Get(descriptor.AllocFormat.FormatID())
	if !ok {
		return ModifierLinear
	}

	var modifier uint64
	if !t.RotatedLayout {
		modifier |= afrcModLayoutScan
	}

	if entry.model == colorModelYUV && descriptor.PlaneCount > 1 {
		modifier |= afrcCUSizeClass(t.LumaCodingUnitBytes)
		modifier |= afrcCUSizeClass(t.ChromaCodingUnitBytes) << afrcCUSizeP12Shift
	} else {
		modifier |= afrcCUSizeClass(t.LumaCodingUnitBytes)
	}

	return armModifier(armTypeAFRC, modifier)
}

func afrcCUSizeClass(codingUnitBytes int) uint64 {
	switch codingUnitBytes {
	case 16:
		return afrcCUSize16
	case 24:
		return afrcCUSize24
	case 32:
		return afrcCUSize32
	}
	return 0
}
