package drm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/gralloc/alloc"
	"github.com/vkngwrapper/gralloc/format"
)

func TestModifierLinear(t *testing.T) {
	descriptor := &alloc.BufferDescriptor{
		AllocFormat: format.ExtendedFormat(format.RGBA8888),
		AllocType:   alloc.Uncompressed{},
		PlaneCount:  1,
	}
	require.Equal(t, ModifierLinear, ModifierFromDescriptor(descriptor))
}

var afbcModifierCases = map[string]struct {
	Type       alloc.AFBCType
	PlaneCount int
	Payload    uint64
}{
	"Basic 16x16": {
		Type:       alloc.AFBCType{Kind: alloc.BlockBasic},
		PlaneCount: 1,
		Payload:    afbcBlockSize16x16,
	},
	"Tiled Sparse": {
		Type:       alloc.AFBCType{Kind: alloc.BlockBasic, TiledHeaders: true, Sparse: true},
		PlaneCount: 1,
		Payload:    afbcBlockSize16x16 | afbcModTiled | afbcModSparse,
	},
	"Wide": {
		Type:       alloc.AFBCType{Kind: alloc.BlockWide},
		PlaneCount: 1,
		Payload:    afbcBlockSize32x8,
	},
	"Wide Multi-Plane": {
		// Two-plane wide compression advertises the mixed 32x8/64x4 block
		// size since chroma planes always take extra-wide superblocks.
		Type: alloc.AFBCType{
			Kind:         alloc.BlockWide,
			TiledHeaders: true,
			MultiPlane:   true,
		},
		PlaneCount: 2,
		Payload:    afbcBlockSize32x8_64x4 | afbcModTiled,
	},
	"Extra-Wide Tiled": {
		Type:       alloc.AFBCType{Kind: alloc.BlockExtraWide, TiledHeaders: true},
		PlaneCount: 1,
		Payload:    afbcBlockSize64x4 | afbcModTiled,
	},
	"Front-Buffer Safe": {
		Type: alloc.AFBCType{
			Kind:            alloc.BlockBasic,
			TiledHeaders:    true,
			FrontBufferSafe: true,
		},
		PlaneCount: 1,
		Payload:    afbcBlockSize16x16 | afbcModTiled | afbcModDB,
	},
	"All Hint Bits": {
		Type: alloc.AFBCType{
			Kind:               alloc.BlockBasic,
			SplitBlock:         true,
			BufferContentHints: true,
			YUVTransform:       true,
			USM:                true,
		},
		PlaneCount: 1,
		Payload: afbcBlockSize16x16 | afbcModSplit | afbcModBCH |
			afbcModYTR | afbcModUSM,
	},
}

func TestAFBCModifier(t *testing.T) {
	for name, testCase := range afbcModifierCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			descriptor := &alloc.BufferDescriptor{
				AllocFormat: format.ExtendedFormat(format.RGBA8888),
				AllocType:   testCase.Type,
				PlaneCount:  testCase.PlaneCount,
			}
			expected := armModifier(armTypeAFBC, testCase.Payload)
			require.Equal(t, expected, ModifierFromDescriptor(descriptor))
		})
	}
}

func TestAFRCModifierSinglePlane(t *testing.T) {
	descriptor := &alloc.BufferDescriptor{
		AllocFormat: format.ExtendedFormat(format.RGBA8888) | format.AFRCBasic,
		AllocType: alloc.AFRCType{
			PagingTile:            alloc.Rect{Width: 8, Height: 8},
			RotatedLayout:         true,
			LumaCodingUnitBytes:   32,
			ChromaCodingUnitBytes: 16,
		},
		PlaneCount: 1,
	}

	// Rotated layout omits the scan bit; RGB carries only the P0 class.
	expected := armModifier(armTypeAFRC, afrcCUSize32)
	require.Equal(t, expected, ModifierFromDescriptor(descriptor))
}

func TestAFRCModifierMultiPlane(t *testing.T) {
	descriptor := &alloc.BufferDescriptor{
		AllocFormat: format.ExtendedFormat(format.NV12) | format.AFRCBasic,
		AllocType: alloc.AFRCType{
			PagingTile:            alloc.Rect{Width: 16, Height: 4},
			LumaCodingUnitBytes:   16,
			ChromaCodingUnitBytes: 16,
		},
		PlaneCount: 2,
	}

	expected := armModifier(armTypeAFRC,
		afrcModLayoutScan|afrcCUSize16|afrcCUSize16<<afrcCUSizeP12Shift)
	require.Equal(t, expected, ModifierFromDescriptor(descriptor))
	require.Equal(t, Modifier(0x0820000000000111), expected)
}

func TestBlockLinearModifier(t *testing.T) {
	descriptor := &alloc.BufferDescriptor{
		AllocFormat: format.ExtendedFormat(format.NV12) | format.BlockLinearBasic,
		AllocType:   alloc.BlockLinearType{},
		PlaneCount:  2,
	}
	require.Equal(t, ModifierGeneric16x16Tile, ModifierFromDescriptor(descriptor))
	require.Equal(t, Modifier(0x0400000000000002), ModifierGeneric16x16Tile)
}
