package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	info, ok := Lookup(NV12)
	require.True(t, ok)
	require.Equal(t, "NV12", info.Name)
	require.Equal(t, 2, info.PlaneCount)

	_, ok = Lookup(Invalid)
	require.False(t, ok)
	_, ok = Lookup(ID(0x7fffffff))
	require.False(t, ok)
}

func TestTableInvariants(t *testing.T) {
	for i := range formats {
		info := &formats[i]

		require.NotEqual(t, Invalid, info.ID, "entry %d has no id", i)
		require.NotEmpty(t, info.Name)
		require.True(t, info.PlaneCount >= 1 && info.PlaneCount <= MaxPlanes,
			"%s has %d planes", info.Name, info.PlaneCount)
		require.True(t, info.HSub >= 1 && info.VSub >= 1, "%s subsampling", info.Name)
		require.True(t, info.AlignW >= 1 && info.AlignH >= 1, "%s alignment", info.Name)
		require.True(t, info.AlignWCPU >= 1, "%s CPU alignment", info.Name)
		require.True(t, info.TileSize >= 1, "%s tile size", info.Name)

		// Every format must have at least one layout family.
		require.True(t, info.Linear || info.AFBC || info.AFRC || info.BlockLinear,
			"%s has no layout family", info.Name)

		for plane := 0; plane < info.PlaneCount; plane++ {
			if info.Linear || info.BlockLinear {
				require.NotZero(t, info.BPP[plane], "%s plane %d bpp", info.Name, plane)
			}
			if info.AFBC {
				require.NotZero(t, info.BPPAFBC[plane], "%s plane %d compressed bpp", info.Name, plane)
			}
			require.NotZero(t, info.ComponentCount[plane], "%s plane %d components", info.Name, plane)
		}

		// Multi-plane formats must declare real subsampling factors so
		// plane geometry can divide by them.
		if info.PlaneCount > 1 {
			require.True(t, info.IsYUV, "%s multi-plane but not YUV", info.Name)
		}
	}
}

func TestIsSubsampled(t *testing.T) {
	nv12, _ := Lookup(NV12)
	require.True(t, nv12.IsSubsampled())

	// Packed 4:2:0 with a single plane still counts.
	y0l2, _ := Lookup(Y0L2)
	require.True(t, y0l2.IsSubsampled())

	rgba, _ := Lookup(RGBA8888)
	require.False(t, rgba.IsSubsampled())
}

func TestExtendedFormatSplit(t *testing.T) {
	extFmt := ExtendedFormat(NV12) | AFBCBasic | AFBCTiledHeaders | AFBCExtraWideBlock

	require.Equal(t, NV12, extFmt.FormatID())
	require.Equal(t, extFmt&^FormatMask, extFmt.Modifiers())
	require.True(t, extFmt.IsAFBC())
	require.False(t, extFmt.IsAFRC())
	require.False(t, extFmt.IsBlockLinear())
}

func TestAFRCCodingUnitFields(t *testing.T) {
	extFmt := ExtendedFormat(RGBA8888) | AFRCBasic |
		AFRCLumaCodingUnit(AFRCCodingUnitBytes24) |
		AFRCChromaCodingUnit(AFRCCodingUnitBytes32)

	require.True(t, extFmt.IsAFRC())
	require.Equal(t, 24, extFmt.LumaCodingUnitBytes())
	require.Equal(t, 32, extFmt.ChromaCodingUnitBytes())

	// The zero encoding is the 16-byte default.
	require.Equal(t, 16, ExtendedFormat(0).LumaCodingUnitBytes())

	// The reserved encoding decodes to no valid size.
	reserved := AFRCLumaCodingUnit(3)
	require.Equal(t, 0, reserved.LumaCodingUnitBytes())
}

func TestUsageAccessors(t *testing.T) {
	require.True(t, (UsageCPURead | UsageGPUTexture).HasCPUAccess())
	require.False(t, UsageGPUTexture.HasCPUAccess())

	require.True(t, (UsageCPUWrite | UsageDisplay).HasHardwareAccess())
	require.False(t, UsageCPUWrite.HasHardwareAccess())
	// Private usages steer allocation without touching pixels in hardware.
	require.False(t, (UsageCPUWrite | UsageAFBCPadding | UsageFrontBuffer).HasHardwareAccess())
}
