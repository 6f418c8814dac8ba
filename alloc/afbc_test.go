package alloc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/gralloc/format"
)

func headerWords(t *testing.T, buf []byte, entry int) [4]uint32 {
	t.Helper()
	var words [4]uint32
	for w := 0; w < 4; w++ {
		words[w] = binary.LittleEndian.Uint32(buf[entry*afbcHeaderBytesPerBlock+w*4:])
	}
	return words
}

func TestInitAFBCHeadersNonSubsampled(t *testing.T) {
	info := lookupFormat(t, format.RGBA8888)

	// 112x112 is 49 superblocks; 784 header bytes round up to a 1024-byte
	// body offset.
	buf := make([]byte, 49*afbcHeaderBytesPerBlock)
	err := InitAFBCHeaders(buf, info, AFBCType{Kind: BlockBasic}, 112, 112)
	require.NoError(t, err)

	expected := [4]uint32{1024, 0x1, 0x10000, 0x0}
	require.Equal(t, expected, headerWords(t, buf, 0))
	require.Equal(t, expected, headerWords(t, buf, 48))
}

func TestInitAFBCHeadersSubsampledYUV(t *testing.T) {
	info := lookupFormat(t, format.YUV420_8BitI)

	buf := make([]byte, 64*afbcHeaderBytesPerBlock)
	err := InitAFBCHeaders(buf, info, AFBCType{Kind: BlockBasic}, 128, 128)
	require.NoError(t, err)

	expected := [4]uint32{1<<28 + 1024, 0x80200040, 0x1004000, 0x20080}
	require.Equal(t, expected, headerWords(t, buf, 0))
	require.Equal(t, expected, headerWords(t, buf, 63))
}

func TestInitAFBCHeadersTiledNonSubsampled(t *testing.T) {
	info := lookupFormat(t, format.RGBA8888)

	buf := make([]byte, 64*afbcHeaderBytesPerBlock)
	for i := range buf {
		buf[i] = 0xff
	}
	err := InitAFBCHeaders(buf, info, AFBCType{Kind: BlockBasic, TiledHeaders: true}, 128, 128)
	require.NoError(t, err)

	// Tiled headers for non-subsampled formats are cleared to zero.
	require.Equal(t, [4]uint32{}, headerWords(t, buf, 0))
	require.Equal(t, [4]uint32{}, headerWords(t, buf, 63))
}

func TestInitAFBCHeadersMultiPlaneUsesNonSubsampledLayout(t *testing.T) {
	info := lookupFormat(t, format.NV12)

	// Each plane of a multi-plane allocation carries its own header region
	// with no subsampling inside the plane.
	buf := make([]byte, 64*afbcHeaderBytesPerBlock)
	err := InitAFBCHeaders(buf, info, AFBCType{
		Kind:         BlockExtraWide,
		TiledHeaders: true,
		MultiPlane:   true,
	}, 128, 128)
	require.NoError(t, err)

	require.Equal(t, [4]uint32{}, headerWords(t, buf, 0))
}

func TestInitAFBCHeadersShortBuffer(t *testing.T) {
	info := lookupFormat(t, format.RGBA8888)

	buf := make([]byte, 48*afbcHeaderBytesPerBlock)
	err := InitAFBCHeaders(buf, info, AFBCType{Kind: BlockBasic}, 112, 112)
	require.Error(t, err)
}

func TestAFBCBufferAlign(t *testing.T) {
	require.Equal(t, 1024, afbcBufferAlign(false, 784))
	require.Equal(t, 1024, afbcBufferAlign(false, 1024))
	require.Equal(t, 4096, afbcBufferAlign(true, 784))
	require.Equal(t, 8192, afbcBufferAlign(true, 4097))
}
