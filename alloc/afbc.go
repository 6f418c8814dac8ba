package alloc

import (
	"encoding/binary"

	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/gralloc/format"
	"github.com/vkngwrapper/gralloc/memutils"
)

const (
	// afbcPixelsPerBlock is the pixel count covered by one superblock
	// header entry, independent of superblock shape.
	afbcPixelsPerBlock = 256
	// afbcHeaderBytesPerBlock is the size of one header entry.
	afbcHeaderBytesPerBlock = 16
	// afbcBodyBufferByteAlignment is the body buffer alignment for linear
	// headers; tiled headers require four times as much.
	afbcBodyBufferByteAlignment = 1024
)

// afbcBufferAlign rounds a header or body buffer size up to the body buffer
// alignment for the header layout in use.
func afbcBufferAlign(tiled bool, size int) int {
	alignment := afbcBodyBufferByteAlignment
	if tiled {
		alignment *= 4
	}
	return memutils.AlignUpMultiple(size, alignment)
}

// AFBC header words per superblock layout family. Hardware decoders parse
// these directly; the values are a fixed binary contract.
//
// Layout 0 covers non-subsampled superblock layouts (0, 3, 4, 7); layout 1
// covers the 4:2:0 subsampled layouts (1, 5). Tiled headers (AFBC 1.2) are
// initialised to zero for non-subsampled formats.
var afbcHeaderLayouts = [2][4]uint32{
	{0, 0x1, 0x10000, 0x0},
	{1 << 28, 0x80200040, 0x1004000, 0x20080},
}

// InitAFBCHeaders fills buf with the initial header words for an AFBC
// buffer whose plane dimensions are already aligned. buf must hold at least
// one 16-byte entry per superblock.
//
// Multi-plane allocations keep one header region per plane with no
// subsampling within the plane, so they always take the non-subsampled
// layout.
func InitAFBCHeaders(buf []byte, info *format.Info, t AFBCType, width, height int) error {
	headerCount := width * height / afbcPixelsPerBlock
	if len(buf) < headerCount*afbcHeaderBytesPerBlock {
		return cerrors.Newf("header region is %d bytes, need %d", len(buf), headerCount*afbcHeaderBytesPerBlock)
	}

	bodyOffset := afbcBufferAlign(t.TiledHeaders, headerCount*afbcHeaderBytesPerBlock)

	layout := 0
	if info.IsSubsampled() && info.IsYUV && !t.MultiPlane {
		layout = 1
	}

	var words [4]uint32
	if layout == 0 && t.TiledHeaders {
		// Zeroed body offset for tiled non-subsampled formats.
		words = [4]uint32{}
	} else {
		words = afbcHeaderLayouts[layout]
		words[0] += uint32(bodyOffset)
	}

	for i := 0; i < headerCount; i++ {
		entry := buf[i*afbcHeaderBytesPerBlock:]
		for w := 0; w < 4; w++ {
			binary.LittleEndian.PutUint32(entry[w*4:], words[w])
		}
	}
	return nil
}
