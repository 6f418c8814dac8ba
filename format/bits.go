package format

// ExtendedFormat packs a base format id together with layout modifier bits
// in a single 64-bit value, matching the wire encoding buffer requests
// arrive with. The low 32 bits carry the base format ID; the high bits
// select a compression family and its modifiers.
//
// The packed encoding is decoded exactly once, at the allocation-type
// classifier boundary. Code downstream of classification works with the
// decoded representation and never re-inspects these bits.
type ExtendedFormat uint64

// FormatMask covers the base format id bits.
const FormatMask ExtendedFormat = 0x00000000ffffffff

const (
	// AFBCBasic selects header/body block compression with the basic 16x16
	// superblock.
	AFBCBasic ExtendedFormat = 1 << (32 + iota)
	// AFBCSplitBlock splits superblock bodies across memory banks. Does not
	// affect alignment or allocation size.
	AFBCSplitBlock
	// AFBCWideBlock selects the wide 32x8 superblock.
	AFBCWideBlock
	// AFBCTiledHeaders arranges headers in 8x8 tiles of superblocks.
	AFBCTiledHeaders
	// AFBCExtraWideBlock selects the extra-wide 64x4 superblock.
	AFBCExtraWideBlock
	// AFBCDoubleBody allocates two body buffers so a stable copy can be
	// scanned out while the other is written (front-buffer-safe mode).
	AFBCDoubleBody
	// AFBCBufferContentHints enables per-superblock content hints.
	AFBCBufferContentHints
	// AFBCYUVTransform applies the internal RGB->YUV transform.
	AFBCYUVTransform
	// AFBCSparse pads superblocks to the uncompressed size.
	AFBCSparse
	// AFBCUSM enables uncompressed superblock mode.
	AFBCUSM
	// AFRCBasic selects fixed-ratio coding-unit compression.
	AFRCBasic
	// AFRCRotLayout selects the rotation-friendly 8x8 paging tile layout
	// instead of the 16x4 scan layout.
	AFRCRotLayout
	// BlockLinearBasic selects generic 16x16 block-linear tiling.
	BlockLinearBasic
)

// AFRC coding-unit byte sizes are packed as 2-bit fields, one for the
// RGBA/luma plane and one for the chroma planes.
const (
	afrcCodingUnitBytesMask uint64 = 0x3

	afrcRGBALumaCodingUnitShift = 45
	afrcChromaCodingUnitShift   = 47

	// Field encodings. The remaining encoding (3) is reserved; decoding it
	// yields a coding-unit size of 0, which fails classification.
	AFRCCodingUnitBytes16 uint64 = 0
	AFRCCodingUnitBytes24 uint64 = 1
	AFRCCodingUnitBytes32 uint64 = 2
)

// AFRCLumaCodingUnit packs a coding-unit byte-size encoding into the
// RGBA/luma field.
func AFRCLumaCodingUnit(encoding uint64) ExtendedFormat {
	return ExtendedFormat((encoding & afrcCodingUnitBytesMask) << afrcRGBALumaCodingUnitShift)
}

// AFRCChromaCodingUnit packs a coding-unit byte-size encoding into the
// chroma field.
func AFRCChromaCodingUnit(encoding uint64) ExtendedFormat {
	return ExtendedFormat((encoding & afrcCodingUnitBytesMask) << afrcChromaCodingUnitShift)
}

// FormatID extracts the base format id.
func (f ExtendedFormat) FormatID() ID {
	return ID(f & FormatMask)
}

// Modifiers strips the base format id, leaving only modifier bits.
func (f ExtendedFormat) Modifiers() ExtendedFormat {
	return f &^ FormatMask
}

// IsAFBC reports whether any AFBC family bit is present.
func (f ExtendedFormat) IsAFBC() bool {
	const afbcMask = AFBCBasic | AFBCSplitBlock | AFBCWideBlock | AFBCTiledHeaders |
		AFBCExtraWideBlock | AFBCDoubleBody | AFBCBufferContentHints |
		AFBCYUVTransform | AFBCSparse | AFBCUSM
	return f&afbcMask != 0
}

// IsAFRC reports whether fixed-ratio compression is requested.
func (f ExtendedFormat) IsAFRC() bool {
	return f&AFRCBasic != 0
}

// IsBlockLinear reports whether generic block-linear tiling is requested.
func (f ExtendedFormat) IsBlockLinear() bool {
	return f&BlockLinearBasic != 0
}

// LumaCodingUnitBytes decodes the RGBA/luma coding-unit size in bytes.
// Returns 0 for the reserved encoding.
func (f ExtendedFormat) LumaCodingUnitBytes() int {
	return afrcCodingUnitBytes(uint64(f) >> afrcRGBALumaCodingUnitShift & afrcCodingUnitBytesMask)
}

// ChromaCodingUnitBytes decodes the chroma coding-unit size in bytes.
// Returns 0 for the reserved encoding.
func (f ExtendedFormat) ChromaCodingUnitBytes() int {
	return afrcCodingUnitBytes(uint64(f) >> afrcChromaCodingUnitShift & afrcCodingUnitBytesMask)
}

func afrcCodingUnitBytes(encoding uint64) int {
	switch encoding {
	case AFRCCodingUnitBytes16:
		return 16
	case AFRCCodingUnitBytes24:
		return 24
	case AFRCCodingUnitBytes32:
		return 32
	}
	return 0
}
