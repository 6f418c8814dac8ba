package format

import "github.com/dolthub/swiss"

// formats is the static format table. Per-plane values follow plane order
// (luma first). The table is append-only data: the layout engine consumes it
// through Lookup and never writes to it.
var formats = []Info{
	{
		ID: RGBA8888, Name: "RGBA_8888", PlaneCount: 1,
		BPP: [MaxPlanes]int{32}, BPPAFBC: [MaxPlanes]int{32}, ComponentCount: [MaxPlanes]int{4},
		HSub: 1, VSub: 1, AlignW: 1, AlignH: 1, AlignWCPU: 1, TileSize: 1,
		Linear: true, AFBC: true, AFRC: true, BlockLinear: true,
	},
	{
		ID: RGBX8888, Name: "RGBX_8888", PlaneCount: 1,
		BPP: [MaxPlanes]int{32}, BPPAFBC: [MaxPlanes]int{32}, ComponentCount: [MaxPlanes]int{3},
		HSub: 1, VSub: 1, AlignW: 1, AlignH: 1, AlignWCPU: 1, TileSize: 1,
		Linear: true, AFBC: true,
	},
	{
		ID: BGRA8888, Name: "BGRA_8888", PlaneCount: 1,
		BPP: [MaxPlanes]int{32}, ComponentCount: [MaxPlanes]int{4},
		HSub: 1, VSub: 1, AlignW: 1, AlignH: 1, AlignWCPU: 1, TileSize: 1,
		Linear: true,
	},
	{
		ID: RGB565, Name: "RGB_565", PlaneCount: 1,
		BPP: [MaxPlanes]int{16}, BPPAFBC: [MaxPlanes]int{16}, ComponentCount: [MaxPlanes]int{3},
		HSub: 1, VSub: 1, AlignW: 1, AlignH: 1, AlignWCPU: 1, TileSize: 1,
		Linear: true, AFBC: true,
	},
	{
		ID: RGB888, Name: "RGB_888", PlaneCount: 1,
		BPP: [MaxPlanes]int{24}, BPPAFBC: [MaxPlanes]int{24}, ComponentCount: [MaxPlanes]int{3},
		HSub: 1, VSub: 1, AlignW: 1, AlignH: 1, AlignWCPU: 1, TileSize: 1,
		Linear: true, AFBC: true,
	},
	{
		ID: RGBA1010102, Name: "RGBA_1010102", PlaneCount: 1,
		BPP: [MaxPlanes]int{32}, BPPAFBC: [MaxPlanes]int{32}, ComponentCount: [MaxPlanes]int{4},
		HSub: 1, VSub: 1, AlignW: 1, AlignH: 1, AlignWCPU: 1, TileSize: 1,
		Linear: true, AFBC: true,
	},
	{
		ID: RGBA16161616, Name: "RGBA_16161616", PlaneCount: 1,
		BPP: [MaxPlanes]int{64}, BPPAFBC: [MaxPlanes]int{64}, ComponentCount: [MaxPlanes]int{4},
		HSub: 1, VSub: 1, AlignW: 1, AlignH: 1, AlignWCPU: 16, TileSize: 1,
		Linear: true, AFBC: true,
	},
	{
		ID: RGBA10101010, Name: "RGBA_10101010", PlaneCount: 1,
		BPP: [MaxPlanes]int{64}, BPPAFBC: [MaxPlanes]int{64}, ComponentCount: [MaxPlanes]int{4},
		HSub: 1, VSub: 1, AlignW: 1, AlignH: 1, AlignWCPU: 16, TileSize: 1,
		Linear: true, AFBC: true,
	},
	{
		ID: RAW16, Name: "RAW16", PlaneCount: 1,
		BPP: [MaxPlanes]int{16}, ComponentCount: [MaxPlanes]int{1},
		HSub: 1, VSub: 1, AlignW: 2, AlignH: 2, AlignWCPU: 16, TileSize: 1,
		Linear: true,
	},
	{
		// Opaque byte streams. Width carries the byte count and height must
		// be exactly 1.
		ID: Blob, Name: "BLOB", PlaneCount: 1,
		BPP: [MaxPlanes]int{8}, ComponentCount: [MaxPlanes]int{1},
		HSub: 1, VSub: 1, AlignW: 1, AlignH: 1, AlignWCPU: 1, TileSize: 1,
		Linear: true,
	},
	{
		ID: YV12, Name: "YV12", PlaneCount: 3,
		BPP: [MaxPlanes]int{8, 8, 8}, BPPAFBC: [MaxPlanes]int{8, 8, 8}, ComponentCount: [MaxPlanes]int{1, 1, 1},
		HSub: 2, VSub: 2, AlignW: 2, AlignH: 2, AlignWCPU: 16, TileSize: 1,
		IsYUV: true, Linear: true, AFBC: true,
	},
	{
		ID: YU12, Name: "YU12", PlaneCount: 3,
		BPP: [MaxPlanes]int{8, 8, 8}, BPPAFBC: [MaxPlanes]int{8, 8, 8}, ComponentCount: [MaxPlanes]int{1, 1, 1},
		HSub: 2, VSub: 2, AlignW: 2, AlignH: 2, AlignWCPU: 16, TileSize: 1,
		IsYUV: true, Linear: true, AFBC: true,
	},
	{
		ID: NV12, Name: "NV12", PlaneCount: 2,
		BPP: [MaxPlanes]int{8, 16}, BPPAFBC: [MaxPlanes]int{8, 16}, ComponentCount: [MaxPlanes]int{1, 2},
		HSub: 2, VSub: 2, AlignW: 2, AlignH: 2, AlignWCPU: 1, TileSize: 1,
		IsYUV: true, Linear: true, AFBC: true, AFRC: true, BlockLinear: true,
	},
	{
		ID: NV15, Name: "NV15", PlaneCount: 2,
		BPP: [MaxPlanes]int{10, 20}, BPPAFBC: [MaxPlanes]int{10, 20}, ComponentCount: [MaxPlanes]int{1, 2},
		HSub: 2, VSub: 2, AlignW: 4, AlignH: 2, AlignWCPU: 1, TileSize: 1,
		IsYUV: true, Linear: true, AFBC: true, BlockLinear: true,
	},
	{
		ID: NV16, Name: "NV16", PlaneCount: 2,
		BPP: [MaxPlanes]int{8, 16}, BPPAFBC: [MaxPlanes]int{8, 16}, ComponentCount: [MaxPlanes]int{1, 2},
		HSub: 2, VSub: 1, AlignW: 2, AlignH: 1, AlignWCPU: 1, TileSize: 1,
		IsYUV: true, Linear: true, AFBC: true,
	},
	{
		ID: NV21, Name: "NV21", PlaneCount: 2,
		BPP: [MaxPlanes]int{8, 16}, ComponentCount: [MaxPlanes]int{1, 2},
		HSub: 2, VSub: 2, AlignW: 2, AlignH: 2, AlignWCPU: 1, TileSize: 1,
		IsYUV: true, Linear: true,
	},
	{
		ID: Y0L2, Name: "Y0L2", PlaneCount: 1,
		BPP: [MaxPlanes]int{16}, BPPAFBC: [MaxPlanes]int{16}, ComponentCount: [MaxPlanes]int{3},
		HSub: 2, VSub: 2, AlignW: 2, AlignH: 2, AlignWCPU: 1, TileSize: 2,
		IsYUV: true, Linear: true, AFBC: true,
	},
	{
		ID: Y210, Name: "Y210", PlaneCount: 1,
		BPP: [MaxPlanes]int{32}, BPPAFBC: [MaxPlanes]int{32}, ComponentCount: [MaxPlanes]int{3},
		HSub: 2, VSub: 1, AlignW: 2, AlignH: 1, AlignWCPU: 1, TileSize: 1,
		IsYUV: true, Linear: true, AFBC: true,
	},
	{
		ID: P010, Name: "P010", PlaneCount: 2,
		BPP: [MaxPlanes]int{16, 32}, BPPAFBC: [MaxPlanes]int{16, 32}, ComponentCount: [MaxPlanes]int{1, 2},
		HSub: 2, VSub: 2, AlignW: 2, AlignH: 2, AlignWCPU: 1, TileSize: 1,
		IsYUV: true, Linear: true, AFBC: true, AFRC: true, BlockLinear: true,
	},
	{
		ID: P210, Name: "P210", PlaneCount: 2,
		BPP: [MaxPlanes]int{16, 32}, BPPAFBC: [MaxPlanes]int{16, 32}, ComponentCount: [MaxPlanes]int{1, 2},
		HSub: 2, VSub: 1, AlignW: 2, AlignH: 1, AlignWCPU: 1, TileSize: 1,
		IsYUV: true, Linear: true, AFBC: true,
	},
	{
		ID: Y410, Name: "Y410", PlaneCount: 1,
		BPP: [MaxPlanes]int{32}, ComponentCount: [MaxPlanes]int{4},
		HSub: 1, VSub: 1, AlignW: 1, AlignH: 1, AlignWCPU: 1, TileSize: 1,
		IsYUV: true, Linear: true,
	},
	{
		ID: YUV444, Name: "YUV444", PlaneCount: 3,
		BPP: [MaxPlanes]int{8, 8, 8}, ComponentCount: [MaxPlanes]int{1, 1, 1},
		HSub: 1, VSub: 1, AlignW: 1, AlignH: 1, AlignWCPU: 1, TileSize: 1,
		IsYUV: true, Linear: true, AFRC: true,
	},
	{
		ID: Q410, Name: "Q410", PlaneCount: 3,
		BPP: [MaxPlanes]int{16, 16, 16}, ComponentCount: [MaxPlanes]int{1, 1, 1},
		HSub: 1, VSub: 1, AlignW: 1, AlignH: 1, AlignWCPU: 1, TileSize: 1,
		IsYUV: true, Linear: true,
	},
	{
		ID: Q401, Name: "Q401", PlaneCount: 3,
		BPP: [MaxPlanes]int{16, 16, 16}, ComponentCount: [MaxPlanes]int{1, 1, 1},
		HSub: 1, VSub: 1, AlignW: 1, AlignH: 1, AlignWCPU: 1, TileSize: 1,
		IsYUV: true, Linear: true,
	},
	{
		ID: YUV422_8Bit, Name: "YUV422_8BIT", PlaneCount: 1,
		BPP: [MaxPlanes]int{16}, BPPAFBC: [MaxPlanes]int{16}, ComponentCount: [MaxPlanes]int{3},
		HSub: 2, VSub: 1, AlignW: 2, AlignH: 1, AlignWCPU: 1, TileSize: 1,
		IsYUV: true, Linear: true, AFBC: true,
	},
	{
		// AFBC-only packed 4:2:0.
		ID: YUV420_8BitI, Name: "YUV420_8BIT_I", PlaneCount: 1,
		BPPAFBC: [MaxPlanes]int{12}, ComponentCount: [MaxPlanes]int{3},
		HSub: 2, VSub: 2, AlignW: 2, AlignH: 2, AlignWCPU: 1, TileSize: 1,
		IsYUV: true, AFBC: true,
	},
	{
		// AFBC-only packed 4:2:0, 10-bit.
		ID: YUV420_10BitI, Name: "YUV420_10BIT_I", PlaneCount: 1,
		BPPAFBC: [MaxPlanes]int{15}, ComponentCount: [MaxPlanes]int{3},
		HSub: 2, VSub: 2, AlignW: 4, AlignH: 2, AlignWCPU: 1, TileSize: 1,
		IsYUV: true, AFBC: true,
	},
}

var formatIndex *swiss.Map[ID, *Info]

func init() {
	formatIndex = swiss.NewMap[ID, *Info](uint32(len(formats)))
	for i := range formats {
		formatIndex.Put(formats[i].ID, &formats[i])
	}
}

// Lookup returns the table entry for the given base format id.
func Lookup(id ID) (*Info, bool) {
	return formatIndex.Get(id)
}
