package format

// MaxPlanes is the largest number of color planes any supported format
// carries.
const MaxPlanes = 3

// ID identifies a base pixel format, independent of any compression or
// tiling modifiers.
type ID uint32

const (
	Invalid ID = iota
	RGBA8888
	RGBX8888
	BGRA8888
	RGB565
	RGB888
	RGBA1010102
	RGBA16161616
	RAW16
	Blob
	YV12
	YU12
	NV12
	NV15
	NV16
	NV21
	Y0L2
	Y210
	P010
	P210
	Y410
	YUV444
	Q410
	Q401
	YUV422_8Bit
	YUV420_8BitI
	YUV420_10BitI
	RGBA10101010
)

// Info is the static lookup entry for a base format. Entries are immutable
// and shared process-wide; the layout engine never mutates them.
type Info struct {
	ID   ID
	Name string

	// PlaneCount is the number of separately-addressed color planes.
	PlaneCount int
	// BPP is the per-plane bits per pixel for linear (uncompressed and
	// block-linear) layouts. Zero for planes that do not exist and for
	// formats that only exist compressed.
	BPP [MaxPlanes]int
	// BPPAFBC is the per-plane bits per pixel when AFBC compressed.
	BPPAFBC [MaxPlanes]int
	// ComponentCount is the number of color components sharing each plane.
	ComponentCount [MaxPlanes]int

	// HSub and VSub are the horizontal/vertical chroma subsampling factors
	// applied to planes after the first.
	HSub int
	VSub int

	// AlignW and AlignH round plane dimensions to whole samples for all
	// channels and to whole memory words for packed formats.
	AlignW int
	AlignH int
	// AlignWCPU is the pixel alignment CPU-accessible strides must satisfy.
	AlignWCPU int

	// TileSize is the linear tile size in pixels, 1 for non-tiled formats.
	TileSize int

	IsYUV bool

	// Layout families the format may be allocated with.
	Linear      bool
	AFBC        bool
	AFRC        bool
	BlockLinear bool
}

// IsSubsampled reports whether the format carries chroma at a lower
// resolution than luma. Packed single-plane formats still count as
// subsampled; their plane dimensions are unaffected but their AFBC header
// layout differs.
func (f *Info) IsSubsampled() bool {
	return f.HSub > 1 || f.VSub > 1
}
