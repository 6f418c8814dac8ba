package alloc

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/gralloc/format"
)

// BufferDescriptor is a buffer request plus everything DeriveFormatAndSize
// derives from it. The derivation pass is synchronous and the caller owns
// the descriptor throughout; once handed to the backing allocator it must
// not be mutated.
type BufferDescriptor struct {
	Name string

	// Requested geometry. Width and height are expected to already carry
	// any usage-specific adjustment.
	Width  int
	Height int
	// LayerCount is the number of image layers; 0 is treated as 1.
	LayerCount int

	// Format is the requested base format plus modifier bits.
	Format format.ExtendedFormat

	ProducerUsage format.Usage
	ConsumerUsage format.Usage

	// ReservedSize is extra space the client wants in the buffer's shared
	// metadata region.
	ReservedSize int

	// Derived state, populated by DeriveFormatAndSize.

	// AllocFormat is the resolved internal format.
	AllocFormat format.ExtendedFormat
	// AllocType is the decoded allocation layout.
	AllocType AllocType
	// PlaneCount is the number of valid entries in Planes.
	PlaneCount int
	Planes     [format.MaxPlanes]PlaneLayout
	// PixelStride is the CPU-visible stride in pixels. Only meaningful for
	// uncompressed CPU-accessible buffers; 0 otherwise.
	PixelStride int
	// Size is the total allocation size in bytes, covering all planes and
	// layers.
	Size int
}

// Usage returns the combined producer and consumer usage.
func (d *BufferDescriptor) Usage() format.Usage {
	return d.ProducerUsage | d.ConsumerUsage
}

// layers returns the effective layer count.
func (d *BufferDescriptor) layers() int {
	if d.LayerCount < 1 {
		return 1
	}
	return d.LayerCount
}

// Validate checks the derived layout's structural invariants. It is wired
// into memutils.DebugValidate at the end of every derivation pass.
func (d *BufferDescriptor) Validate() error {
	if d.PlaneCount < 1 || d.PlaneCount > format.MaxPlanes {
		return cerrors.Newf("descriptor has %d planes", d.PlaneCount)
	}
	if d.Planes[0].Offset != 0 {
		return cerrors.Newf("plane 0 starts at offset %d", d.Planes[0].Offset)
	}
	for plane := 1; plane < d.PlaneCount; plane++ {
		if d.Planes[plane].Offset < d.Planes[plane-1].Offset {
			return cerrors.Newf("plane %d offset %d precedes plane %d offset %d",
				plane, d.Planes[plane].Offset, plane-1, d.Planes[plane-1].Offset)
		}
	}
	lastPlane := d.Planes[d.PlaneCount-1]
	if lastPlane.Offset > d.Size {
		return cerrors.Newf("plane %d offset %d exceeds total size %d",
			d.PlaneCount-1, lastPlane.Offset, d.Size)
	}
	return nil
}

// BuildLayoutString renders the derived layout as a JSON document for
// debugging and bug reports.
func (d *BufferDescriptor) BuildLayoutString() string {
	writer := jwriter.NewWriter()

	obj := writer.Object()
	obj.Name("Name").String(d.Name)
	obj.Name("Width").Int(d.Width)
	obj.Name("Height").Int(d.Height)
	obj.Name("LayerCount").Int(d.layers())
	obj.Name("AllocFormat").Int(int(d.AllocFormat))
	obj.Name("AllocType").String(allocTypeName(d.AllocType))
	obj.Name("PixelStride").Int(d.PixelStride)
	obj.Name("Size").Int(d.Size)

	planesArr := obj.Name("Planes").Array()
	for plane := 0; plane < d.PlaneCount; plane++ {
		planeObj := planesArr.Object()
		planeObj.Name("Offset").Int(d.Planes[plane].Offset)
		planeObj.Name("ByteStride").Int(d.Planes[plane].ByteStride)
		planeObj.Name("AllocWidth").Int(d.Planes[plane].AllocWidth)
		planeObj.Name("AllocHeight").Int(d.Planes[plane].AllocHeight)
		planeObj.End()
	}
	planesArr.End()
	obj.End()

	return string(writer.Bytes())
}

func allocTypeName(at AllocType) string {
	switch at.(type) {
	case AFBCType:
		return "AFBC"
	case AFRCType:
		return "AFRC"
	case BlockLinearType:
		return "BlockLinear"
	case Uncompressed:
		return "Uncompressed"
	}
	return "Unclassified"
}
