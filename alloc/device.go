package alloc

import (
	"io"

	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/gralloc/caps"
	"github.com/vkngwrapper/gralloc/format"
	"github.com/vkngwrapper/gralloc/memutils"
	"golang.org/x/exp/slog"
)

// sharedMetadataSize is the fixed portion of every buffer's shared metadata
// region; ReservedSize from the descriptor is added on top.
const sharedMetadataSize = 1024

// BackingStore is one region of allocated backing memory.
type BackingStore interface {
	// Free releases the region. A second Free on the same region is the
	// implementation's problem; Device never double-frees.
	Free() error
}

// BackingAllocator turns a byte count into backing memory. It is the
// heap/dma-buf collaborator; this package never touches the bytes it
// returns except for the shared metadata region.
type BackingAllocator interface {
	Allocate(size int, alignment uint) (BackingStore, error)
}

// Buffer is an allocated buffer handle.
type Buffer struct {
	// Descriptor is the derived layout the buffer was allocated for.
	Descriptor *BufferDescriptor
	// BackingStoreID is the system-wide unique buffer ID.
	BackingStoreID uint64
	// MetadataSize is the size of the shared metadata region.
	MetadataSize int

	backing  BackingStore
	metadata BackingStore
}

// Device is the allocation entry point. All layout computation is
// synchronous and stateless; concurrent requests on independent descriptors
// need no coordination beyond the atomic ID counter.
type Device struct {
	logger       *slog.Logger
	backing      BackingAllocator
	capabilities *caps.Registry
	ids          *IDGenerator
}

// DeviceOptions contains optional settings when creating a Device.
type DeviceOptions struct {
	// Logger receives diagnostics; nil discards them.
	Logger *slog.Logger
	// Capabilities, when provided, gates compression families on what the
	// probed hardware blocks actually support.
	Capabilities *caps.Registry
	// IDs overrides the unique buffer ID source, mainly so tests can reset
	// the counter between runs.
	IDs *IDGenerator
}

// NewDevice creates a Device that obtains backing memory from backing.
func NewDevice(backing BackingAllocator, options DeviceOptions) (*Device, error) {
	if backing == nil {
		return nil, cerrors.New("a backing allocator is required")
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ids := options.IDs
	if ids == nil {
		ids = NewIDGenerator()
	}

	return &Device{
		logger:       logger,
		backing:      backing,
		capabilities: options.Capabilities,
		ids:          ids,
	}, nil
}

// DeriveFormatAndSize resolves the internal format, classifies the
// allocation type and populates the descriptor's derived fields. It
// performs no allocation and is idempotent for an unmodified descriptor.
func (dev *Device) DeriveFormatAndSize(descriptor *BufferDescriptor) error {
	if descriptor.Width <= 0 || descriptor.Height <= 0 {
		return cerrors.Wrapf(ErrInvalidDimensions, "requested %dx%d", descriptor.Width, descriptor.Height)
	}

	usage := descriptor.Usage()
	descriptor.AllocFormat = descriptor.Format

	info, ok := format.Lookup(descriptor.AllocFormat.FormatID())
	if !ok {
		return cerrors.Wrapf(ErrUnsupportedFormat, "unrecognized format %#x with usage %#x",
			uint64(descriptor.Format), uint64(usage))
	}

	if dev.capabilities != nil {
		if want := requiredCaps(descriptor.AllocFormat); !dev.capabilities.AnySupports(want) {
			return cerrors.Wrapf(ErrUnsupportedFormat, "no hardware block supports the requested layout for format %s", info.Name)
		}
	}

	allocType, err := classifyAllocType(descriptor.AllocFormat.Modifiers(), info, usage, dev.logger)
	if err != nil {
		return err
	}

	if err := validateFormat(info, allocType, descriptor); err != nil {
		return err
	}

	pixelStride, size, planes := calcAllocationSize(
		descriptor.Width, descriptor.Height,
		allocType, info,
		usage.HasCPUAccess(), usage.HasHardwareAccess(),
		dev.logger)

	descriptor.AllocType = allocType
	descriptor.PlaneCount = info.PlaneCount
	descriptor.Planes = planes
	descriptor.PixelStride = pixelStride
	descriptor.Size = size

	// Every layer must start at an address the compression scheme accepts;
	// the AFBC header alignment is stricter than any stride alignment.
	if descriptor.layers() > 1 {
		if t, isAFBC := allocType.(AFBCType); isAFBC {
			if t.TiledHeaders {
				descriptor.Size = memutils.AlignUpMultiple(descriptor.Size, 4096)
			} else {
				descriptor.Size = memutils.AlignUpMultiple(descriptor.Size, 128)
			}
		}
		descriptor.Size *= descriptor.layers()
	}

	memutils.DebugValidate(descriptor)
	return nil
}

// AllocateBuffer derives the layout, obtains backing storage and the shared
// metadata region, and attaches a fresh unique ID.
func (dev *Device) AllocateBuffer(descriptor *BufferDescriptor) (*Buffer, error) {
	if err := dev.DeriveFormatAndSize(descriptor); err != nil {
		return nil, err
	}

	backing, err := dev.backing.Allocate(descriptor.Size, baseAlignment(descriptor.AllocType))
	if err != nil {
		return nil, cerrors.Wrapf(ErrNoResources, "allocating %d bytes: %s", descriptor.Size, err.Error())
	}

	metadataSize := sharedMetadataSize + descriptor.ReservedSize
	metadata, err := dev.backing.Allocate(metadataSize, 0)
	if err != nil {
		freeErr := backing.Free()
		if freeErr != nil {
			dev.logger.Error("failed to release backing store after metadata allocation failure",
				slog.Any("error", freeErr))
		}
		return nil, cerrors.Wrapf(ErrNoResources, "allocating %d metadata bytes: %s", metadataSize, err.Error())
	}

	return &Buffer{
		Descriptor:     descriptor,
		BackingStoreID: dev.ids.Next(),
		MetadataSize:   metadataSize,
		backing:        backing,
		metadata:       metadata,
	}, nil
}

// AllocateBuffers allocates count buffers from one descriptor, as a remote
// allocation service does for multi-buffer swapchains. All buffers share a
// pixel stride; on any failure the partial batch is freed before the error
// surfaces. Returns the buffers and the common pixel stride.
func (dev *Device) AllocateBuffers(descriptor *BufferDescriptor, count int) ([]*Buffer, int, error) {
	if count < 1 {
		return nil, 0, cerrors.Newf("requested %d buffers", count)
	}

	buffers := make([]*Buffer, 0, count)
	stride := 0
	for i := 0; i < count; i++ {
		buffer, err := dev.AllocateBuffer(descriptor)
		if err != nil {
			dev.freeBatch(buffers)
			return nil, 0, err
		}

		if i == 0 {
			stride = descriptor.PixelStride
		} else if stride != descriptor.PixelStride {
			dev.freeBatch(buffers)
			if freeErr := dev.FreeBuffer(buffer); freeErr != nil {
				dev.logger.Error("failed to free mismatched buffer", slog.Any("error", freeErr))
			}
			return nil, 0, cerrors.Wrapf(ErrUnsupportedFormat, "pixel stride changed from %d to %d within one batch",
				stride, descriptor.PixelStride)
		}

		buffers = append(buffers, buffer)
	}

	return buffers, stride, nil
}

func (dev *Device) freeBatch(buffers []*Buffer) {
	for _, buffer := range buffers {
		if err := dev.FreeBuffer(buffer); err != nil {
			dev.logger.Error("failed to free partially-allocated batch buffer",
				slog.Any("error", err))
		}
	}
}

// FreeBuffer releases the buffer's backing storage and shared metadata
// region. A nil buffer returns ErrNilBuffer rather than faulting.
func (dev *Device) FreeBuffer(buffer *Buffer) error {
	if buffer == nil {
		return ErrNilBuffer
	}

	var err error
	if buffer.backing != nil {
		err = buffer.backing.Free()
		buffer.backing = nil
	}
	if buffer.metadata != nil {
		metadataErr := buffer.metadata.Free()
		buffer.metadata = nil
		if err == nil {
			err = metadataErr
		}
	}
	return err
}

// baseAlignment is the alignment hint passed to the backing allocator so
// layer 0 starts at an address the layout accepts.
func baseAlignment(at AllocType) uint {
	switch t := at.(type) {
	case AFBCType:
		if t.TiledHeaders {
			return 4096
		}
		return afbcBodyBufferByteAlignment
	case AFRCType:
		return uint(memutils.Max(t.LumaPlaneAlignment, t.ChromaPlaneAlignment))
	}
	return 128
}

// requiredCaps maps the requested layout bits onto the capability flags at
// least one hardware block has to carry.
func requiredCaps(extFmt format.ExtendedFormat) caps.Flags {
	var want caps.Flags
	if extFmt.IsAFBC() {
		want |= caps.AFBC16x16
		if extFmt&format.AFBCSplitBlock != 0 {
			want |= caps.AFBCSplitBlock
		}
		if extFmt&format.AFBCWideBlock != 0 {
			want |= caps.AFBCWideBlock
		}
		if extFmt&format.AFBCExtraWideBlock != 0 {
			want |= caps.AFBCExtraWideBlock
		}
		if extFmt&format.AFBCTiledHeaders != 0 {
			want |= caps.AFBCTiledHeaders
		}
		if extFmt&format.AFBCDoubleBody != 0 {
			want |= caps.AFBCDoubleBody
		}
	}
	if extFmt.IsAFRC() {
		want |= caps.AFRC
	}
	if extFmt.IsBlockLinear() {
		want |= caps.BlockLinear
	}
	if want == 0 {
		want = caps.OptionsPresent
	}
	return want
}
