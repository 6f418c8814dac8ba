package alloc

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/gralloc/format"
	"github.com/vkngwrapper/gralloc/memutils"
	"golang.org/x/exp/slog"
)

// updateYV12Stride rewrites a YV12 byte stride so the derived chroma stride
// can satisfy both CPU and HW alignment while being exactly half the luma
// stride, as the format mandates.
func updateYV12Stride(plane int, lumaStride, strideAlign int, byteStride *int) {
	if plane == 0 {
		// Align luma to 2*lcm(hw, cpu) so half of it still satisfies the
		// combined constraint.
		*byteStride = memutils.AlignUpMultiple(lumaStride, 2*strideAlign)
		return
	}

	*byteStride = lumaStride / 2
	if *byteStride != memutils.AlignUpMultiple(*byteStride, strideAlign) {
		panic(cerrors.AssertionFailedf("derived chroma stride %d does not satisfy the combined alignment %d",
			*byteStride, strideAlign))
	}
	if *byteStride&15 != 0 {
		panic(cerrors.AssertionFailedf("derived chroma stride %d is not a multiple of 16 bytes", *byteStride))
	}
}

// calcAllocationSize runs plane geometry for every plane in order and
// accumulates offsets, the total size and the CPU-visible pixel stride.
func calcAllocationSize(width, height int, at AllocType, info *format.Info, hasCPUUsage, hasHWUsage bool, logger *slog.Logger) (pixelStride, size int, planes [format.MaxPlanes]PlaneLayout) {
	for plane := 0; plane < info.PlaneCount; plane++ {
		w, h := planeDimensions(width, height, info, at, plane, hasCPUUsage)
		planes[plane].AllocWidth = w
		planes[plane].AllocHeight = h

		// Byte stride.
		switch t := at.(type) {
		case AFRCType:
			pagingTileStride := w / t.ClumpWidth[plane] / t.PagingTile.Width
			const codingUnitsPerPagingTile = 64
			planes[plane].ByteStride = pagingTileStride * codingUnitsPerPagingTile * t.CodingUnitBytes(plane)
		case AFBCType:
			if w*info.BPPAFBC[plane]%8 != 0 {
				panic(cerrors.AssertionFailedf("compressed row of %d pixels at %d bits per pixel is not whole bytes",
					w, info.BPPAFBC[plane]))
			}
			planes[plane].ByteStride = w * info.BPPAFBC[plane] / 8
		case BlockLinearType:
			if w*info.BPP[plane]%8 != 0 {
				panic(cerrors.AssertionFailedf("row of %d pixels at %d bits per pixel is not whole bytes",
					w, info.BPP[plane]))
			}
			blockWidth, blockHeight := 16, 16
			if plane > 0 {
				blockWidth /= info.HSub
				blockHeight /= info.VSub
			}
			bytesPerBlock := blockWidth * blockHeight * info.BPP[plane] / 8
			// The stride is a whole row of blocks, counted at luma
			// resolution; chroma subsampling is folded into the block size.
			blockColumns := planes[0].AllocWidth / 16
			planes[plane].ByteStride = blockColumns * bytesPerBlock
		default:
			if w*info.BPP[plane]%8 != 0 {
				panic(cerrors.AssertionFailedf("row of %d pixels at %d bits per pixel is not whole bytes",
					w, info.BPP[plane]))
			}
			planes[plane].ByteStride = w * info.BPP[plane] / 8

			// Combine the HW minimum stride with the byte equivalent of the
			// CPU pixel alignment.
			hwAlign := 0
			if hasHWUsage {
				if info.IsYUV {
					hwAlign = 128
				} else {
					hwAlign = 64
				}
			}
			cpuAlign := 0
			if hasCPUUsage {
				if info.BPP[plane]*info.AlignWCPU%8 != 0 {
					panic(cerrors.AssertionFailedf("CPU pixel alignment %d at %d bits per pixel is not whole bytes",
						info.AlignWCPU, info.BPP[plane]))
				}
				cpuAlign = info.BPP[plane] * info.AlignWCPU / 8
			}

			strideAlign := memutils.LCM(hwAlign, cpuAlign)
			if strideAlign != 0 {
				planes[plane].ByteStride = memutils.AlignUpMultiple(planes[plane].ByteStride*info.TileSize, strideAlign) / info.TileSize
			}

			// YV12 chroma stride must be exactly half the luma stride, so
			// the luma stride picks up a doubled alignment when both CPU
			// and HW touch the buffer.
			if info.ID == format.YV12 && hasHWUsage && hasCPUUsage {
				updateYV12Stride(plane, planes[0].ByteStride, strideAlign, &planes[plane].ByteStride)
			}
		}

		// Pixel stride is reported to CPU clients only; it plays no part in
		// sizing.
		if plane == 0 {
			pixelStride = 0
			if _, uncompressed := at.(Uncompressed); uncompressed && hasCPUUsage {
				if planes[plane].ByteStride*8%info.BPP[plane] != 0 {
					panic(cerrors.AssertionFailedf("byte stride %d is not a whole number of %d-bit pixels",
						planes[plane].ByteStride, info.BPP[plane]))
				}
				pixelStride = planes[plane].ByteStride * 8 / info.BPP[plane]
			}
		}

		superblockCount := w * h / afbcPixelsPerBlock

		// Body size.
		bodySize := 0
		switch t := at.(type) {
		case AFBCType:
			sb := t.PlaneSuperblock(plane)
			sbBytes := memutils.AlignUpMultiple(info.BPPAFBC[plane]*sb.Width*sb.Height/8, 128)
			bodySize = superblockCount * sbBytes

			// With separate per-plane buffers, pad the body so the next
			// plane's header starts aligned.
			if info.PlaneCount > 1 && plane < 2 {
				bodySize = afbcBufferAlign(t.TiledHeaders, bodySize)
			}

			if t.FrontBufferSafe {
				backBufferSize := afbcBufferAlign(t.TiledHeaders, bodySize)
				bodySize += backBufferSize
			}
		case AFRCType:
			size = memutils.AlignUpMultiple(size, t.PlaneAlignment(plane))

			sCodingUnits := w / t.ClumpWidth[plane]
			tCodingUnits := h / t.ClumpHeight[plane]
			bodySize = sCodingUnits * tCodingUnits * t.CodingUnitBytes(plane)
		case BlockLinearType:
			blockRows := planes[0].AllocHeight / 16
			bodySize = planes[plane].ByteStride * blockRows
		default:
			bodySize = planes[plane].ByteStride * h
		}

		// Header size. Only header/body compression reserves one; aligning
		// it keeps the body buffer aligned as well.
		headerSize := 0
		if t, isAFBC := at.(AFBCType); isAFBC {
			headerSize = afbcBufferAlign(t.TiledHeaders, superblockCount*afbcHeaderBytesPerBlock)
		}

		if plane > 0 {
			planes[plane].Offset = size
		}
		size += bodySize + headerSize

		logger.Debug("plane layout",
			slog.Int("Plane", plane),
			slog.Int("AllocWidth", w),
			slog.Int("AllocHeight", h),
			slog.Int("ByteStride", planes[plane].ByteStride),
			slog.Int("BodySize", bodySize),
			slog.Int("HeaderSize", headerSize),
			slog.Int("RunningSize", size))
	}

	return pixelStride, size, planes
}

// validateFormat rejects requests whose resolved allocation type is not
// declared supported by the format table entry.
func validateFormat(info *format.Info, at AllocType, descriptor *BufferDescriptor) error {
	switch t := at.(type) {
	case AFBCType:
		if !info.AFBC {
			return cerrors.Wrapf(ErrUnsupportedFormat, "block compression is not supported for base format %s", info.Name)
		}

		// Plane count and the single/multi-plane request must agree.
		if (info.PlaneCount == 1 && t.MultiPlane) || (info.PlaneCount > 1 && !t.MultiPlane) {
			return cerrors.Wrapf(ErrUnsupportedFormat, "format %s with %d planes is incompatible with the requested plane layout",
				info.Name, info.PlaneCount)
		}
	case AFRCType:
		if !info.AFRC {
			return cerrors.Wrapf(ErrUnsupportedFormat, "fixed-ratio compression is not supported for base format %s", info.Name)
		}
	case BlockLinearType:
		if !info.BlockLinear {
			return cerrors.Wrapf(ErrUnsupportedFormat, "block-linear tiling is not supported for base format %s", info.Name)
		}
	default:
		if !info.Linear {
			return cerrors.Wrapf(ErrUnsupportedFormat, "uncompressed layout is not supported for base format %s", info.Name)
		}
	}

	if info.ID == format.Blob && descriptor.Height != 1 {
		return cerrors.Wrap(ErrInvalidDimensions, "height for BLOB format must be 1")
	}

	return nil
}
