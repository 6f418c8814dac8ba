package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/gralloc/format"
)

func TestBuildLayoutString(t *testing.T) {
	device, _ := testDevice(t)

	descriptor := &BufferDescriptor{
		Name:  "swapchain",
		Width: 100, Height: 100,
		Format:        format.ExtendedFormat(format.RGBA8888),
		ProducerUsage: format.UsageCPUWrite,
		ConsumerUsage: format.UsageGPUTexture,
	}
	require.NoError(t, device.DeriveFormatAndSize(descriptor))

	require.JSONEq(t, `{
		"Name": "swapchain",
		"Width": 100,
		"Height": 100,
		"LayerCount": 1,
		"AllocFormat": 1,
		"AllocType": "Uncompressed",
		"PixelStride": 112,
		"Size": 44800,
		"Planes": [
			{"Offset": 0, "ByteStride": 448, "AllocWidth": 100, "AllocHeight": 100}
		]
	}`, descriptor.BuildLayoutString())
}

func TestDescriptorValidate(t *testing.T) {
	good := &BufferDescriptor{
		PlaneCount: 2,
		Planes: [format.MaxPlanes]PlaneLayout{
			{Offset: 0, ByteStride: 256},
			{Offset: 25600, ByteStride: 128},
		},
		Size: 32000,
	}
	require.NoError(t, good.Validate())

	noPlanes := &BufferDescriptor{}
	require.Error(t, noPlanes.Validate())

	shiftedFirstPlane := &BufferDescriptor{
		PlaneCount: 1,
		Planes:     [format.MaxPlanes]PlaneLayout{{Offset: 64}},
		Size:       128,
	}
	require.Error(t, shiftedFirstPlane.Validate())

	outOfOrder := &BufferDescriptor{
		PlaneCount: 3,
		Planes: [format.MaxPlanes]PlaneLayout{
			{Offset: 0},
			{Offset: 4096},
			{Offset: 2048},
		},
		Size: 8192,
	}
	require.Error(t, outOfOrder.Validate())

	overflowing := &BufferDescriptor{
		PlaneCount: 2,
		Planes: [format.MaxPlanes]PlaneLayout{
			{Offset: 0},
			{Offset: 8192},
		},
		Size: 4096,
	}
	require.Error(t, overflowing.Validate())
}

func TestAllocTypeNames(t *testing.T) {
	require.Equal(t, "Uncompressed", allocTypeName(Uncompressed{}))
	require.Equal(t, "AFBC", allocTypeName(AFBCType{}))
	require.Equal(t, "AFRC", allocTypeName(AFRCType{}))
	require.Equal(t, "BlockLinear", allocTypeName(BlockLinearType{}))
	require.Equal(t, "Unclassified", allocTypeName(nil))
}
