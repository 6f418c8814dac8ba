package format

// Usage carries producer/consumer usage flags for a buffer request.
type Usage uint64

const (
	// UsageCPURead requests software read access.
	UsageCPURead Usage = 1 << iota
	// UsageCPUWrite requests software write access.
	UsageCPUWrite
	// UsageGPUTexture marks the buffer as a GPU texture source.
	UsageGPUTexture
	// UsageGPURenderTarget marks the buffer as a GPU render target.
	UsageGPURenderTarget
	// UsageDisplay marks the buffer for display controller scanout.
	UsageDisplay
	// UsageVideoEncoder marks the buffer as video encoder input.
	UsageVideoEncoder
	// UsageVideoDecoder marks the buffer as video decoder output.
	UsageVideoDecoder
	// UsageCamera marks the buffer as camera pipeline output.
	UsageCamera
	// UsageAFBCPadding requests padded AFBC headers (4-superblock stride
	// alignment on non-YUV formats).
	UsageAFBCPadding
	// UsageFrontBuffer marks the buffer for front-buffer rendering.
	UsageFrontBuffer
)

// UsageCPUMask covers the software access bits.
const UsageCPUMask = UsageCPURead | UsageCPUWrite

// UsagePrivateMask covers usages that steer allocation behavior without
// implying any hardware block accesses the pixels.
const UsagePrivateMask = UsageAFBCPadding | UsageFrontBuffer

// HasCPUAccess reports whether software reads or writes the buffer.
func (u Usage) HasCPUAccess() bool {
	return u&UsageCPUMask != 0
}

// HasHardwareAccess reports whether any hardware block accesses the buffer.
func (u Usage) HasHardwareAccess() bool {
	return u&^(UsageCPUMask|UsagePrivateMask) != 0
}
