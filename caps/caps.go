// Package caps tracks which layout families each hardware block can produce
// or consume. Capabilities are discovered once per process lifetime through
// an injectable Prober and are read-only afterwards.
package caps

import (
	"io"
	"sync"

	"golang.org/x/exp/slog"
)

// Block identifies a hardware block with its own format capabilities.
type Block int

const (
	CPU Block = iota
	GPU
	Display
	Video
	Camera

	blockCount
)

var blockNames = [blockCount]string{"CPU", "GPU", "Display", "Video", "Camera"}

func (b Block) String() string {
	if b < 0 || b >= blockCount {
		return "Unknown"
	}
	return blockNames[b]
}

// Flags is a capability bitmask for one hardware block.
type Flags uint64

const (
	// OptionsPresent marks a probe result as valid. A block whose probe
	// failed carries no flags at all.
	OptionsPresent Flags = 1 << iota
	// AFBC16x16 supports basic 16x16 superblocks.
	AFBC16x16
	// AFBCSplitBlock supports split superblock bodies.
	AFBCSplitBlock
	// AFBCWideBlock supports 32x8 superblocks.
	AFBCWideBlock
	// AFBCExtraWideBlock supports 64x4 superblocks.
	AFBCExtraWideBlock
	// AFBCTiledHeaders supports tiled header layouts.
	AFBCTiledHeaders
	// AFBCDoubleBody supports front-buffer-safe double body buffers.
	AFBCDoubleBody
	// AFRC supports fixed-ratio coding-unit compression.
	AFRC
	// BlockLinear supports generic 16x16 block-linear tiling.
	BlockLinear
)

// AFBCMask covers every AFBC capability bit.
const AFBCMask = AFBC16x16 | AFBCSplitBlock | AFBCWideBlock | AFBCExtraWideBlock |
	AFBCTiledHeaders | AFBCDoubleBody

// Prober supplies the capability mask for a single hardware block. The
// second return value is false when the block is absent, in which case the
// block contributes no capabilities.
type Prober interface {
	Probe(block Block) (Flags, bool)
}

// Registry holds the per-block capability sets. Load runs the prober at
// most once; concurrent readers need no further synchronization afterwards.
type Registry struct {
	once   sync.Once
	prober Prober
	logger *slog.Logger

	flags [blockCount]Flags
}

// NewRegistry creates a registry that will consult prober on first use.
// A nil logger disables diagnostics.
func NewRegistry(prober Prober, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Registry{
		prober: prober,
		logger: logger,
	}
}

// Load probes every block. It is safe to call from multiple goroutines;
// only the first call performs work.
func (r *Registry) Load() {
	r.once.Do(func() {
		// The CPU block needs no probe: software can always touch linear
		// pixels.
		r.flags[CPU] = OptionsPresent

		for block := GPU; block < blockCount; block++ {
			flags, ok := r.prober.Probe(block)
			if !ok {
				r.logger.Warn("capability probe found no driver for block",
					slog.String("Block", block.String()))
				continue
			}
			r.flags[block] = flags | OptionsPresent
			r.logger.Debug("block format capabilities",
				slog.String("Block", block.String()),
				slog.Uint64("Flags", uint64(r.flags[block])))
		}
	})
}

// Flags returns the capability set for one block, probing first if needed.
func (r *Registry) Flags(block Block) Flags {
	r.Load()
	if block < 0 || block >= blockCount {
		return 0
	}
	return r.flags[block]
}

// AnySupports reports whether at least one hardware block carries every
// capability in want.
func (r *Registry) AnySupports(want Flags) bool {
	r.Load()
	for block := Block(0); block < blockCount; block++ {
		if r.flags[block]&want == want {
			return true
		}
	}
	return false
}
