package caps

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingProber struct {
	mu     sync.Mutex
	probes int
	flags  map[Block]Flags
}

func (p *recordingProber) Probe(block Block) (Flags, bool) {
	p.mu.Lock()
	p.probes++
	p.mu.Unlock()

	flags, ok := p.flags[block]
	return flags, ok
}

func TestRegistryProbesOnce(t *testing.T) {
	prober := &recordingProber{flags: map[Block]Flags{
		GPU: AFBC16x16 | AFBCTiledHeaders,
	}}
	registry := NewRegistry(prober, nil)

	var group sync.WaitGroup
	for i := 0; i < 8; i++ {
		group.Add(1)
		go func() {
			defer group.Done()
			registry.Load()
		}()
	}
	group.Wait()

	// One probe per non-CPU block, regardless of how many loads raced.
	require.Equal(t, int(blockCount)-1, prober.probes)
}

func TestRegistryCPUAlwaysPresent(t *testing.T) {
	registry := NewRegistry(&recordingProber{}, nil)
	require.Equal(t, OptionsPresent, registry.Flags(CPU))
}

func TestRegistryAbsentBlockHasNoFlags(t *testing.T) {
	prober := &recordingProber{flags: map[Block]Flags{
		GPU: AFBC16x16,
	}}
	registry := NewRegistry(prober, nil)

	require.Equal(t, Flags(0), registry.Flags(Display))
	require.Equal(t, AFBC16x16|OptionsPresent, registry.Flags(GPU))
}

func TestRegistryAnySupports(t *testing.T) {
	prober := &recordingProber{flags: map[Block]Flags{
		GPU:   AFBC16x16 | AFBCWideBlock,
		Video: AFRC,
	}}
	registry := NewRegistry(prober, nil)

	require.True(t, registry.AnySupports(AFBC16x16))
	require.True(t, registry.AnySupports(AFBC16x16|AFBCWideBlock))
	require.True(t, registry.AnySupports(AFRC))
	// No single block carries both families.
	require.False(t, registry.AnySupports(AFBC16x16|AFRC))
	require.False(t, registry.AnySupports(BlockLinear))
}

func TestRegistryOutOfRangeBlock(t *testing.T) {
	registry := NewRegistry(&recordingProber{}, nil)
	require.Equal(t, Flags(0), registry.Flags(Block(-1)))
	require.Equal(t, Flags(0), registry.Flags(blockCount))
}

func TestBlockString(t *testing.T) {
	require.Equal(t, "GPU", GPU.String())
	require.Equal(t, "Camera", Camera.String())
	require.Equal(t, "Unknown", Block(99).String())
}
