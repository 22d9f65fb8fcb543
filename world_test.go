package glimmer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldSpawnUpdateAndMergedGeometry(t *testing.T) {
	w := NewWorld(nil)

	fire := w.Spawn(EffectFire, mgl32.Vec3{0, 0, 0})
	smoke := w.Spawn(EffectSmoke, mgl32.Vec3{10, 0, 0})
	require.Equal(t, 2, w.Len())

	for _, id := range []EffectId{fire, smoke} {
		ps, ok := w.System(id)
		require.True(t, ok)
		ps.Reseed(5)
	}

	for i := 0; i < 20; i++ {
		w.Update(0.05)
	}
	require.Positive(t, w.AliveCount())

	vertices, indices := w.Geometry(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	assert.Len(t, vertices, w.AliveCount()*4)
	assert.Len(t, indices, w.AliveCount()*6)
	for _, idx := range indices {
		assert.Less(t, int(idx), len(vertices), "merged index out of range")
	}

	// Per-system buffers must add up to the merged pair.
	firePS, _ := w.System(fire)
	smokePS, _ := w.System(smoke)
	assert.Equal(t, firePS.VertexCount()+smokePS.VertexCount(), len(vertices))
}

func TestWorldRemove(t *testing.T) {
	w := NewWorld(NewNopLogger())
	id := w.Spawn(EffectSparks, mgl32.Vec3{})

	assert.True(t, w.Remove(id))
	assert.False(t, w.Remove(id), "double remove must report missing")
	assert.Zero(t, w.Len())

	w.Update(0.1)
	vertices, indices := w.Geometry(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	assert.Empty(t, vertices)
	assert.Empty(t, indices)
}

func TestWorldSpawnCustomValidates(t *testing.T) {
	w := NewWorld(nil)

	cfg := Preset(EffectDust)
	cfg.MaxParticles = -1
	_, err := w.SpawnCustom(cfg)
	assert.Error(t, err)
	assert.Zero(t, w.Len())

	cfg.MaxParticles = 64
	id, err := w.SpawnCustom(cfg)
	require.NoError(t, err)
	_, ok := w.System(id)
	assert.True(t, ok)
}

func TestWorldControlsByHandle(t *testing.T) {
	w := NewWorld(nil)
	id := w.Spawn(EffectSnow, mgl32.Vec3{})

	assert.True(t, w.Stop(id))
	ps, _ := w.System(id)
	assert.False(t, ps.IsActive())

	assert.True(t, w.Start(id))
	assert.True(t, ps.IsActive())

	assert.True(t, w.SetPosition(id, mgl32.Vec3{1, 2, 3}))
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, ps.Config().Position)

	const missing = EffectId("nope")
	assert.False(t, w.Stop(missing))
	assert.False(t, w.Start(missing))
	assert.False(t, w.SetPosition(missing, mgl32.Vec3{}))
}

func TestWorldLoadScene(t *testing.T) {
	w := NewWorld(nil)

	custom := Preset(EffectFire)
	custom.Rate = 5
	def := &SceneDef{
		Effects: []EffectDef{
			{Effect: EffectFire, Position: mgl32.Vec3{0, 0, 0}},
			{Effect: EffectSnow, Position: mgl32.Vec3{0, 20, 0}},
			{Position: mgl32.Vec3{4, 0, 0}, Custom: &custom},
		},
	}

	ids, err := w.LoadScene(def)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.Equal(t, 3, w.Len())

	ps, ok := w.System(ids[2])
	require.True(t, ok)
	assert.Equal(t, float32(5), ps.Config().Rate)
	assert.Equal(t, mgl32.Vec3{4, 0, 0}, ps.Config().Position)
}
