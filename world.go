package glimmer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// EffectId is the opaque handle for a running effect inside a World.
type EffectId string

func makeEffectId() EffectId {
	return EffectId(uuid.NewString())
}

// World manages a set of running particle effects and merges their geometry
// into one vertex/index buffer pair per frame. Like the systems it owns it
// is single-threaded and frame-driven.
type World struct {
	effects map[EffectId]*ParticleSystem
	order   []EffectId // stable iteration order for geometry merging

	vertices []ParticleVertex
	indices  []uint32

	log Logger
}

// NewWorld creates an empty effect registry. A nil logger is replaced with
// the no-op logger.
func NewWorld(logger Logger) *World {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &World{
		effects: make(map[EffectId]*ParticleSystem),
		log:     logger,
	}
}

// Spawn starts a preset effect at the given position and returns its handle.
func (w *World) Spawn(effect EffectType, position mgl32.Vec3) EffectId {
	id := makeEffectId()
	w.effects[id] = NewSystemFromPreset(effect, position)
	w.order = append(w.order, id)
	w.log.Debugf("spawned %s effect %s at %v", effect, id, position)
	return id
}

// SpawnCustom starts an effect from a custom configuration.
func (w *World) SpawnCustom(cfg EmitterConfig) (EffectId, error) {
	ps, err := NewSystem(cfg)
	if err != nil {
		return "", err
	}
	id := makeEffectId()
	w.effects[id] = ps
	w.order = append(w.order, id)
	w.log.Debugf("spawned custom effect %s at %v", id, cfg.Position)
	return id, nil
}

// System returns the underlying particle system for a handle.
func (w *World) System(id EffectId) (*ParticleSystem, bool) {
	ps, ok := w.effects[id]
	return ps, ok
}

func (w *World) SetPosition(id EffectId, position mgl32.Vec3) bool {
	ps, ok := w.effects[id]
	if ok {
		ps.SetPosition(position)
	}
	return ok
}

func (w *World) Start(id EffectId) bool {
	ps, ok := w.effects[id]
	if ok {
		ps.Start()
	}
	return ok
}

func (w *World) Stop(id EffectId) bool {
	ps, ok := w.effects[id]
	if ok {
		ps.Stop()
	}
	return ok
}

// Remove drops an effect from the registry immediately; its particles do not
// decay first.
func (w *World) Remove(id EffectId) bool {
	if _, ok := w.effects[id]; !ok {
		return false
	}
	delete(w.effects, id)
	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	w.log.Debugf("removed effect %s", id)
	return true
}

func (w *World) Len() int { return len(w.effects) }

func (w *World) AliveCount() int {
	total := 0
	for _, ps := range w.effects {
		total += ps.AliveCount()
	}
	return total
}

// Update advances every effect by dt seconds.
func (w *World) Update(dt float32) {
	for _, id := range w.order {
		w.effects[id].Update(dt)
	}
}

// Geometry rebuilds per-effect billboards against the camera basis and
// merges them, rebasing indices onto the combined vertex buffer. The
// returned slices are owned by the World and reused between calls.
func (w *World) Geometry(cameraRight, cameraUp mgl32.Vec3) ([]ParticleVertex, []uint32) {
	w.vertices = w.vertices[:0]
	w.indices = w.indices[:0]

	for _, id := range w.order {
		ps := w.effects[id]
		ps.GenerateVertices(cameraRight, cameraUp)

		base := uint32(len(w.vertices))
		w.vertices = append(w.vertices, ps.Vertices()...)
		for _, idx := range ps.Indices() {
			w.indices = append(w.indices, base+idx)
		}
	}
	return w.vertices, w.indices
}

// EffectDef declares one effect in a scene definition. A non-nil Custom
// overrides the preset selection.
type EffectDef struct {
	Effect   EffectType
	Position mgl32.Vec3
	Custom   *EmitterConfig
}

// SceneDef is the declarative initial state of a world.
type SceneDef struct {
	Effects []EffectDef
}

// LoadScene spawns every effect in the definition and returns their handles
// in declaration order.
func (w *World) LoadScene(def *SceneDef) ([]EffectId, error) {
	ids := make([]EffectId, 0, len(def.Effects))
	for _, e := range def.Effects {
		if e.Custom != nil {
			cfg := *e.Custom
			cfg.Position = e.Position
			id, err := w.SpawnCustom(cfg)
			if err != nil {
				return ids, err
			}
			ids = append(ids, id)
			continue
		}
		ids = append(ids, w.Spawn(e.Effect, e.Position))
	}
	return ids, nil
}
