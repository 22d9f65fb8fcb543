package glimmer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ParticleVertex is one corner of a billboard quad, laid out the way the
// renderer's vertex stage consumes it.
type ParticleVertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec4
	UV       mgl32.Vec2
	Size     float32
}

// quad corner UVs, counter-clockwise from bottom-left
var quadUVs = [4]mgl32.Vec2{
	{0, 0},
	{1, 0},
	{1, 1},
	{0, 1},
}

// GenerateVertices rebuilds the vertex and index buffers for the current
// alive set as camera-facing quads. cameraRight and cameraUp are the
// camera-space basis, unscaled; the particle size supplies the scale.
//
// Call after Update within the same frame, otherwise the geometry reflects
// the previous state. The buffers are replaced wholesale on every call.
func (ps *ParticleSystem) GenerateVertices(cameraRight, cameraUp mgl32.Vec3) {
	ps.vertices = ps.vertices[:0]
	ps.indices = ps.indices[:0]

	base := uint32(0)
	for i := range ps.particles {
		p := &ps.particles[i]
		if !p.Alive() {
			continue
		}

		right := cameraRight.Mul(p.Size)
		up := cameraUp.Mul(p.Size)

		corners := [4]mgl32.Vec3{
			p.Position.Sub(right).Sub(up), // bottom-left
			p.Position.Add(right).Sub(up), // bottom-right
			p.Position.Add(right).Add(up), // top-right
			p.Position.Sub(right).Add(up), // top-left
		}
		for c := 0; c < 4; c++ {
			ps.vertices = append(ps.vertices, ParticleVertex{
				Position: corners[c],
				Color:    p.Color,
				UV:       quadUVs[c],
				Size:     p.Size,
			})
		}

		ps.indices = append(ps.indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
		base += 4
	}
}

// Vertices returns the buffer built by the last GenerateVertices call. The
// slice is owned by the system and reused between calls.
func (ps *ParticleSystem) Vertices() []ParticleVertex { return ps.vertices }

// Indices returns the index buffer built by the last GenerateVertices call.
func (ps *ParticleSystem) Indices() []uint32 { return ps.indices }

func (ps *ParticleSystem) VertexCount() int { return len(ps.vertices) }
func (ps *ParticleSystem) IndexCount() int  { return len(ps.indices) }
