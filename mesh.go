package textmesh

import "github.com/gogpu/gputypes"

// MeshBuffer is a CPU-side textured quad mesh for one atlas texture.
// Vertex attributes are parallel slices; the host uploads them as-is.
type MeshBuffer struct {
	// Positions are vertex positions in layout space, Z always 0.
	Positions [][3]float32

	// UVs are normalized atlas texture coordinates per vertex.
	UVs [][2]float32

	// Colors are RGBA vertex colors.
	Colors [][4]float32

	// Indices reference vertices, three per triangle.
	Indices []uint32

	// Topology describes the primitive layout for GPU upload.
	Topology gputypes.PrimitiveTopology

	dirty bool
}

func newMeshBuffer() *MeshBuffer {
	return &MeshBuffer{Topology: gputypes.PrimitiveTopologyTriangleList}
}

// appendQuad adds one glyph quad: four corners counter-clockwise from
// the minimum, two counter-clockwise triangles. minPos/maxPos and
// minUV/maxUV pair corner for corner; atlas rows are bottom-up, so no
// V flip is needed.
func (m *MeshBuffer) appendQuad(minPos, maxPos [2]float32, minUV, maxUV [2]float32, color RGBA) {
	base := uint32(len(m.Positions))

	m.Positions = append(m.Positions,
		[3]float32{minPos[0], minPos[1], 0},
		[3]float32{maxPos[0], minPos[1], 0},
		[3]float32{maxPos[0], maxPos[1], 0},
		[3]float32{minPos[0], maxPos[1], 0},
	)
	m.UVs = append(m.UVs,
		[2]float32{minUV[0], minUV[1]},
		[2]float32{maxUV[0], minUV[1]},
		[2]float32{maxUV[0], maxUV[1]},
		[2]float32{minUV[0], maxUV[1]},
	)
	c := [4]float32{color.R, color.G, color.B, color.A}
	m.Colors = append(m.Colors, c, c, c, c)

	m.Indices = append(m.Indices,
		base, base+1, base+3,
		base+1, base+2, base+3,
	)
	m.dirty = true
}

// QuadCount returns the number of glyph quads in the buffer.
func (m *MeshBuffer) QuadCount() int {
	return len(m.Positions) / 4
}

// Dirty reports whether the buffer changed since the last MarkClean.
func (m *MeshBuffer) Dirty() bool {
	return m.dirty
}

// MarkClean clears the dirty flag after the caller uploaded the buffer.
func (m *MeshBuffer) MarkClean() {
	m.dirty = false
}

// ProfileMesh is the combined solid outline mesh of a text object.
// All glyph tessellations are concatenated with a shared index buffer.
type ProfileMesh struct {
	// Positions are vertex positions in layout space, Z always 0.
	Positions [][3]float32

	// Normals are flat +Z vertex normals so depth and shadow pipelines
	// have valid vertex inputs.
	Normals [][3]float32

	// Indices reference vertices, three per triangle.
	Indices []uint32

	// Topology describes the primitive layout for GPU upload.
	Topology gputypes.PrimitiveTopology

	// Mode records the purpose the mesh was built for.
	Mode ProfileMode

	dirty bool
}

func newProfileMesh(mode ProfileMode) *ProfileMesh {
	return &ProfileMesh{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		Mode:     mode,
	}
}

// TriangleCount returns the number of triangles in the mesh.
func (m *ProfileMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Dirty reports whether the mesh changed since the last MarkClean.
func (m *ProfileMesh) Dirty() bool {
	return m.dirty
}

// MarkClean clears the dirty flag after the caller uploaded the mesh.
func (m *ProfileMesh) MarkClean() {
	m.dirty = false
}
