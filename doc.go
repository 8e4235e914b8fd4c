// Package textmesh synthesizes GPU-ready text geometry from font files.
//
// # Overview
//
// textmesh turns raw TrueType/OpenType bytes into signed distance field
// glyph atlases, per-atlas textured quad meshes, and optional solid
// outline meshes for depth or shadow passes. It is the CPU side of a
// text renderer: all output is plain byte and float slices tagged with
// gputypes descriptors, ready for the host to upload.
//
// # Quick Start
//
//	import "github.com/gogpu/textmesh"
//
//	pipe, _ := textmesh.NewPipeline(textmesh.DefaultConfig())
//
//	face, _ := font.Load(ttfBytes)
//	fontID, _ := pipe.AddFont(face)
//
//	textID, _ := pipe.AddText(fontID, placements)
//
//	// Once per tick: drain glyph requests, rebuild meshes.
//	pipe.Update()
//
// # Architecture
//
// The module is organized into:
//   - font: font parsing, glyph metrics and outlines
//   - sdf: signed distance field glyph bitmaps
//   - tessellate: glyph outline triangulation
//   - atlas: dynamic glyph atlas packing
//   - textmesh (this package): mesh synthesis and the per-tick pipeline
//
// # Coordinate System
//
// Layout space is Y-up with glyphs positioned relative to the baseline;
// placement rectangles, glyph metrics, and mesh positions all share it.
// Atlas texture rows are stored bottom-up so the UV minimum corner
// pairs with the position minimum corner.
//
// # Concurrency
//
// The pipeline is single-threaded and staged per tick. Nothing blocks;
// codepoints that cannot be resolved this tick appear on a later one.
package textmesh

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
