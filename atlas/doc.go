// Package atlas packs glyph SDF bitmaps into growable texture atlases.
//
// A Set owns the atlases for one font. Codepoints are requested in
// batches; each new codepoint gets its SDF generated and blitted into
// the first atlas texture with free space (first-fit, in creation
// order). When no atlas fits, a new one is allocated, sized to the
// next power of two of the bitmap's largest dimension with a 1024
// pixel floor. Placements are assigned once and never relocated, and
// the set grows monotonically; there is no eviction.
//
// Codepoints that fail (absent from the font, or SDF generation error)
// are remembered in an attempted set: they are logged once, never
// retried, and never block their siblings.
package atlas
