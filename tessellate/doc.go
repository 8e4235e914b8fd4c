// Package tessellate converts glyph outlines into filled triangle
// meshes.
//
// Outlines are normalized to em units with the origin at the outline
// bounding box minimum, curves are flattened adaptively within a
// tolerance, contours are grouped into outer rings and holes by the
// nonzero winding rule, and each group is triangulated by ear clipping
// with hole bridging.
//
// Smaller tolerances produce more triangles, monotonically. Callers
// normally pick a named Quality level rather than a raw tolerance so
// results stay predictable across fonts.
package tessellate
