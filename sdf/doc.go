// Package sdf generates single-channel signed distance fields from
// glyph outlines.
//
// An SDF encodes, per pixel, the distance to the nearest point of the
// glyph contour: 0.5 is exactly on the edge, values above 0.5 are
// inside the glyph and values below are outside. Sampling the field
// with a smoothstep around 0.5 yields resolution-independent
// anti-aliased edges.
//
// Generation works in two passes per pixel: the minimum Euclidean
// distance to any contour edge (lines and beziers solved analytically,
// cubics refined with Newton iteration), then a sign correction by the
// nonzero winding rule so interior pixels carry positive distance.
//
// The raster is padded so the glyph bounding box sits Range pixels
// inside the border on all sides; rows are stored bottom-up so the
// texture V axis matches the Y-up outline convention.
package sdf
