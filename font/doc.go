// Package font adapts parsed font binaries for glyph mesh generation.
//
// A Face wraps a parsed TrueType/OpenType font and exposes the three
// things the rest of the module needs: em-normalized glyph metrics,
// vector outlines in font units, and line metrics. Parsing itself is
// pluggable through the FontParser interface; two backends are
// registered by default:
//
//   - "ximage" (default): golang.org/x/image/font/opentype
//   - "gotext": github.com/go-text/typesetting
//
// All outline coordinates are in font units with Y pointing up,
// regardless of backend.
package font
