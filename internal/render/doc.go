// Package render draws merged regions over a page for visual inspection.
//
// Each region gets its own colour. Member quads are filled with a translucent
// tint, the region bounds are outlined, and an optional label plus a
// reading-order path mark where reading starts and how it proceeds. Drawing
// uses the golang.org/x/image/vector rasterizer so tilted quads come out
// anti-aliased.
package render
