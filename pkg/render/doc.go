// Package render holds the snapshot renderers for track draw lists.
//
// Tracks produce renderer-agnostic draw lists; the subpackages rasterize
// them:
//
//   - [svg] writes a standalone SVG document, one <g> per track
//   - [raster] draws into an image context and encodes PNG
//
// Both renderers take the same inputs: a coordinate source (normally the
// viewport engine), the track list, and the snapshot width. Rendering an
// unready coordinate source yields an empty document rather than an
// error, matching how tracks treat the not-ready state.
//
//	var buf bytes.Buffer
//	if err := svg.Render(&buf, engine, tracks, 960); err != nil {
//	    ...
//	}
//
// The interactive terminal browser renders draw lists itself; it does not
// go through this package.
package render
