// Package pkg provides the core libraries for the Nightingale sequence viewer.
//
// # Overview
//
// Nightingale shows protein sequences as aligned, zoomable tracks. All
// tracks of a view share one visible range; the viewport engine owns the
// position-to-pixel mapping and every other package either feeds it data
// or reads coordinates from it. The pkg directory is organized into four
// main areas:
//
//  1. [viewport] - The coordinate engine (scale, transform, range sync)
//  2. [track], [render] - Track widgets and their SVG/PNG renderers
//  3. [data], [integrations] - Input parsing and external API clients
//  4. [cache], [session], [httputil] - Storage and transport infrastructure
//
// # Architecture
//
// The typical data flow through Nightingale:
//
//	UniProt / contact map file
//	         ↓
//	    [integrations/uniprot], [data] (fetch and parse)
//	         ↓
//	    [viewport] (visible range → transform → pixel coordinates)
//	         ↓
//	    [track] (draw lists against the shared coordinates)
//	         ↓
//	    [render/svg], [render/raster] or the terminal browser
//
// # Quick Start
//
// Fetch an entry and render a zoomed snapshot:
//
//	import (
//	    "github.com/elena-krismer/nightingale/pkg/httputil"
//	    "github.com/elena-krismer/nightingale/pkg/integrations/uniprot"
//	    "github.com/elena-krismer/nightingale/pkg/render/svg"
//	    "github.com/elena-krismer/nightingale/pkg/track"
//	    "github.com/elena-krismer/nightingale/pkg/viewport"
//	)
//
//	cache, _ := httputil.NewCache("", 24*time.Hour)
//	entry, _ := uniprot.NewClient(cache).FetchEntry(ctx, "P05067", false)
//
//	engine := viewport.New(viewport.Dimensions{Width: 960}, entry.Length)
//	_ = engine.SetFromVisibleRange(250, 260)
//
//	tracks := []track.Track{track.NewSequenceTrack(entry.Sequence)}
//	_ = svg.Render(w, engine, tracks, 960)
package pkg
