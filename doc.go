// Package jassdoc generates API reference pages for vJass code.
//
// # Pipeline
//
// jassdoc operates in two phases:
//
//  1. Populate: a declaration loader (a Risor script fed by an external
//     parser) declares every object into the pool. References between
//     objects are kept as raw text.
//
//  2. Resolve: every object is resolved exactly once, in pool order. Each
//     raw expression is probed against an ordered list of categories chosen
//     by its field kind and bound to the first object of that name. The
//     self keywords thistype and super are substituted beforehand.
//
// A resolved pool can then be rendered to HTML pages and exported to SQL.
//
// # Usage
//
//	e, err := jassdoc.New("path/to/scripts")
//	if err != nil { ... }
//
//	ctx := context.Background()
//	err = e.LoadPrelude(ctx)
//	err = e.LoadScript(ctx, "declarations.risor", nil)
//	stats, err := e.Resolve()
//
//	_, err = e.Render(ctx, jassdoc.DirSink{Root: "docs"})
//	_, err = e.Export("docs.db", "API Reference")
//
// # Diagnostics
//
// Domain problems (unresolved names, dangling container keys, duplicate
// identifiers) never fail the pipeline. They are collected as
// [Diagnostic] values available from [Engine.Diagnostics]. Only I/O and
// misuse of the Engine are returned as errors.
package jassdoc
