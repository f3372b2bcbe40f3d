// Package alignkit synthesizes explicit geometric curves from business
// descriptions of roadway and rail alignments.
//
// An alignment is described as ordered layouts of typed segments: a
// horizontal layout of lines, circular arcs, and transition spirals
// (clothoid, cubic, Helmert, Bloss, cosine, sine, Viennese bend); zero or
// more vertical layouts of constant grades, parabolic arcs, and circular
// arcs; and optional cant layouts describing superelevation. The package
// turns those layouts into layered composite curves, a plane curve under
// a gradient curve under a segmented reference curve, that evaluate to
// position, tangent, and curvature at any distance along the alignment.
//
// The [Orchestrator] is the facade over the machinery in the subpackages:
// alignkit/segment holds the business segment types, alignkit/synth maps
// segments onto parametric primitives and maintains the composite curves,
// alignkit/primitive evaluates the parametric curve families,
// alignkit/geom supplies points, vectors, and frames, and
// alignkit/station keeps the stationing ledger of named referents.
//
// Layouts and curves always end in a zero-length sentinel segment that
// anchors the end-of-alignment referent; every append splices before the
// sentinel and reclassifies the transition codes of the boundaries it
// touches. Segments can be appended one by one, expanded from points of
// intersection (the PI method), or read from a CSV batch description.
// One horizontal layout can carry several vertical profiles: beginning a
// second profile moves the first onto an implicit child alignment, and
// each profile from then on lives under its own child reusing the shared
// plane curve.
//
// All operations are synchronous single-writer mutations of the
// alignment graph. Batch operations are not transactional: each segment
// commits independently, so a failed batch leaves a valid truncated
// alignment.
package alignkit
