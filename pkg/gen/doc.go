// Package gen is the code-generation driver: it discovers codec documents,
// compiles them in parallel into an encoder, renders each codec through a
// language pack's template mapping, and splices the rendered fragments into
// the pack's output file templates between C2E markers.
//
// The driver sits outside the core compilation contract: pkg/codec only
// guarantees deterministic rendering of a well-formed tree; everything about
// language packs, marker splicing, and file layout is policy owned here.
package gen
