// Package paintstore persists texpaint surfaces to a key-value store.
//
// The persisted state is a single JSON root blob holding one entry per
// model id. The color raster is stored as a lossy JPEG (base64) at a
// configurable quality; the thickness map is stored losslessly-enough as
// either a sparse [index, value] list or a run-length encoding of values
// quantized to two decimals, whichever is smaller for the data at hand.
//
// All persistence failures are swallowed locally and logged through
// texpaint.Logger(): a quota failure retries once at reduced quality and
// then drops the model's saved state; a malformed or mismatched payload
// reads as "no saved state". Nothing here ever propagates an error into
// the interactive paint path.
package paintstore
