// Package store persists lookup tables as NumPy ".npy" artifacts, with
// optional Snappy stream compression, so the generated data loads directly
// into the numerical stacks that consume it.
//
// What: writers and readers for flat int32/int64 arrays, dense square
// tables and CSR sparse tables. A dense table is written as a single
// row-major 1-D array; a CSR table fans out into four sibling files sharing
// one base path: <base>.indptr.npy, <base>.indices.npy, <base>.data.npy and
// <base>.shape.npy.
//
// Why: the table builders produce gigabyte-scale-adjacent arrays whose
// natural consumers are array runtimes, not Go programs. The ".npy" format
// is the lingua franca there, and Snappy keeps the sparse artifacts small
// without a heavyweight codec.
//
// Compression: pass WithSnappy to any writer and it appends ".sz" to the
// file name and wraps the stream. Readers detect compression from that
// suffix, so a path returned by a writer always reads back as written.
//
// Errors: all failures wrap one of the package sentinels (ErrBadShape,
// ErrEmptyPath) or carry the underlying I/O error with context; test with
// errors.Is.
package store
