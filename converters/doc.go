// Package converters moves graphs in and out of the editor as text.
//
// Two plain-text shapes are supported, matching what users paste into an
// import box:
//
//   - edge list: one "source target [weight]" triple per line;
//   - adjacency matrix: N whitespace-separated rows of N cells, a nonzero
//     cell (r, c) meaning an edge r→c weighted by the cell.
//
// Parsing is forgiving: malformed lines and cells are skipped or read as
// zero, and only reader errors are returned. Imported nodes get positions
// from one of three layouts (circle, grid, random) since neither format
// carries coordinates.
//
// The full GraphData document (nodes with positions, edges with control
// points, the directed flag) round-trips through JSON or YAML; Load and Save
// pick the codec from the file extension.
package converters
