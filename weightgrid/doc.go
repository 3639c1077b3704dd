// Package weightgrid holds a rectangular lattice of signed integer cell
// weights together with a single traversal cursor.
//
// What:
//
//   - Grid wraps a width×height matrix, stored row-major (cells[y][x]).
//   - Weights are drawn once at construction from a WeightFn and never change.
//   - A cursor starts at (0,0) and is moved with MoveTo / ResetCursor.
//
// Why:
//
//   - Exhaustive lattice-path searches need cheap bounds and weight queries.
//   - Deterministic seeding makes two grids with the same seed identical,
//     which is what the sequential/parallel equivalence tests rely on.
//
// Size policy:
//
//   - Width and height must lie in the inclusive Bounds (default [2,12]).
//   - NewOrDefault substitutes a DefaultWidth×DefaultHeight grid when the
//     requested size is unsupported and reports ErrUnsupportedSize alongside.
//
// Move policy:
//
//   - Strict (default): MoveTo rejects targets outside the grid with
//     ErrInvalidMovement.
//   - Permissive: MoveTo assigns unconditionally; callers check IsValidMove.
//
// Concurrency:
//
//   - Weights are read-only and safe to share. The cursor is not; give each
//     goroutine its own Clone or serialize complete traversals.
//
// Errors:
//
//   - ErrUnsupportedSize: width or height outside Bounds.
//   - ErrEmptyGrid: FromValues input has no rows or no columns.
//   - ErrNonRectangular: FromValues rows differ in length.
//   - ErrOutOfRange: WeightAt queried outside the grid.
//   - ErrInvalidMovement: strict MoveTo outside the grid.
package weightgrid
