// Package gridgraph treats a generated room layout as a graph: walkable
// cells are vertices, open doors are edges, and the four cells of a merged
// big room are linked to each other.
//
// What:
//
//   - GridGraph wraps the four layout arrays (occupied, big cells, horizontal
//     and vertical doors) after checking their shapes.
//   - Identifies connected components of walkable cells.
//   - Reports per-cell door degree and structural neighbor counts.
//   - Counts dangling doors: open doors touching a non-walkable cell.
//
// Why:
//
//   - Verifying generated layouts: one component, no dangling doors.
//   - Content placement: degree-1 cells are natural dead ends.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H), Memory: O(W×H).
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//   - Degree:              O(1).
//
// Errors:
//
//   - ErrEmptyGrid: occupied has no columns or no rows.
//   - ErrNonRectangular: columns have differing lengths.
//   - ErrShapeMismatch: a door or big-cell array does not match the grid.
package gridgraph
