// Package grid holds the mutable working state of a room layout while it is
// being generated: a rectangular array of cell states plus the two door
// arrays that record which neighboring cells are connected.
//
// What:
//
//   - Grid stores one CellState per cell (Empty, Spawner, Body).
//   - Horizontal doors hor[x][y] join (x,y) and (x+1,y); shape (w-1)×h.
//   - Vertical doors ver[x][y] join (x,y) and (x,y+1); shape w×(h-1).
//   - Neighbors enumerates in-bounds orthogonal neighbors with the Direction
//     that reaches them, in the fixed order Left, Right, Up, Down.
//   - Door / SetDoor translate a (point, direction) pair into the one door slot
//     shared by the two cells.
//
// Contract:
//
//	Door and SetDoor must only be called with a direction returned by
//	Neighbors for the same point. Anything else is a programming error and
//	panics; it is never reported as an error value.
//
// Complexity:
//
//   - New:       O(W×H) time and memory.
//   - Neighbors: O(1), at most four entries.
//   - Door:      O(1).
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
package grid
