// Package roomgen grows connected room-and-corridor layouts on a
// rectangular grid.
//
// A layout starts from one epicenter and spreads outward in waves; a
// post-pass then opens extra doors to form loops, marks dead ends as chest
// locations and merges fully linked 2×2 blocks into big rooms.
//
// Quick ASCII example (3×2 layout, epicenter @, chest $):
//
//	#######
//	#@...$#
//	#.#####
//	#.....#
//	#######
//
// Under the hood, everything is organized under three packages:
//
//	grid/       working state: cell states, door arrays, neighbor queries
//	rooms/      Generate: wave growth, dead ends, big rooms, result
//	gridgraph/  layout analysis: components, door degree, dangling doors
//
// and one tool:
//
//	cmd/roomgen  generate from flags, dump as text or PNG
//
//	go get github.com/katalvlaran/roomgen/rooms
package roomgen
