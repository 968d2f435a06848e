// Package viz draws fractals, attractors and meshes in the terminal.
//
//   - [Canvas]: braille dot canvas used for trajectory and wireframe previews
//   - [Shade] and [Ramp]: colormapped or ASCII rendering of an intensity grid
//   - [Explorer]: bubbletea model for panning and zooming a fractal
//
// # Key Bindings
//
//	arrows / hjkl - pan by a tenth of the view
//	+ / -         - zoom in or out around the center
//	[ / ]         - halve or double the iteration limit
//	tab           - next fractal
//	t             - cycle themes
//	r             - back to the home view
//	q             - quit
package viz
