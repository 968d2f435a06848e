// Package export writes rendered grids, trajectories and meshes to files:
// PNG and animated GIF rasters, SVG paths, Wavefront OBJ meshes and JSON
// trajectory dumps.
package export
