// Package spatial turns a traced 2D outline into plane frames, sphere
// projections and simple solids.
//
// Outlines come from [Contour], which thresholds a raster image and traces
// the longest boundary. [Inflate] projects plane points onto a sphere of
// radius r seen from height z, and [InflatedMesh] fills the outline with random
// interior points, triangulates them and inflates the result.
package spatial
