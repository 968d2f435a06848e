// Package gis draws layered GeoJSON maps.
//
// A map is a stack of [Layer] values, each backed by <dir>/<name>.geojson
// with WGS 84 coordinates. Polygon and MultiPolygon rings become filled
// shapes (the first ring of each polygon takes the outer style, holes the
// inner style) and LineStrings become polylines. Named layers add a text
// label above every feature that carries a "name" property.
//
// The same layers can be projected onto a sphere and exported as OBJ, and
// [Cleanup] produces thinned copies of heavy layers.
package gis
