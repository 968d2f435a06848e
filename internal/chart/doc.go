// Package chart renders PNG charts with gonum plot: line and marker
// series, grouped bars, polygons, heat maps and tiled multi-panel figures.
package chart
