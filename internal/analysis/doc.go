// Package analysis measures the long-run behaviour of attractor systems.
//
// [LyapunovExponent] follows a reference trajectory and a neighbour started
// a small distance away, renormalising the gap after every step; a positive
// result means nearby orbits diverge:
//
//	lambda := analysis.LyapunovExponent(sys, integrators.NewRK4(), x0, 0.01, 200, 1e-8)
//
// [Sweep] steps one named parameter across a range and records the local
// maxima of a chosen component after the transient, the data behind a
// bifurcation diagram. [SweepToASCII] draws it in the terminal.
package analysis
