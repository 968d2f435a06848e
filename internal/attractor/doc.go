// Package attractor provides the three-dimensional chaotic systems drawn by
// the attractor command.
//
// Most of them are members of two parameterised families:
//
//   - [Rossler]: rossler, bowl, stripe, spiral, lasso
//   - [Chua]: chua, ring, signature, disk, globe
//
// plus the classic [Lorenz] system. Every system implements
// [dynamo.System] and [dynamo.Configurable].
package attractor
