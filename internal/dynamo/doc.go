// Package dynamo provides the ODE primitives used by the attractor
// exercises.
//
//   - [State]: vector representing system state
//   - [System]: interface for autonomous or time-dependent ODEs (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator
//   - [AdaptiveIntegrator]: integrator with an embedded error estimate
//   - [Simulator]: integrates a system over a time span
//
// # Example
//
//	sys, _ := attractor.Lookup("rossler")
//	sim := dynamo.New(sys, integrators.NewRK45())
//	result, _ := sim.Run(ctx, dynamo.State{-0.8, 0.8, 0.8}, dynamo.Config{Span: [2]float64{0, 150}, Dt: 0.01, Adaptive: true, Tolerance: 1e-6})
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe, and neither are integrators that
// keep scratch buffers. [Ensemble] builds a fresh simulator per run.
package dynamo
