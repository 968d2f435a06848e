// Package integrators implements explicit ODE integrators for
// [dynamo.System]: forward Euler, classic RK4 and the embedded
// Bogacki-Shampine (RK23) and Dormand-Prince (RK45) pairs.
//
// The integrators hold no per-step state and may be shared between
// goroutines.
package integrators
