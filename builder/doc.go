// Package builder generates synthetic location graphs for fixtures,
// benchmarks and the `lvroute generate` command.
//
// A generator is a Constructor closure run by BuildGraph against a fresh
// core.Builder; several constructors may be composed as long as their
// identifier schemes do not collide. Locations are laid out on the WGS-84
// ellipsoid around a configurable origin, and every edge weight is the
// geodesic distance between its endpoints multiplied by a detour factor of at
// least 1, so the great-circle heuristic stays admissible on generated graphs.
//
// Components:
//
//   - Constructors: Grid (4-neighbourhood street grid), Path (corridor) and
//     Scatter (random points joined into a connected k-nearest network).
//   - Configuration: BuilderOption values resolved into an immutable
//     builderConfig (origin, spacing, spread, unit, RNG, ID scheme, names,
//     importance, detour policy).
//   - Identifier schemes (IDFn): DefaultIDFn, ExcelColumnIDFn, PrefixIDFn.
//   - Detour policies (DetourFn): ExactDetour, ConstantDetour, UniformDetour.
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order produce identical
//     graphs (coordinates, identifiers and weights).
//   - Option constructors panic on meaningless input; constructors never panic
//     and report sentinel errors (ErrTooFewLocations, ErrNeedRandSource,
//     ErrConstructFailed) wrapped with the constructor name.
//
// The result is a frozen *core.Graph; dataset.FromGraph turns it into a
// document that can be written with dataset.Encode.
package builder
