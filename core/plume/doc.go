// Package plume implements a steady-state Gaussian plume dispersion model
// for ground-level smoke sources.
//
// Dispersion coefficients follow the Pasquill-Gifford empirical power-law
// curves, with the uncorrected vertical form for stable classes (E, F).
// Concentrations include complete ground reflection via an image source at
// the mirrored effective height.
package plume
