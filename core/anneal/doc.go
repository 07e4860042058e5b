// Package anneal searches burn-schedule space with simulated annealing.
//
// The optimizer perturbs one event's ignition time per iteration, accepts
// improvements greedily and worse candidates per the Metropolis criterion,
// and cools geometrically until the temperature floor or the iteration cap
// is reached. All randomness flows through an explicitly seeded source so
// runs are reproducible.
package anneal
