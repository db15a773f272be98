// Package cpu implements the CPU kernels behind tensor operations.
//
// Kernels work on flat row-major buffers and precomputed shape metadata; the
// tensor package is responsible for validating shapes before calling them.
// Every kernel partitions its output into disjoint ranges through the parallel
// package, so results do not depend on the parallel configuration.
package cpu
