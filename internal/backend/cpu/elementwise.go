package cpu

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"

	"github.com/neura-ml/neura/internal/parallel"
)

// Add computes dst[i] = a[i] + b[i].
// dst may alias a or b. Requires: len(dst) == len(a) == len(b).
func Add[T constraints.Float](dst, a, b []T, cfg parallel.Config) {
	binary(dst, a, b, cfg, func(x, y T) T { return x + y }, floats.AddTo)
}

// Sub computes dst[i] = a[i] - b[i].
func Sub[T constraints.Float](dst, a, b []T, cfg parallel.Config) {
	binary(dst, a, b, cfg, func(x, y T) T { return x - y }, floats.SubTo)
}

// Mul computes the Hadamard product dst[i] = a[i] * b[i].
func Mul[T constraints.Float](dst, a, b []T, cfg parallel.Config) {
	binary(dst, a, b, cfg, func(x, y T) T { return x * y }, floats.MulTo)
}

// Scale computes dst[i] = a[i] * k. dst may alias a.
func Scale[T constraints.Float](dst, a []T, k T, cfg parallel.Config) {
	if d, ok := any(dst).([]float64); ok {
		s := any(a).([]float64)
		c := float64(k)
		parallel.ForRange(len(d), func(start, end int) {
			floats.ScaleTo(d[start:end], c, s[start:end])
		}, cfg)
		return
	}

	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] * k
		}
	}, cfg)
}

// binary dispatches plain float64 buffers to gonum and everything else to op.
func binary[T constraints.Float](dst, a, b []T, cfg parallel.Config, op func(x, y T) T,
	f64 func(dst, s, t []float64) []float64) {
	if d, ok := any(dst).([]float64); ok {
		x := any(a).([]float64)
		y := any(b).([]float64)
		parallel.ForRange(len(d), func(start, end int) {
			f64(d[start:end], x[start:end], y[start:end])
		}, cfg)
		return
	}

	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = op(a[i], b[i])
		}
	}, cfg)
}
