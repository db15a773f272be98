package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/neura-ml/neura/tensor"
)

// parseShape parses a comma-separated list of dimensions, e.g. "2,3,4".
func parseShape(s string) (tensor.Shape, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty shape")
	}
	parts := strings.Split(s, ",")
	shape := make(tensor.Shape, 0, len(parts))
	for _, part := range parts {
		dim, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid dimension %q in shape %q", part, s)
		}
		if dim < 0 {
			return nil, errors.Errorf("negative dimension %d in shape %q", dim, s)
		}
		shape = append(shape, dim)
	}
	return shape, nil
}
