package cliconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bft-labs/mandelbrot/internal/domain"
)

// ParsePair splits s at the first occurrence of sep and parses both halves
// with parse. A missing separator, an empty half, or trailing garbage on
// either side is a parse failure (strconv rejects partial matches).
func ParsePair[T any](s, sep string, parse func(string) (T, error)) (T, T, error) {
	var zero T

	i := strings.Index(s, sep)
	if i < 0 {
		return zero, zero, fmt.Errorf("%w: %q has no %q separator", domain.ErrMalformedPair, s, sep)
	}

	a, err := parse(s[:i])
	if err != nil {
		return zero, zero, fmt.Errorf("%w: %q: %v", domain.ErrMalformedPair, s, err)
	}
	b, err := parse(s[i+len(sep):])
	if err != nil {
		return zero, zero, fmt.Errorf("%w: %q: %v", domain.ErrMalformedPair, s, err)
	}
	return a, b, nil
}

// ParseSize parses image dimensions of the form "WIDTHxHEIGHT".
func ParseSize(s string) (domain.Grid, error) {
	width, height, err := ParsePair(s, "x", strconv.Atoi)
	if err != nil {
		return domain.Grid{}, err
	}
	return domain.Grid{Width: width, Height: height}, nil
}

// ParseComplex parses a plane point of the form "RE,IM".
func ParseComplex(s string) (complex128, error) {
	re, im, err := ParsePair(s, ",", parseFloat)
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
