package cliconfig

import (
	"errors"
	"strconv"
	"testing"

	"github.com/bft-labs/mandelbrot/internal/domain"
)

func TestParsePair(t *testing.T) {
	tests := []struct {
		s       string
		wantA   float64
		wantB   float64
		wantErr bool
	}{
		{"0.5x1.5", 0.5, 1.5, false},
		{"", 0, 0, true},
		{"0.5x", 0, 0, true},
		{"x1.5", 0, 0, true},
		{"0.51.5", 0, 0, true},
		{"0.5x1.5y", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			a, b, err := ParsePair(tt.s, "x", parseFloat)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePair(%q) error = %v, wantErr %v", tt.s, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, domain.ErrMalformedPair) {
					t.Errorf("ParsePair(%q) error = %v, want ErrMalformedPair", tt.s, err)
				}
				return
			}
			if a != tt.wantA || b != tt.wantB {
				t.Errorf("ParsePair(%q) = (%v, %v), want (%v, %v)", tt.s, a, b, tt.wantA, tt.wantB)
			}
		})
	}
}

func TestParsePairInt(t *testing.T) {
	tests := []struct {
		s       string
		wantA   int
		wantB   int
		wantErr bool
	}{
		{"10,20", 10, 20, false},
		{"", 0, 0, true},
		{"10,", 0, 0, true},
		{",10", 0, 0, true},
		{"10,20xy", 0, 0, true},
	}

	for _, tt := range tests {
		a, b, err := ParsePair(tt.s, ",", strconv.Atoi)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePair(%q) error = %v, wantErr %v", tt.s, err, tt.wantErr)
			continue
		}
		if err == nil && (a != tt.wantA || b != tt.wantB) {
			t.Errorf("ParsePair(%q) = (%d, %d), want (%d, %d)", tt.s, a, b, tt.wantA, tt.wantB)
		}
	}
}

func TestParseSize(t *testing.T) {
	g, err := ParseSize("1000x750")
	if err != nil {
		t.Fatalf("ParseSize returned error: %v", err)
	}
	if g.Width != 1000 || g.Height != 750 {
		t.Errorf("ParseSize = %dx%d, want 1000x750", g.Width, g.Height)
	}

	for _, s := range []string{"", "1000", "1000x", "x750", "1000X750", "1000x750x2"} {
		if _, err := ParseSize(s); err == nil {
			t.Errorf("ParseSize(%q) = nil error, want failure", s)
		}
	}
}

func TestParseComplex(t *testing.T) {
	c, err := ParseComplex("1.25,-0.0625")
	if err != nil {
		t.Fatalf("ParseComplex returned error: %v", err)
	}
	if c != complex(1.25, -0.0625) {
		t.Errorf("ParseComplex = %v, want (1.25-0.0625i)", c)
	}

	for _, s := range []string{",-0.0625", "1.25,", "1.25", "a,b"} {
		if _, err := ParseComplex(s); !errors.Is(err, domain.ErrMalformedPair) {
			t.Errorf("ParseComplex(%q) error = %v, want ErrMalformedPair", s, err)
		}
	}
}
