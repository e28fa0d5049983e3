package filter

import (
	"testing"

	"github.com/gogpu/relief/internal/parallel"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    float32
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 1},
		{"red", 255, 0, 0, 0.2126},
		{"green", 0, 255, 0, 0.7152},
		{"blue", 0, 0, 255, 0.0722},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luminance(tt.r, tt.g, tt.b); absf32(got-tt.want) > 1e-5 {
				t.Errorf("Luminance(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestGrayAlpha(t *testing.T) {
	src := make([]uint8, 3*1*4)
	setRGBA(src, 3, 0, 0, 255, 255, 255, 255)
	setRGBA(src, 3, 1, 0, 255, 255, 255, 0)
	setRGBA(src, 3, 2, 0, 255, 255, 255, 51)

	gray := GrayAlpha(src, 3, 1, parallel.Serial)

	if absf32(gray[0]-1) > 1e-5 {
		t.Errorf("opaque white = %v, want 1", gray[0])
	}
	if gray[1] != 0 {
		t.Errorf("transparent white = %v, want 0", gray[1])
	}
	if absf32(gray[2]-0.2) > 1e-5 {
		t.Errorf("20%% white = %v, want 0.2", gray[2])
	}
}
