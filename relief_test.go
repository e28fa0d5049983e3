package relief

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

var gray128 = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

func TestApplyReliefErrors(t *testing.T) {
	base := NewPixmap(8, 8)
	mask := NewPixmap(8, 8)

	t.Run("nil base", func(t *testing.T) {
		if err := ApplyRelief(nil, mask, DefaultConfig()); !errors.Is(err, ErrNilPixmap) {
			t.Errorf("err = %v, want ErrNilPixmap", err)
		}
	})
	t.Run("nil mask", func(t *testing.T) {
		if err := ApplyRelief(base, nil, DefaultConfig()); !errors.Is(err, ErrNilPixmap) {
			t.Errorf("err = %v, want ErrNilPixmap", err)
		}
	})
	t.Run("size mismatch", func(t *testing.T) {
		err := ApplyRelief(base, NewPixmap(8, 9), DefaultConfig())
		if !errors.Is(err, ErrSizeMismatch) {
			t.Fatalf("err = %v, want ErrSizeMismatch", err)
		}
		var sm *SizeMismatchError
		if !errors.As(err, &sm) {
			t.Fatalf("err = %T, want *SizeMismatchError", err)
		}
		if sm.Base != image.Pt(8, 8) || sm.Mask != image.Pt(8, 9) {
			t.Errorf("sizes = %v, %v", sm.Base, sm.Mask)
		}
	})
	t.Run("non-finite config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Strength = math.Inf(1)
		if err := ApplyRelief(base, mask, cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("err = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestApplyReliefErrorsLeaveBaseUntouched(t *testing.T) {
	base := solidPixmap(8, 8, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	orig := base.Clone()

	_ = ApplyRelief(base, squareMask(8, 9, 2, 2, 6, 6), DefaultConfig())
	if !base.Equal(orig) {
		t.Error("size mismatch modified the base")
	}
}

func TestApplyReliefTransparentMaskIsNoOp(t *testing.T) {
	base := NewPixmap(64, 48)
	data := base.Data()
	for i := range data {
		data[i] = uint8(i * 31)
	}
	orig := base.Clone()

	// Colour without alpha is still transparent.
	mask := solidPixmap(64, 48, color.NRGBA{R: 255, G: 255, B: 255, A: 0})

	if err := ApplyRelief(base, mask, DefaultConfig()); err != nil {
		t.Fatalf("ApplyRelief() = %v", err)
	}
	if !base.Equal(orig) {
		t.Error("transparent mask changed the base")
	}
}

func TestApplyReliefEmptyImage(t *testing.T) {
	if err := ApplyRelief(NewPixmap(0, 0), NewPixmap(0, 0), DefaultConfig()); err != nil {
		t.Errorf("ApplyRelief(0x0) = %v", err)
	}
}

// The square covers [78, 178) on a 256x256 canvas; the edge depth is 8.
const (
	sqLo  = 78
	sqHi  = 178
	sqMid = 128
	depth = 8
)

func TestApplyReliefWhiteSquare(t *testing.T) {
	base := solidPixmap(256, 256, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	mask := squareMask(256, 256, sqLo, sqLo, sqHi, sqHi)

	if err := ApplyRelief(base, mask, DefaultConfig()); err != nil {
		t.Fatalf("ApplyRelief() = %v", err)
	}

	// Flat top: only ambient occlusion, 255 * (1 - 0.18).
	if got := base.GetPixel(sqMid, sqMid); got != (color.NRGBA{R: 209, G: 209, B: 209, A: 255}) {
		t.Errorf("centre = %v, want 209 gray", got)
	}
	// Far from the decal nothing changes.
	if got := base.GetPixel(4, 4); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("corner = %v, want white", got)
	}
	for i, v := range base.Data() {
		if i%4 == 3 && v != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", i/4, v)
		}
	}
}

func TestApplyReliefBevelShading(t *testing.T) {
	base := solidPixmap(256, 256, gray128)
	mask := squareMask(256, 256, sqLo, sqLo, sqHi, sqHi)

	if err := ApplyRelief(base, mask, DefaultConfig()); err != nil {
		t.Fatalf("ApplyRelief() = %v", err)
	}

	centre := base.GetPixel(sqMid, sqMid).R
	left := base.GetPixel(sqLo+5, sqMid).R
	right := base.GetPixel(sqHi-6, sqMid).R

	// The bevel rises towards the rim; its slopes face the light on the
	// right and away from it on the left.
	if right <= centre {
		t.Errorf("right slope %d, want brighter than the flat top %d", right, centre)
	}
	if left >= centre {
		t.Errorf("left slope %d, want darker than the flat top %d", left, centre)
	}
}

func TestApplyReliefEdgeOverlay(t *testing.T) {
	base := solidPixmap(256, 256, gray128)
	mask := squareMask(256, 256, sqLo, sqLo, sqHi, sqHi)

	if err := ApplyRelief(base, mask, DefaultConfig()); err != nil {
		t.Fatalf("ApplyRelief() = %v", err)
	}

	// The outer ring shifted by (-depth, -depth) lightens the canvas left of
	// the square ...
	if got := base.GetPixel(sqLo-5-depth, sqMid-depth).R; got <= 155 {
		t.Errorf("highlight = %d, want > 155", got)
	}
	// ... and shifted by (+depth, +depth) darkens it on the right.
	if got := base.GetPixel(sqHi-1+6+depth, sqMid+depth).R; got >= 90 {
		t.Errorf("shadow = %d, want < 90", got)
	}
	// Pixels far from the outline are untouched.
	if got := base.GetPixel(sqMid, 4).R; got != 128 {
		t.Errorf("unrelated pixel = %d, want 128", got)
	}
}

func TestApplyReliefZeroBevel(t *testing.T) {
	for _, bevel := range []int{0, -3} {
		base := solidPixmap(64, 64, gray128)
		cfg := DefaultConfig()
		cfg.BevelPx = bevel

		if err := ApplyRelief(base, squareMask(64, 64, 20, 20, 44, 44), cfg); err != nil {
			t.Fatalf("bevel %d: ApplyRelief() = %v", bevel, err)
		}
		if base.Equal(solidPixmap(64, 64, gray128)) {
			t.Errorf("bevel %d: base unchanged", bevel)
		}
	}
}

func TestApplyReliefZeroLightUsesDefault(t *testing.T) {
	mask := squareMask(96, 96, 30, 30, 66, 66)

	want := solidPixmap(96, 96, gray128)
	if err := ApplyRelief(want, mask, DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	got := solidPixmap(96, 96, gray128)
	cfg := DefaultConfig()
	cfg.Light = Vec3{}
	if err := ApplyRelief(got, mask, cfg); err != nil {
		t.Fatalf("ApplyRelief(zero light) = %v", err)
	}
	if !got.Equal(want) {
		t.Error("zero light differs from the default light")
	}
}

func TestApplyReliefDoesNotModifyMask(t *testing.T) {
	mask := squareMask(64, 64, 10, 10, 50, 50)
	orig := mask.Clone()
	if err := ApplyRelief(solidPixmap(64, 64, gray128), mask, DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if !mask.Equal(orig) {
		t.Error("ApplyRelief modified the mask")
	}
}

func BenchmarkApplyRelief512(b *testing.B) {
	mask := squareMask(512, 512, 128, 128, 384, 384)
	base := solidPixmap(512, 512, gray128)
	cfg := DefaultConfig()

	b.ReportAllocs()
	for b.Loop() {
		_ = ApplyRelief(base, mask, cfg)
	}
}
