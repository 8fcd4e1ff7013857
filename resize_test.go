package composite

import (
	"bytes"
	"errors"
	"testing"
)

// TestReconcileSameSizeIsShared tests that a canvas-sized layer reaches the
// engine without a resize or copy.
func TestReconcileSameSizeIsShared(t *testing.T) {
	calls := 0
	c := New(WithResizer(ResizerFunc(func(pix []byte, srcW, srcH, dstW, dstH int) ([]byte, error) {
		calls++
		return make([]byte, dstW*dstH*4), nil
	})))
	defer c.Close()

	data := gradient(4, 3, 1)
	l, err := NewLayer(1, LayerInput{Data: data, Width: 4, Height: 3})
	if err != nil {
		t.Fatal(err)
	}

	src, pooled, err := c.reconcile(1, l, 4, 3)
	if err != nil {
		t.Fatalf("reconcile() error = %v", err)
	}
	if calls != 0 {
		t.Errorf("resizer called %d times, want 0", calls)
	}
	if pooled {
		t.Error("a canvas-sized layer should not use a pooled buffer")
	}
	if &src.Data()[0] != &data[0] {
		t.Error("canvas-sized layer should not be copied")
	}
}

// TestReconcileCustomResizer tests that a custom resizer sees the right
// sizes and its output is composited.
func TestReconcileCustomResizer(t *testing.T) {
	type call struct{ srcW, srcH, dstW, dstH int }
	var got []call

	green := [4]byte{0, 255, 0, 255}
	r := ResizerFunc(func(pix []byte, srcW, srcH, dstW, dstH int) ([]byte, error) {
		got = append(got, call{srcW, srcH, dstW, dstH})
		return fill(dstW, dstH, green), nil
	})

	img, err := Compose([]LayerInput{
		{Data: fill(3, 2, [4]byte{0, 0, 0, 255}), Width: 3, Height: 2},
		{Data: fill(1, 1, [4]byte{9, 9, 9, 255}), Width: 1, Height: 1},
		{Data: fill(3, 2, [4]byte{0, 0, 0, 0}), Width: 3, Height: 2},
	}, WithResizer(r))
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if len(got) != 1 || got[0] != (call{1, 1, 3, 2}) {
		t.Errorf("resizer calls = %v, want one 1x1 -> 3x2", got)
	}
	if !bytes.Equal(img.Pix(), fill(3, 2, green)) {
		t.Errorf("Pix() = %v, want all green", img.Pix())
	}
}

// TestReconcileErrors tests that a broken resizer fails the call.
func TestReconcileErrors(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		resizer ResizerFunc
		wantGot int
		wantErr error
	}{
		{
			name: "wrong size",
			resizer: func(pix []byte, srcW, srcH, dstW, dstH int) ([]byte, error) {
				return make([]byte, 7), nil
			},
			wantGot: 7,
		},
		{
			name: "resizer error",
			resizer: func(pix []byte, srcW, srcH, dstW, dstH int) ([]byte, error) {
				return nil, errBoom
			},
			wantGot: -1,
			wantErr: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Compose([]LayerInput{
				{Data: make([]byte, 2*2*4), Width: 2, Height: 2},
				{Data: make([]byte, 4), Width: 1, Height: 1},
			}, WithResizer(tt.resizer))
			if img != nil {
				t.Error("image should be nil on error")
			}
			if !errors.Is(err, ErrReconciliation) {
				t.Fatalf("error = %v, want ErrReconciliation", err)
			}

			var rerr *ReconciliationError
			if !errors.As(err, &rerr) {
				t.Fatalf("error %T is not *ReconciliationError", err)
			}
			if rerr.Index != 1 || rerr.Got != tt.wantGot || rerr.Want != 16 {
				t.Errorf("ReconciliationError = %+v, want Index 1, Got %d, Want 16", rerr, tt.wantGot)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error should wrap %v", tt.wantErr)
			}
		})
	}
}

// TestReconcilePoolReuse tests that built-in resizes recycle scratch
// buffers through the pool.
func TestReconcilePoolReuse(t *testing.T) {
	c := New(WithPoolSize(2))
	defer c.Close()

	inputs := []LayerInput{
		{Data: gradient(8, 8, 1), Width: 8, Height: 8},
		{Data: gradient(2, 2, 2), Width: 2, Height: 2},
		{Data: gradient(4, 4, 3), Width: 4, Height: 4},
	}

	first, err := c.Compose(inputs)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if n := c.pool.Len(8, 8); n != 1 {
		t.Errorf("pool holds %d 8x8 buffers, want 1", n)
	}

	second, err := c.Compose(inputs)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if n := c.pool.Len(8, 8); n != 1 {
		t.Errorf("pool holds %d 8x8 buffers after reuse, want 1", n)
	}
	if !bytes.Equal(first.Pix(), second.Pix()) {
		t.Error("recycled scratch changed the result")
	}
}

// TestParseInterpolation tests kernel selection by name.
func TestParseInterpolation(t *testing.T) {
	tests := []struct {
		in      string
		want    Interpolation
		wantErr bool
	}{
		{"nearest", InterpNearest, false},
		{"bilinear", InterpBilinear, false},
		{"approx-bilinear", InterpApproxBilinear, false},
		{"catmull-rom", InterpCatmullRom, false},
		{"bicubic", InterpCatmullRom, false},
		{"sinc", InterpNearest, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInterpolation(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInterpolation(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseInterpolation(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestInterpolationKernels tests that every kernel keeps an opaque solid
// overlay solid after resizing onto the canvas.
func TestInterpolationKernels(t *testing.T) {
	for _, k := range []Interpolation{InterpNearest, InterpApproxBilinear, InterpBilinear, InterpCatmullRom} {
		t.Run(k.String(), func(t *testing.T) {
			img, err := Compose([]LayerInput{
				{Data: fill(13, 7, [4]byte{0, 0, 0, 255}), Width: 13, Height: 7},
				{Data: fill(3, 5, [4]byte{40, 80, 120, 255}), Width: 3, Height: 5},
			}, WithInterpolation(k))
			if err != nil {
				t.Fatalf("Compose() error = %v", err)
			}
			if !bytes.Equal(img.Pix(), fill(13, 7, [4]byte{40, 80, 120, 255})) {
				t.Error("resized solid overlay is not uniform")
			}
		})
	}
}
