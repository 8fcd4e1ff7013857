package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// pixelAt returns the four channels of pixel (x, y).
func pixelAt(b *ImageBuf, x, y int) [4]byte {
	row := b.RowBytes(y)
	return [4]byte(row[x*4 : x*4+4])
}

func TestFromStdImage_NRGBA(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	nrgba.Set(3, 3, color.NRGBA{R: 128, G: 64, B: 32, A: 200})

	buf := FromStdImage(nrgba)

	if buf.Width() != 10 || buf.Height() != 10 {
		t.Errorf("Dimensions = (%d, %d), want (10, 10)", buf.Width(), buf.Height())
	}
	if got := pixelAt(buf, 3, 3); got != [4]byte{128, 64, 32, 200} {
		t.Errorf("Pixel = %v, want [128 64 32 200]", got)
	}
}

func TestFromStdImage_SubImage(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	nrgba.Set(6, 7, color.NRGBA{R: 1, G: 2, B: 3, A: 4})

	buf := FromStdImage(nrgba.SubImage(image.Rect(5, 5, 9, 9)))

	if w, h := buf.Bounds(); w != 4 || h != 4 {
		t.Fatalf("Bounds() = (%d, %d), want (4, 4)", w, h)
	}
	if got := pixelAt(buf, 1, 2); got != [4]byte{1, 2, 3, 4} {
		t.Errorf("Pixel = %v, want [1 2 3 4]", got)
	}
}

func TestFromStdImage_Converts(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 4, 4))
	rgba.Set(1, 1, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	gray.SetGray(2, 2, color.Gray{Y: 77})

	tests := []struct {
		name string
		img  image.Image
		x, y int
		want [4]byte
	}{
		{"rgba", rgba, 1, 1, [4]byte{200, 100, 50, 255}},
		{"rgba transparent", rgba, 0, 0, [4]byte{0, 0, 0, 0}},
		{"gray", gray, 2, 2, [4]byte{77, 77, 77, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pixelAt(FromStdImage(tt.img), tt.x, tt.y); got != tt.want {
				t.Errorf("Pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromStdImage_Empty(t *testing.T) {
	if buf := FromStdImage(image.NewNRGBA(image.Rect(0, 0, 0, 5))); buf != nil {
		t.Error("FromStdImage of empty image should return nil")
	}
}

func TestEncodeDecodePNG(t *testing.T) {
	data := make([]byte, 6*3*4)
	copy(data[0:4], []byte{255, 0, 0, 255})
	copy(data[len(data)-4:], []byte{10, 20, 30, 128})
	buf, err := FromRaw(data, 6, 3)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := buf.EncodePNG(&out); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	got, err := Decode(&out)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(got.Data(), buf.Data()) {
		t.Error("decoded pixels differ from encoded pixels")
	}
}

func TestSaveLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	data := bytes.Repeat([]byte{9, 8, 7, 255}, 4)
	buf, err := FromRaw(data, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := buf.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	got, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if px := pixelAt(got, 1, 1); px != [4]byte{9, 8, 7, 255} {
		t.Errorf("Pixel = %v, want [9 8 7 255]", px)
	}
	assertOnlyEntries(t, filepath.Dir(path), "out.png")
}

// TestWriteFileAtomic_FailedWriteLeavesNothing checks that an encoder
// failing halfway neither creates the target nor leaves temporary files.
func TestWriteFileAtomic_FailedWriteLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	errWrite := errors.New("encoder gave up")

	err := writeFileAtomic(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("\x89PNG partial"))
		return errWrite
	})
	if !errors.Is(err, errWrite) {
		t.Fatalf("writeFileAtomic() error = %v, want %v", err, errWrite)
	}
	assertOnlyEntries(t, dir)
}

// TestWriteFileAtomic_KeepsOldFileOnError checks that an existing target is
// untouched when writing fails.
func TestWriteFileAtomic_KeepsOldFileOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	if err := os.WriteFile(path, []byte("previous"), 0o600); err != nil {
		t.Fatal(err)
	}

	err := writeFileAtomic(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("new"))
		return errors.New("fail")
	})
	if err == nil {
		t.Fatal("writeFileAtomic() should fail")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "previous" {
		t.Errorf("target = %q, want %q", got, "previous")
	}
	assertOnlyEntries(t, dir, "out.png")
}

// TestWriteFileAtomic_RenameFailure checks cleanup when the target cannot
// be replaced.
func TestWriteFileAtomic_RenameFailure(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "taken")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "keep"), nil, 0o600); err != nil {
		t.Fatal(err)
	}

	buf, _ := NewImageBuf(1, 1)
	if err := buf.SavePNG(target); err == nil {
		t.Fatal("SavePNG() onto a non-empty directory should fail")
	}
	assertOnlyEntries(t, dir, "taken")
}

func TestLoadErrors(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Decode(garbage) should fail")
	}
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("LoadImage(missing) should fail")
	}
	if err := (&ImageBuf{}).SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}

func TestDecodeStdPNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	src.Set(2, 1, color.NRGBA{R: 40, G: 50, B: 60, A: 70})

	var out bytes.Buffer
	if err := png.Encode(&out, src); err != nil {
		t.Fatal(err)
	}

	buf, err := Decode(&out)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := pixelAt(buf, 2, 1); got != [4]byte{40, 50, 60, 70} {
		t.Errorf("Pixel = %v, want [40 50 60 70]", got)
	}
}

// assertOnlyEntries fails unless dir holds exactly the named entries.
func assertOnlyEntries(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if len(got) != len(names) {
		t.Fatalf("%s holds %v, want %v", dir, got, names)
	}
	for i := range names {
		if got[i] != names[i] {
			t.Fatalf("%s holds %v, want %v", dir, got, names)
		}
	}
}
