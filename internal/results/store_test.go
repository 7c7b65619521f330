package results

import (
	"image"
	"image/png"
	"testing"
)

func testImage() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 8, 8))
}

func TestSavePNGAndList(t *testing.T) {
	store := New(t.TempDir())

	if err := store.SavePNG("ndvi_map", testImage()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.SavePNG("crop_health_map.png", testImage()); err != nil {
		t.Fatalf("save with extension: %v", err)
	}

	names, err := store.ListPNG()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 2 || names[0] != "crop_health_map.png" || names[1] != "ndvi_map.png" {
		t.Fatalf("names = %v", names)
	}
}

func TestSavePNGOverwrites(t *testing.T) {
	store := New(t.TempDir())

	if err := store.SavePNG("ndvi_map", testImage()); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.SavePNG("ndvi_map", testImage()); err != nil {
		t.Fatalf("second save: %v", err)
	}

	names, err := store.ListPNG()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 1 {
		t.Fatalf("expected single file after overwrite, got %v", names)
	}
}

func TestOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())

	if err := store.SavePNG("ndvi_map", testImage()); err != nil {
		t.Fatalf("save: %v", err)
	}

	f, err := store.Open("ndvi_map.png")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())

	for _, name := range []string{"../secret.png", "/etc/passwd", "a/b.png"} {
		if _, err := store.Open(name); err == nil {
			t.Fatalf("expected error for %q", name)
		}
	}
}

func TestListPNGMissingDir(t *testing.T) {
	store := New(t.TempDir() + "/does-not-exist")

	names, err := store.ListPNG()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if names != nil {
		t.Fatalf("expected nil names, got %v", names)
	}
}
