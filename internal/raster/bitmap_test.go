package raster

import "testing"

func TestBitmap_SetAt(t *testing.T) {
	bm := NewBitmap(10, 5)

	if bm.W != 10 || bm.H != 5 {
		t.Fatalf("dimensions: got %dx%d, want 10x5", bm.W, bm.H)
	}

	bm.Set(3, 2, 255)
	if got := bm.At(3, 2); got != 255 {
		t.Errorf("At(3,2): got %d, want 255", got)
	}
	if !bm.White(3, 2) {
		t.Error("White(3,2) should be true after Set(3,2,255)")
	}
	if bm.White(4, 2) {
		t.Error("White(4,2) should be false on an untouched pixel")
	}
}

func TestBitmap_Clone(t *testing.T) {
	bm := NewBitmap(4, 4)
	bm.Set(1, 1, 255)

	clone := bm.Clone()
	clone.Set(1, 1, 0)
	clone.Set(2, 2, 255)

	if !bm.White(1, 1) {
		t.Error("mutating the clone changed the original at (1,1)")
	}
	if bm.White(2, 2) {
		t.Error("mutating the clone changed the original at (2,2)")
	}
}

func TestBitmap_Distinct(t *testing.T) {
	tests := []struct {
		name string
		fill func(*Bitmap)
		want int
	}{
		{"all black", func(bm *Bitmap) {}, 1},
		{"binary", func(bm *Bitmap) { bm.Set(0, 0, 255) }, 2},
		{"three values", func(bm *Bitmap) {
			bm.Set(0, 0, 255)
			bm.Set(1, 0, 128)
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm := NewBitmap(8, 8)
			tt.fill(bm)
			if got := bm.Distinct(); got != tt.want {
				t.Errorf("Distinct: got %d, want %d", got, tt.want)
			}
		})
	}
}
