package ili9341

import (
	"image"
	"testing"

	"periph.io/x/devices/v3/ili9341/rgb565"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		name string
		ch   rune
		want [5]byte
	}{
		{"space", ' ', [5]byte{}},
		{"A", 'A', [5]byte{0x7e, 0x11, 0x11, 0x11, 0x7e}},
		{"zero", '0', [5]byte{0x3e, 0x51, 0x49, 0x45, 0x3e}},
		{"newline is blank", '\n', [5]byte{}},
		{"NUL is blank", 0, [5]byte{}},
		{"non-ASCII is blank", 'é', [5]byte{}},
		{"DEL", 0x7F, [5]byte{0x7f, 0x41, 0x41, 0x41, 0x7f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := *glyph(tt.ch); got != tt.want {
				t.Errorf("glyph(%q) = % X, want % X", tt.ch, got, tt.want)
			}
		})
	}
}

func TestDrawCharScale1(t *testing.T) {
	d, rec := newTestDev(t, nil)
	if err := d.DrawChar('A', 20, 30, rgb565.White, 1, rgb565.Black); err != nil {
		t.Fatal(err)
	}

	writes := pixelWrites(rec)
	if len(writes) == 0 || writes[0].win != image.Rect(20, 30, 26, 38) {
		t.Fatalf("first write = %+v, want 6x8 background at (20,30)", writes)
	}

	colors, _ := painted(rec)
	for col, bits := range font['A'-' '] {
		for row := 0; row < GlyphHeight; row++ {
			want := rgb565.Black
			if bits&(1<<row) != 0 {
				want = rgb565.White
			}
			if got := colors[image.Pt(20+col, 30+row)]; got != want {
				t.Errorf("pixel (%d,%d) = %#04x, want %#04x", col, row, got, want)
			}
		}
	}
	for row := 0; row < GlyphHeight; row++ {
		if got := colors[image.Pt(25, 30+row)]; got != rgb565.Black {
			t.Errorf("spacing column row %d = %#04x, want background", row, got)
		}
	}
}

func TestDrawCharScaled(t *testing.T) {
	d, rec := newTestDev(t, nil)
	if err := d.DrawChar('I', 0, 0, rgb565.Red, 3, rgb565.Blue); err != nil {
		t.Fatal(err)
	}
	writes := pixelWrites(rec)
	if writes[0].win != image.Rect(0, 0, 18, 24) {
		t.Errorf("background = %v, want 18x24", writes[0].win)
	}
	set := 0
	for _, bits := range font['I'-' '] {
		for row := 0; row < GlyphHeight; row++ {
			if bits&(1<<row) != 0 {
				set++
			}
		}
	}
	if got := len(writes) - 1; got != set {
		t.Errorf("foreground blocks = %d, want %d", got, set)
	}
	for _, w := range writes[1:] {
		if w.win.Dx() != 3 || w.win.Dy() != 3 {
			t.Errorf("foreground block %v, want 3x3", w.win)
		}
	}
}

func TestDrawCharControlIsBlank(t *testing.T) {
	d, rec := newTestDev(t, nil)
	if err := d.DrawChar('\t', 0, 0, rgb565.Red, 2, rgb565.Blue); err != nil {
		t.Fatal(err)
	}
	if got := len(pixelWrites(rec)); got != 1 {
		t.Errorf("memory writes = %d, want background only", got)
	}
}

func TestDrawCharInvalidScale(t *testing.T) {
	d, rec := newTestDev(t, nil)
	for _, scale := range []int{0, -2} {
		if err := d.DrawChar('A', 0, 0, rgb565.Red, scale, rgb565.Blue); err != nil {
			t.Errorf("DrawChar(scale=%d) error = %v", scale, err)
		}
		if err := d.DrawText("AB", 0, 0, rgb565.Red, scale, rgb565.Blue); err != nil {
			t.Errorf("DrawText(scale=%d) error = %v", scale, err)
		}
	}
	if len(rec.Ops) != 0 {
		t.Errorf("recorded %d ops, want 0", len(rec.Ops))
	}
}

func TestDrawTextAdvance(t *testing.T) {
	const x, y, scale = 10, 40, 2
	d, rec := newTestDev(t, nil)
	if err := d.DrawText("AB", x, y, rgb565.White, scale, rgb565.Black); err != nil {
		t.Fatal(err)
	}

	cell := image.Rect(0, 0, GlyphWidth*scale, GlyphHeight*scale)
	var backgrounds []image.Rectangle
	for _, w := range pixelWrites(rec) {
		if w.win.Size() == cell.Size() {
			backgrounds = append(backgrounds, w.win)
		}
	}
	want := []image.Rectangle{
		cell.Add(image.Pt(x, y)),
		cell.Add(image.Pt(x+GlyphWidth*scale, y)),
	}
	if len(backgrounds) != len(want) {
		t.Fatalf("background fills = %v, want %v", backgrounds, want)
	}
	for i := range want {
		if backgrounds[i] != want[i] {
			t.Errorf("background %d = %v, want %v", i, backgrounds[i], want[i])
		}
	}
}

func TestDrawTextClippedAtEdge(t *testing.T) {
	d, rec := newTestDev(t, nil)
	// The third character starts at x=240 and is dropped.
	if err := d.DrawText("xyz", 228, 0, rgb565.White, 1, rgb565.Black); err != nil {
		t.Fatal(err)
	}
	colors, _ := painted(rec)
	for p := range colors {
		if !p.In(d.Bounds()) {
			t.Errorf("painted %v off the panel", p)
		}
	}
	if _, ok := colors[image.Pt(239, 0)]; !ok {
		t.Error("second character was not drawn up to the edge")
	}
}
