package rgb565

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		r, g, b uint32
	}{
		{"black", Black, 0x0000, 0x0000, 0x0000},
		{"white", White, 0xFFFF, 0xFFFF, 0xFFFF},
		{"red", Red, 0xFFFF, 0x0000, 0x0000},
		{"green", Green, 0x0000, 0xFFFF, 0x0000},
		{"blue", Blue, 0x0000, 0x0000, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, ffff)",
					r, g, b, a, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Color
	}{
		{"black", 0, 0, 0, Black},
		{"white", 255, 255, 255, White},
		{"red", 255, 0, 0, Red},
		{"green", 0, 255, 0, Green},
		{"blue", 0, 0, 255, Blue},
		{"yellow", 255, 255, 0, Yellow},
		{"low bits dropped", 0x07, 0x03, 0x07, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGB(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("RGB(%d, %d, %d) = %#04x, want %#04x", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Color
	}{
		{"passthrough", Color(0x1234), 0x1234},
		{"black", color.Black, Black},
		{"white", color.White, White},
		{"rgba red", color.RGBA{0xFF, 0x00, 0x00, 0xFF}, Red},
		{"rgba cyan", color.RGBA{0x00, 0xFF, 0xFF, 0xFF}, Cyan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Model.Convert(tt.input).(Color); got != tt.want {
				t.Errorf("Model.Convert(%v) = %#04x, want %#04x", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorBytes(t *testing.T) {
	hi, lo := Orange.Bytes()
	if hi != 0xFD || lo != 0x20 {
		t.Errorf("Orange.Bytes() = (%#02x, %#02x), want (0xfd, 0x20)", hi, lo)
	}
}

func TestNewImage(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"320x240", image.Rect(0, 0, 320, 240), 640, 153600},
		{"240x320", image.Rect(0, 0, 240, 320), 480, 153600},
		{"1x1", image.Rect(0, 0, 1, 1), 2, 2},
		{"offset rect", image.Rect(10, 20, 13, 22), 6, 12},
		{"empty", image.Rect(0, 0, 0, 5), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestImageByteOrder(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 2, 1))
	img.SetRGB565(0, 0, 0xF81F)
	img.SetRGB565(1, 0, 0x07E0)

	want := []byte{0xF8, 0x1F, 0x07, 0xE0}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("Pix = %x, want %x", img.Pix, want)
	}
}

func TestImageSetGet(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 3, 2))
	rows := [][3]Color{
		{Red, Green, Blue},
		{White, Black, Orange},
	}

	for y, row := range rows {
		for x, c := range row {
			img.SetRGB565(x, y, c)
		}
	}
	for y, row := range rows {
		for x, want := range row {
			if got := img.RGB565At(x, y); got != want {
				t.Errorf("RGB565At(%d, %d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}

	if c, ok := img.At(0, 0).(Color); !ok || c != Red {
		t.Errorf("At(0, 0) = %v, want Red", img.At(0, 0))
	}

	img.Set(1, 1, color.White)
	if got := img.RGB565At(1, 1); got != White {
		t.Errorf("after Set(color.White), RGB565At = %#04x, want White", got)
	}
}

func TestImageOutOfBounds(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 4, 4))

	img.SetRGB565(-1, 0, White)
	img.SetRGB565(0, 4, White)
	img.SetRGB565(4, 0, White)

	for _, b := range img.Pix {
		if b != 0 {
			t.Fatal("out-of-bounds SetRGB565 modified the image")
		}
	}
	if got := img.RGB565At(-1, 0); got != 0 {
		t.Errorf("RGB565At(-1, 0) = %#04x, want 0", got)
	}
}

func TestImageOffsetRect(t *testing.T) {
	img := NewImage(image.Rect(100, 50, 104, 52))
	img.SetRGB565(100, 50, Yellow)

	if got := img.RGB565At(100, 50); got != Yellow {
		t.Errorf("RGB565At(100, 50) = %#04x, want Yellow", got)
	}
	if img.Pix[0] != 0xFF || img.Pix[1] != 0xE0 {
		t.Errorf("Pix[0:2] = %x, want ffe0", img.Pix[:2])
	}
	if got := img.PixOffset(101, 51); got != 10 {
		t.Errorf("PixOffset(101, 51) = %d, want 10", got)
	}
}

func TestImageSubImage(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 4, 4))
	img.SetRGB565(2, 2, Red)

	sub := img.SubImage(image.Rect(2, 2, 4, 4)).(*Image)
	if sub.Bounds() != image.Rect(2, 2, 4, 4) {
		t.Errorf("Bounds() = %v", sub.Bounds())
	}
	if got := sub.RGB565At(2, 2); got != Red {
		t.Errorf("sub RGB565At(2, 2) = %#04x, want Red", got)
	}

	sub.SetRGB565(3, 3, Blue)
	if got := img.RGB565At(3, 3); got != Blue {
		t.Error("SubImage does not share pixels with its parent")
	}

	if empty := img.SubImage(image.Rect(10, 10, 12, 12)); !empty.Bounds().Empty() {
		t.Errorf("disjoint SubImage bounds = %v, want empty", empty.Bounds())
	}
}

func TestEncode(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{0xFF, 0x00, 0x00, 0xFF})
	src.Set(1, 0, color.RGBA{0x00, 0xFF, 0x00, 0xFF})
	src.Set(0, 1, color.RGBA{0x00, 0x00, 0xFF, 0xFF})
	src.Set(1, 1, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})

	want := []byte{0xF8, 0x00, 0x07, 0xE0, 0x00, 0x1F, 0xFF, 0xFF}
	if got := Encode(src); !bytes.Equal(got, want) {
		t.Errorf("Encode() = %x, want %x", got, want)
	}

	native := NewImage(image.Rect(0, 0, 2, 1))
	native.SetRGB565(1, 0, Maroon)
	got := Encode(native)
	if !bytes.Equal(got, []byte{0x00, 0x00, 0x78, 0x00}) {
		t.Errorf("Encode(native) = %x", got)
	}
	got[0] = 0xAA
	if native.Pix[0] == 0xAA {
		t.Error("Encode should copy native pixels")
	}
}
