package ili9341

import (
	"testing"

	"periph.io/x/devices/v3/ili9341/rgb565"
	"periph.io/x/devices/v3/ili9341/transport"
)

func TestBurst(t *testing.T) {
	tests := []struct {
		name      string
		burstSize int
		count     int
		wantSizes []int
	}{
		{"single pixel", 1024, 1, []int{2}},
		{"smaller than buffer", 1024, 100, []int{200}},
		{"exactly one buffer", 1024, 512, []int{1024}},
		{"blocks and remainder", 1024, 1100, []int{1024, 1024, 152}},
		{"exact multiple", 8, 12, []int{8, 8, 8}},
		{"minimum buffer", 2, 3, []int{2, 2, 2}},
		{"odd remainder", 6, 5, []int{6, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newTestDev(t, &Opts{BurstSize: tt.burstSize})
			if err := d.burst(rgb565.Orange, tt.count); err != nil {
				t.Fatalf("burst() error = %v", err)
			}

			if got := rec.Count(transport.OpSelect); got != 1 {
				t.Errorf("selects = %d, want 1", got)
			}
			if got := rec.Count(transport.OpDeselect); got != 1 {
				t.Errorf("deselects = %d, want 1", got)
			}

			var sizes []int
			for _, op := range rec.Ops {
				if op.Kind == transport.OpTransmit {
					sizes = append(sizes, len(op.Data))
				}
			}
			if len(sizes) != len(tt.wantSizes) {
				t.Fatalf("transmit sizes = %v, want %v", sizes, tt.wantSizes)
			}
			for i := range sizes {
				if sizes[i] != tt.wantSizes[i] {
					t.Errorf("transmit sizes = %v, want %v", sizes, tt.wantSizes)
					break
				}
			}

			data := rec.Transmitted()
			if len(data) != 2*tt.count {
				t.Fatalf("transmitted %d bytes, want %d", len(data), 2*tt.count)
			}
			for i := 0; i < len(data); i += 2 {
				if data[i] != 0xFD || data[i+1] != 0x20 {
					t.Fatalf("pixel %d = %02X%02X, want FD20", i/2, data[i], data[i+1])
				}
			}
		})
	}
}

func TestBurstEmpty(t *testing.T) {
	for _, count := range []int{0, -1, -100} {
		d, rec := newTestDev(t, nil)
		if err := d.burst(rgb565.White, count); err != nil {
			t.Errorf("burst(%d) error = %v", count, err)
		}
		if len(rec.Ops) != 0 {
			t.Errorf("burst(%d) recorded %d ops, want 0", count, len(rec.Ops))
		}
	}
}
