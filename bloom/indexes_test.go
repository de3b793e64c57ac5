package bloom

import "testing"

// Slot positions are part of the observable contract insofar as they must be
// stable across runs and processes for the same value.
func TestIndexesStable(t *testing.T) {
	f := New(DefaultSlots)

	tests := []struct {
		value      string
		i1, i2, i3 uint
	}{
		// fnv64a % 10000, crc32 % 10000, md5-as-128-bit-int % 10000
		{"hello", 6491, 870, 2994},
		{"3f1b28f", 8337, 7184, 6948},
	}

	for _, tt := range tests {
		i1, i2, i3 := f.indexes(tt.value)
		if i1 != tt.i1 || i2 != tt.i2 || i3 != tt.i3 {
			t.Fatalf("indexes(%q) = (%d, %d, %d), want (%d, %d, %d)",
				tt.value, i1, i2, i3, tt.i1, tt.i2, tt.i3)
		}
	}

	// Same value, same slots, every time.
	for i := 0; i < 100; i++ {
		i1, i2, i3 := f.indexes("hello")
		if i1 != 6491 || i2 != 870 || i3 != 2994 {
			t.Fatal("indexes not deterministic")
		}
	}
}

// A prime slot count exercises the modulo paths.
const primeSlots = 97

func TestIndexesWithinRange(t *testing.T) {
	f := New(primeSlots)
	for _, v := range []string{"", "a", "hello", "https://example.com/a"} {
		i1, i2, i3 := f.indexes(v)
		if i1 >= primeSlots || i2 >= primeSlots || i3 >= primeSlots {
			t.Fatalf("index out of range for %q: %d %d %d", v, i1, i2, i3)
		}
	}
}
