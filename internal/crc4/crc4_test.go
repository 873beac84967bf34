package crc4

import (
	"math/rand"
	"testing"
)

// bitwise is the textbook shift-register form, used to cross-check the table.
func bitwise(p []byte) byte {
	crc := byte(Init)
	for _, b := range p {
		for i := 7; i >= 0; i-- {
			bit := (crc>>3)&1 ^ (b>>uint(i))&1
			crc = (crc << 1) & Mask
			if bit != 0 {
				crc ^= Poly
			}
		}
	}
	return crc ^ XorOut
}

func TestChecksum_GoldenVectors(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want byte
	}{
		{name: "empty", in: nil, want: Init},
		{name: "all zero frame", in: []byte{0x00, 0x00, 0x00, 0x00}, want: 0x9},
		// Documented TEST_CONFIG write 0x0F000407.
		{name: "crc disable frame", in: []byte{0x0F, 0x00, 0x04, 0x00}, want: 0x7},
		{name: "special read request", in: []byte{0x80, 0x00, 0x00, 0x00}, want: 0xF},
		{name: "conv start on device config", in: []byte{0x00, 0x00, 0x00, 0x10}, want: 0xC},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Checksum(tc.in); got != tc.want {
				t.Fatalf("Checksum(% X)=0x%X want 0x%X", tc.in, got, tc.want)
			}
		})
	}
}

func TestChecksum_MatchesBitwise(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		p := make([]byte, rng.Intn(9))
		rng.Read(p)
		if got, want := Checksum(p), bitwise(p); got != want {
			t.Fatalf("Checksum(% X)=0x%X bitwise=0x%X", p, got, want)
		}
	}
}

func TestChecksum_Deterministic(t *testing.T) {
	p := []byte{0x89, 0x12, 0x34, 0x00}
	a := Checksum(p)
	b := Checksum(p)
	if a != b {
		t.Fatalf("checksum not deterministic: 0x%X vs 0x%X", a, b)
	}
	if a > Mask {
		t.Fatalf("checksum 0x%X exceeds 4 bits", a)
	}
}

func TestCRC_IncrementalUpdate(t *testing.T) {
	p := []byte{0xAB, 0xCD, 0xE2, 0x00}
	c := New()
	c.Update(p[:1])
	c.Update(p[1:3])
	c.Update(p[3:])
	if got, want := c.Finish(), Checksum(p); got != want {
		t.Fatalf("incremental=0x%X one-shot=0x%X", got, want)
	}
}

func TestCRC_ResetClearsState(t *testing.T) {
	c := New()
	c.Update([]byte{0xFF, 0x01})
	c.Reset()
	c.Update([]byte{0x00, 0x00, 0x00, 0x00})
	if got := c.Finish(); got != 0x9 {
		t.Fatalf("after reset got 0x%X want 0x9", got)
	}
}

func TestChecksum_InsertAndVerifyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		var f [4]byte
		rng.Read(f[:])
		f[3] &^= Mask
		f[3] |= Checksum(f[:])

		got := f[3] & Mask
		f[3] &^= Mask
		if want := Checksum(f[:]); got != want {
			t.Fatalf("frame % X: inserted 0x%X recomputed 0x%X", f, got, want)
		}
	}
}
