package algebra

import (
	"math/rand"
	"testing"
)

func oneTestInvModB(t *testing.T, i uint64) {
	t.Helper()
	if j := invModB(i); i*j != 1 {
		t.Fatalf("invModB(%d) wrong", i)
	}
}

func TestInvModB(t *testing.T) {
	r := rand.New(rand.NewSource(61))
	for i := uint64(1); i < 1000000; i += 2 {
		oneTestInvModB(t, i)
		oneTestInvModB(t, i*i)
		oneTestInvModB(t, -i)
		oneTestInvModB(t, -(i * i))
		oneTestInvModB(t, 1+2*r.Uint64())
	}
	oneTestInvModB(t, 4891460686036598785)
	oneTestInvModB(t, 4403968944856104961)
}

func TestParseNat(t *testing.T) {
	n, err := parseNat("0x40000000000000000001", 2)
	if err != nil {
		t.Fatal(err)
	}
	if n[0] != 1 || n[1] != 0x4000 {
		t.Fatalf("hex natural parsed wrong: %x %x", n[1], n[0])
	}
	if n.Bit(0) != 1 || n.Bit(1) != 0 || n.Bit(78) != 1 {
		t.Fatalf("bit accessor wrong")
	}

	for _, s := range []string{"-5", "zzz", "0x40000000000000000001"} {
		if _, err := parseNat(s, 1); err == nil {
			t.Fatalf("parseNat(%q, 1) accepted a bad natural", s)
		}
	}
}

func TestMacWide(t *testing.T) {
	// (2^64 - 1) * (2^64 - 1) accumulated twice
	g := natFromUint64(^uint64(0))
	var acc [3]uint64
	macWide(acc[:], ^uint64(0), &g, 1)
	macWide(acc[:], ^uint64(0), &g, 1)
	// 2 * (2^128 - 2^65 + 1)
	if acc[0] != 2 || acc[1] != ^uint64(0)-3 || acc[2] != 1 {
		t.Fatalf("macWide carries wrong: %x %x %x", acc[2], acc[1], acc[0])
	}
}
