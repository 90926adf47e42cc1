package patch_test

import (
	"testing"

	"github.com/zora-rando/zora/pkg/patch"
	"pgregory.net/rapid"
)

func TestHash_OrderIndependent(t *testing.T) {
	a := patch.New()
	a.Set(10, 0xAB)
	a.Set(3, 0x01)
	a.Set(200, 0xFF)

	b := patch.New()
	b.Set(200, 0xFF)
	b.Set(3, 0x01)
	b.Set(10, 0xAB)

	if a.Hash() != b.Hash() {
		t.Fatalf("hash depends on insertion order: %d != %d", a.Hash(), b.Hash())
	}
}

func TestHash_DiffersOnContentChange(t *testing.T) {
	a := patch.New()
	a.Set(10, 0xAB)
	b := patch.New()
	b.Set(10, 0xAC)
	if a.Hash() == b.Hash() {
		t.Fatal("distinct contents hashed identically")
	}
}

func TestMerge_SameByteSilent(t *testing.T) {
	a := patch.New()
	a.Set(5, 0x10)
	b := patch.New()
	b.Set(5, 0x10)

	called := false
	a.Merge(b, func(offset uint32, oldByte, newByte byte) { called = true })
	if called {
		t.Fatal("onConflict invoked for identical-byte write")
	}
}

func TestMerge_DifferingByteReportsConflictAndSrcWins(t *testing.T) {
	a := patch.New()
	a.Set(5, 0x10)
	b := patch.New()
	b.Set(5, 0x20)

	var gotOffset uint32
	var gotOld, gotNew byte
	a.Merge(b, func(offset uint32, oldByte, newByte byte) {
		gotOffset, gotOld, gotNew = offset, oldByte, newByte
	})
	if gotOffset != 5 || gotOld != 0x10 || gotNew != 0x20 {
		t.Fatalf("unexpected conflict report: offset=%d old=%x new=%x", gotOffset, gotOld, gotNew)
	}
	got, ok := a.Get(5)
	if !ok || got != 0x20 {
		t.Fatalf("expected src to win merge, got %x ok=%v", got, ok)
	}
}

func TestApplyTo_OverlaysOntoCopy(t *testing.T) {
	base := []byte{0, 0, 0, 0, 0}
	p := patch.New()
	p.Set(1, 0xAA)
	p.Set(3, 0xBB)

	out, err := p.ApplyTo(base)
	if err != nil {
		t.Fatalf("ApplyTo: %v", err)
	}
	want := []byte{0, 0xAA, 0, 0xBB, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("byte %d: got %x want %x", i, out[i], want[i])
		}
	}
	if base[1] != 0 {
		t.Fatal("ApplyTo mutated base")
	}
}

func TestApplyTo_RejectsOutOfBounds(t *testing.T) {
	p := patch.New()
	p.Set(10, 0xFF)
	if _, err := p.ApplyTo([]byte{0, 0, 0}); err == nil {
		t.Fatal("expected out-of-bounds write to error")
	}
}

func TestDeterminism_HashIsAFunctionOfContentOnly(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		offsets := rapid.SliceOfDistinct(rapid.Uint32Range(0, 1000), func(o uint32) uint32 { return o }).Draw(t, "offsets")
		bytes := rapid.SliceOfN(rapid.Byte(), len(offsets), len(offsets)).Draw(t, "bytes")

		forward := patch.New()
		for i, o := range offsets {
			forward.Set(o, bytes[i])
		}
		backward := patch.New()
		for i := len(offsets) - 1; i >= 0; i-- {
			backward.Set(offsets[i], bytes[i])
		}
		if forward.Hash() != backward.Hash() {
			t.Fatalf("hash not invariant to write order")
		}
	})
}
