package flags_test

import (
	"testing"

	"github.com/zora-rando/zora/pkg/flags"
	"pgregory.net/rapid"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	s := flags.NewSet()
	s.Set("major_item_shuffle", true)
	s.Set("shuffle_sword", true)
	s.Set("fast_text", true)

	encoded := flags.EncodeFlagstring(s)
	decoded, err := flags.DecodeFlagstring(encoded)
	if err != nil {
		t.Fatalf("DecodeFlagstring: %v", err)
	}

	// None of the flags set above are hidden-category, so every key
	// should survive the round trip unchanged.
	for _, key := range flags.Keys() {
		if s.Get(key) != decoded.Get(key) {
			t.Fatalf("flag %q: encode/decode mismatch", key)
		}
	}
}

func TestDecodeFlagstring_RejectsUnknownCharacter(t *testing.T) {
	if _, err := flags.DecodeFlagstring("BCX"); err == nil {
		t.Fatal("expected ErrInvalidFlagstring for character outside alphabet")
	}
}

func TestDecodeFlagstring_RejectsNonZeroPadding(t *testing.T) {
	encoded := flags.EncodeFlagstring(flags.NewSet())
	// "L" = 0b111, guaranteed to set every bit of the final character
	// including any padding bits it covers.
	corrupted := encoded[:len(encoded)-1] + "L"
	if _, err := flags.DecodeFlagstring(corrupted); err == nil {
		t.Fatal("expected ErrInvalidFlagstring for non-zero padding bits")
	}
}

func TestMasterToggle_ForcesDependentsOff(t *testing.T) {
	s := flags.NewSet()
	s.Set("major_item_shuffle", false)
	s.Set("shuffle_sword", true)

	if s.Effective("shuffle_sword") {
		t.Fatal("shuffle_sword should read false when major_item_shuffle is off")
	}
}

func TestValidate_RejectsLegacyFlagOnNonVanillaImage(t *testing.T) {
	s := flags.NewSet()
	s.Set("vanilla_legacy_overlay", true)
	if err := s.Validate(false); err == nil {
		t.Fatal("expected error for legacy flag on non-vanilla image")
	}
	if err := s.Validate(true); err != nil {
		t.Fatalf("legacy flag on vanilla image should validate: %v", err)
	}
}

func TestFlagstring_RoundTripProperty(t *testing.T) {
	keys := flags.Keys()
	rapid.Check(t, func(t *rapid.T) {
		s := flags.NewSet()
		for _, k := range keys {
			if rapid.Bool().Draw(t, k) {
				s.Set(k, true)
			}
		}
		encoded := flags.EncodeFlagstring(s)
		decoded, err := flags.DecodeFlagstring(encoded)
		if err != nil {
			t.Fatalf("DecodeFlagstring: %v", err)
		}
		for _, k := range keys {
			if cat, _ := flags.CategoryOf(k); cat == flags.CategoryHidden {
				continue
			}
			if s.Get(k) != decoded.Get(k) {
				t.Fatalf("flag %q mismatch after round trip", k)
			}
		}
	})
}
