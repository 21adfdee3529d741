package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero(0, 0, 3, 4); v != 3 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero[string](); v != "" {
		t.Fatalf("got %v", v)
	}
}

func TestStrToBool(t *testing.T) {
	for _, s := range []string{"true", "T", "yes", "Y", "on", "1"} {
		if !StrToBool(s) {
			t.Fatalf("got false for %s", s)
		}
	}
	for _, s := range []string{"false", "no", "off", "0", "", "foo"} {
		if StrToBool(s) {
			t.Fatalf("got true for %s", s)
		}
	}
}
