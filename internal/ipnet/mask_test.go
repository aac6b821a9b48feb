package ipnet

import "testing"

func TestParseMaskAcceptsBothForms(t *testing.T) {
	cases := []struct {
		raw  string
		bits int
		quad string
	}{
		{"255.255.255.0", 24, "255.255.255.0"},
		{"24", 24, "255.255.255.0"},
		{"/24", 24, "255.255.255.0"},
		{"255.255.0.0", 16, "255.255.0.0"},
		{"0.0.0.0", 0, "0.0.0.0"},
		{"255.255.255.255", 32, "255.255.255.255"},
		{"30", 30, "255.255.255.252"},
	}

	for _, tc := range cases {
		mask, err := ParseMask(tc.raw)
		if err != nil {
			t.Fatalf("ParseMask(%q) failed: %v", tc.raw, err)
		}
		if mask.Bits() != tc.bits {
			t.Fatalf("ParseMask(%q): expected %d bits, got %d", tc.raw, tc.bits, mask.Bits())
		}
		if mask.String() != tc.quad {
			t.Fatalf("ParseMask(%q): expected quad %s, got %s", tc.raw, tc.quad, mask)
		}
	}
}

func TestParseMaskRejectsInvalidInput(t *testing.T) {
	for _, raw := range []string{"", "33", "-1", "255.255.0.255", "255.254.255.0", "banana", "255.255.255"} {
		if _, err := ParseMask(raw); err == nil {
			t.Fatalf("expected ParseMask(%q) to fail", raw)
		}
	}
}

func TestMaskNetworkAppliesBitwiseAnd(t *testing.T) {
	mask, err := ParseMask("255.255.255.0")
	if err != nil {
		t.Fatalf("ParseMask failed: %v", err)
	}
	host, err := ParseHost("192.168.1.77")
	if err != nil {
		t.Fatalf("ParseHost failed: %v", err)
	}
	if got := mask.Network(host).String(); got != "192.168.1.0/24" {
		t.Fatalf("expected 192.168.1.0/24, got %s", got)
	}

	wide, _ := ParseMask("16")
	if got := wide.Network(host).String(); got != "192.168.0.0/16" {
		t.Fatalf("expected 192.168.0.0/16, got %s", got)
	}
}
