package quarkgl

import "testing"

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#5b8cFF")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if c != RGB(0x5b, 0x8c, 0xff) {
		t.Fatalf("ParseHexColor = %+v", c)
	}
	if c.Hex() != "#5b8cff" {
		t.Fatalf("Hex() = %q", c.Hex())
	}
	for _, bad := range []string{"", "#12345", "#12345g", "1234567"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) err = nil, want error", bad)
		}
	}
}

func TestMulScalarClamps(t *testing.T) {
	c := RGB(200, 100, 50)
	if got := c.MulScalar(2); got != c {
		t.Fatalf("MulScalar(2) = %+v, want %+v", got, c)
	}
	if got := c.MulScalar(-1); got != RGB(0, 0, 0) {
		t.Fatalf("MulScalar(-1) = %+v, want black", got)
	}
}
