package util

import "testing"

func TestSanitizeLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"night scenes", "night_scenes"},
		{"  rooftops / chases!  ", "rooftops_chases"},
		{"v1.2-final", "v1.2-final"},
		{"///", "compilation"},
		{"", "compilation"},
	}
	for _, tc := range cases {
		if got := SanitizeLabel(tc.in); got != tc.want {
			t.Errorf("SanitizeLabel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMMSS(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65.9, "01:05"},
		{3600, "60:00"},
		{-3, "00:00"},
	}
	for _, tc := range cases {
		if got := FormatMMSS(tc.seconds); got != tc.want {
			t.Errorf("FormatMMSS(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestParseMMSSRoundTrip(t *testing.T) {
	for _, seconds := range []float64{0, 5, 59, 60, 61, 3599, 3661} {
		parsed, err := ParseMMSS(FormatMMSS(seconds))
		if err != nil {
			t.Fatalf("ParseMMSS(FormatMMSS(%v)) returned error: %v", seconds, err)
		}
		if parsed != float64(int(seconds)) {
			t.Fatalf("round trip of %v = %v, want %v", seconds, parsed, float64(int(seconds)))
		}
	}
}

func TestParseMMSSRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "12", "1:2:3", "aa:bb", "01:60", "-1:00"} {
		if _, err := ParseMMSS(in); err == nil {
			t.Errorf("ParseMMSS(%q) returned nil error", in)
		}
	}
}

func TestGenerateRandString(t *testing.T) {
	got := GenerateRandStringWithUpperLowerNum(8)
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
}
