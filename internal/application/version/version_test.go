package version

import "testing"

func TestParseNumericVersion(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1.2.3", 1002003},
		{"v1.2.3-beta.1", 1002003},
		{"0.10.0", 10000},
		{"2.0", 2000000},
		{"dev", 0},
	}

	for _, tt := range tests {
		if got := ParseNumericVersion(tt.input); got != tt.want {
			t.Errorf("ParseNumericVersion(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
