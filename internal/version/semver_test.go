package version

import "testing"

func TestParseSemVer(t *testing.T) {
	tests := []struct {
		input string
		want  SemVer
	}{
		{"4.0.5", SemVer{4, 0, 5}},
		{"v3.00", SemVer{3, 0, 0}},
		{"2.94", SemVer{2, 94, 0}},
		{"4", SemVer{4, 0, 0}},
		{"4.0.5 (abc123)", SemVer{4, 0, 5}},
		{"4.1.0-beta.2", SemVer{4, 1, 0}},
		{"  v4.0.5  ", SemVer{4, 0, 5}},
	}
	for _, tt := range tests {
		got, err := ParseSemVer(tt.input)
		if err != nil {
			t.Errorf("ParseSemVer(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSemVer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseSemVer_Invalid(t *testing.T) {
	for _, input := range []string{"", "  ", "abc", "4.x.1"} {
		if _, err := ParseSemVer(input); err == nil {
			t.Errorf("ParseSemVer(%q) accepted garbage", input)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b SemVer
		want int
	}{
		{SemVer{4, 0, 5}, SemVer{4, 0, 5}, 0},
		{SemVer{3, 0, 0}, SemVer{4, 0, 0}, -1},
		{SemVer{4, 1, 0}, SemVer{4, 0, 9}, 1},
		{SemVer{4, 0, 4}, SemVer{4, 0, 5}, -1},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	if !(SemVer{2, 94, 0}).IsOlderThan(SemVer{3, 0, 0}) {
		t.Error("2.94 should be older than 3.00")
	}
}
