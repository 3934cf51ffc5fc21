package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Sinfonia No. 9", "sinfonia-no-9"},
		{"  Ode à Alegria  ", "ode-à-alegria"},
		{"UPPER CASE", "upper-case"},
		{"já--com---hifens", "já-com-hifens"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := GenerateSlug(tt.in); got != tt.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
