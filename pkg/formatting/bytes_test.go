package formatting_test

import (
	"testing"

	"github.com/JaimeStill/assessor/pkg/formatting"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"1MB", 1 << 20, false},
		{"512 kb", 512 << 10, false},
		{"1.5GB", 3 << 29, false},
		{"4096", 4096, false},
		{" 2 MB ", 2 << 20, false},
		{"", 0, true},
		{"MB", 0, true},
		{"-1MB", 0, true},
		{"10 parsecs", 0, true},
		{"1.2.3KB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBytes(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n         int64
		precision int
		want      string
	}{
		{0, 2, "0 B"},
		{512, 0, "512 B"},
		{1536, 1, "1.5 KB"},
		{1 << 20, -1, "1 MB"},
		{5 << 30, 2, "5.00 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
				t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"1 KB", "64 MB", "2 GB"} {
		n, err := formatting.ParseBytes(s)
		if err != nil {
			t.Fatalf("ParseBytes(%q): %v", s, err)
		}
		if got := formatting.FormatBytes(n, 0); got != s {
			t.Errorf("round trip %q -> %d -> %q", s, n, got)
		}
	}
}
