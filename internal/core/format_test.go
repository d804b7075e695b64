package core

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0B"},
		{"one byte", 1, "1.00 B"},
		{"500 bytes", 500, "500.00 B"},
		{"999 bytes", 999, "999.00 B"},
		// Digit-count bucketing: 1000 has four digits, so it lands in
		// the KB bracket even though it is under 1024.
		{"1000 bytes", 1000, "0.98 KB"},
		{"one KiB", 1024, "1.00 KB"},
		{"one MiB", 1024 * 1024, "1.00 MB"},
		{"one GiB", 1 << 30, "1.00 GB"},
		{"ten GiB", 10 << 30, "10.00 GB"},
		{"negative", -1024, "-1.00 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSize(tt.bytes); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"500", 500, false},
		{"500B", 500, false},
		{"10KB", 10 * 1024, false},
		{"10kb", 10 * 1024, false},
		{"1.5GB", 1536 * 1024 * 1024, false},
		{"2MB", 2 * 1024 * 1024, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-5MB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSize(%q) = %d, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
