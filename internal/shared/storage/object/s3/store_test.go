package s3

import "testing"

func TestNormalizePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "  documents  ", want: "documents"},
		{in: "/documents/", want: "documents"},
		{in: "documents/archive/", want: "documents/archive"},
	}

	for _, tt := range tests {
		if got := normalizePrefix(tt.in); got != tt.want {
			t.Fatalf("normalizePrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "abc123_report.pdf", want: "abc123_report.pdf"},
		{name: "simple prefix", prefix: "documents", key: "abc123_report.pdf", want: "documents/abc123_report.pdf"},
		{name: "surrounding slashes", prefix: "/documents/", key: "/abc123_report.pdf", want: "documents/abc123_report.pdf"},
		{name: "nested prefix", prefix: "documents/archive", key: "abc123_report.pdf", want: "documents/archive/abc123_report.pdf"},
		{name: "empty key", prefix: "documents", key: "", want: "documents"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
