package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "resume.pdf", want: "resume.pdf"},
		{name: "slashes replaced", in: "a/b\\c.txt", want: "a_b_c.txt"},
		{name: "traversal rejected", in: "../etc/passwd", wantErr: true},
		{name: "empty rejected", in: "   ", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeFileName(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "resume.pdf", want: "pdf"},
		{in: "Resume.PDF", want: "pdf"},
		{in: "archive.tar.gz", want: "gz"},
		{in: "noext", want: ""},
		{in: "trailingdot.", want: ""},
	}

	for _, tt := range tests {
		if got := FileExtension(tt.in); got != tt.want {
			t.Fatalf("FileExtension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
