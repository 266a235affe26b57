package imaging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListImages(t *testing.T) {
	tmp := t.TempDir()

	files := []string{"b.jpg", "a.PNG", "c.webp", "notes.txt", "d.tiff", "archive.zip"}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(tmp, name), []byte("x"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmp, "sub.png"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	images, err := ListImages(tmp)
	if err != nil {
		t.Fatalf("ListImages() error = %v", err)
	}

	var names []string
	for _, img := range images {
		names = append(names, img.Name)
	}
	want := []string{"a.PNG", "b.jpg", "c.webp", "d.tiff"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("ListImages() = %v, want %v", names, want)
	}

	for _, img := range images {
		if img.Size != 1 {
			t.Errorf("%s: Size = %d, want 1", img.Name, img.Size)
		}
		if img.Path != filepath.Join(tmp, img.Name) {
			t.Errorf("%s: Path = %s", img.Name, img.Path)
		}
	}
}

func TestListPNGs(t *testing.T) {
	tmp := t.TempDir()

	files := []string{"b_no_bg.png", "a_no_bg.PNG", "photo.jpg", "notes.txt"}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(tmp, name), []byte("x"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	pngs, err := ListPNGs(tmp)
	if err != nil {
		t.Fatalf("ListPNGs() error = %v", err)
	}

	var names []string
	for _, p := range pngs {
		names = append(names, p.Name)
	}
	want := []string{"a_no_bg.PNG", "b_no_bg.png"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("ListPNGs() = %v, want %v", names, want)
	}
}

func TestListImages_MissingDir(t *testing.T) {
	_, err := ListImages(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("ListImages() should fail for a missing directory")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   Format
	}{
		{
			name:   "png",
			header: []byte("\x89PNG\r\n\x1a\nrest"),
			want:   FormatPNG,
		},
		{
			name:   "jpeg",
			header: []byte("\xff\xd8\xff\xe0JFIF567"),
			want:   FormatJPEG,
		},
		{
			name:   "unknown",
			header: []byte("GIF89a..012345"),
			want:   FormatUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(bytes.NewReader(tt.header))
			if err != nil {
				t.Fatalf("DetectFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("short read", func(t *testing.T) {
		_, err := DetectFormat(bytes.NewReader([]byte("ab")))
		if err == nil {
			t.Error("DetectFormat() should fail on a truncated header")
		}
	})
}

func TestFormatList(t *testing.T) {
	list := FormatList()
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".bmp", ".tiff", ".webp"} {
		if !strings.Contains(list, ext) {
			t.Errorf("FormatList() missing %s: %s", ext, list)
		}
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo_no_bg.png"},
		{"scan.tiff", "scan_no_bg.png"},
		{"noext", "noext_no_bg.png"},
		{"two.dots.png", "two.dots_no_bg.png"},
	}

	for _, tt := range tests {
		if got := OutputName(tt.in); got != tt.want {
			t.Errorf("OutputName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
