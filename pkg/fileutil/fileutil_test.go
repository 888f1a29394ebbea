package fileutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestSanitizeBaseName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Show", "My Show"},
		{"My Show.mp4", "My Show"},
		{`a/b\c*d?e:f"g<h>i|j`, "a_b_c_d_e_f_g_h_i_j"},
		{"", "output"},
		{"???", "___"},
		{".strm", "output"},
		{"  ", "output"},
	}
	for _, tt := range tests {
		if got := SanitizeBaseName(tt.input); got != tt.want {
			t.Errorf("SanitizeBaseName(%q)=%q, want=%q", tt.input, got, tt.want)
		}
	}
}

func TestWriteScript_ExecutableMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes not meaningful on windows")
	}
	path := filepath.Join(t.TempDir(), "dl.sh")
	if err := WriteScript(path, "#!/bin/sh\n", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode()&0o100 == 0 {
		t.Errorf("mode=%v, want owner-executable", info.Mode())
	}
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.strm")
	if err := WriteText(path, "https://ex.com/v.mp4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "https://ex.com/v.mp4" {
		t.Errorf("content=%q", string(data))
	}
}
