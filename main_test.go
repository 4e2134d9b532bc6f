package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"github.com/greatbody/charsetdetect/detector"
	"github.com/greatbody/charsetdetect/internal/vfs"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestResolveLocale(t *testing.T) {
	reg := detector.New("UTF-8").Registry()

	tests := []struct {
		flag, cfg string
		want      string
	}{
		{"pl-PL", "", "pl-PL"},
		{"pl_PL.UTF-8", "", "pl-PL"},
		{"", "pl_PL", "pl-PL"},
		{"", "", "pl-PL"},
	}
	for _, tt := range tests {
		got, err := resolveLocale(tt.flag, tt.cfg, reg)
		if err != nil {
			t.Fatalf("resolveLocale(%q, %q) failed: %v", tt.flag, tt.cfg, err)
		}
		if got != tt.want {
			t.Errorf("resolveLocale(%q, %q) = %q, want %q", tt.flag, tt.cfg, got, tt.want)
		}
	}

	if _, err := resolveLocale("de_DE", "pl-PL", reg); err == nil {
		t.Error("resolveLocale with an unregistered flag locale should fail")
	}
	if _, err := resolveLocale("C", "", reg); err == nil {
		t.Error("resolveLocale(C) should fail")
	}
}

func TestProcessFileVerbose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	data, _ := charmap.ISO8859_2.NewEncoder().Bytes([]byte("Płeć;ąźćęł"))
	writeFile(t, path, data)

	var out bytes.Buffer
	d := detector.New("UTF-8")
	if err := processFile(&out, d, detector.PolishLocale, dir, path, nil, true); err != nil {
		t.Fatalf("processFile failed: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		path + ": ISO-8859-2\n",
		"default UTF-8",
		detector.PolishDiacritics,
		"ISO-8859-2     7",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q does not contain %q", got, want)
		}
	}
}

func TestProcessFileKeepsSameNamedFilesApart(t *testing.T) {
	root := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(root, "a", "x.txt"), []byte("first ł"))
	writeFile(t, filepath.Join(root, "b", "x.txt"), []byte("second ł"))

	d := detector.New("UTF-8")
	cp := newCopier(outDir, "")
	var out bytes.Buffer
	err := vfs.Walk(root, vfs.NewFilter([]string{".txt"}, 0), func(path string) error {
		return processFile(&out, d, detector.PolishLocale, root, path, cp, false)
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if got := readFile(t, filepath.Join(outDir, "a", "x.txt")); got != "first ł" {
		t.Errorf("a/x.txt = %q, want %q", got, "first ł")
	}
	if got := readFile(t, filepath.Join(outDir, "b", "x.txt")); got != "second ł" {
		t.Errorf("b/x.txt = %q, want %q", got, "second ł")
	}
}

func TestProcessFileRejectsOutputCollision(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	first := filepath.Join(dir, "a", "x.txt")
	second := filepath.Join(dir, "b", "x.txt")
	writeFile(t, first, []byte("first ł"))
	writeFile(t, second, []byte("second ł"))

	d := detector.New("UTF-8")
	cp := newCopier(outDir, "")
	var out bytes.Buffer
	// each file given as its own root maps to out/x.txt
	if err := processFile(&out, d, detector.PolishLocale, first, first, cp, false); err != nil {
		t.Fatalf("processFile(first) failed: %v", err)
	}
	if err := processFile(&out, d, detector.PolishLocale, second, second, cp, false); err == nil {
		t.Fatal("processFile(second) should report the collision")
	}
	if got := readFile(t, filepath.Join(outDir, "x.txt")); got != "first ł" {
		t.Errorf("x.txt = %q, want the first file", got)
	}
}

func TestProcessFileConvertsCopies(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	path := filepath.Join(dir, "in", "a.txt")
	data, _ := charmap.Windows1250.NewEncoder().Bytes([]byte("Płeć;ąźćęł"))
	writeFile(t, path, data)

	d := detector.New("UTF-8")
	var out bytes.Buffer

	if err := processFile(&out, d, detector.PolishLocale, path, path, newCopier(filepath.Join(outDir, "utf8"), ""), false); err != nil {
		t.Fatalf("processFile failed: %v", err)
	}
	if got := readFile(t, filepath.Join(outDir, "utf8", "a.txt")); got != "Płeć;ąźćęł" {
		t.Errorf("UTF-8 copy = %q", got)
	}

	if err := processFile(&out, d, detector.PolishLocale, path, path, newCopier(filepath.Join(outDir, "iso"), "ISO-8859-2"), false); err != nil {
		t.Fatalf("processFile with -to failed: %v", err)
	}
	want, _ := charmap.ISO8859_2.NewEncoder().Bytes([]byte("Płeć;ąźćęł"))
	if got := readFile(t, filepath.Join(outDir, "iso", "a.txt")); got != string(want) {
		t.Errorf("ISO-8859-2 copy = % x, want % x", got, want)
	}
}
