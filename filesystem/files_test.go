// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"goplanet/pack"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writePack(t *testing.T, dir string, files map[string][]byte) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, "pak0.pak"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := pack.Write(f, files); err != nil {
		t.Fatal(err)
	}
}

func read(t *testing.T, name string) string {
	t.Helper()
	b, err := ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", name, err)
	}
	return string(b)
}

func TestFilesystemOrder(t *testing.T) {
	base, extra := t.TempDir(), t.TempDir()
	writeFile(t, base, "doc1.txt", "base")
	writeFile(t, base, "textures/doc3.txt", "only base")
	writeFile(t, extra, "doc1.txt", "extra")
	UseBaseDir(base)
	AddAssetDir(extra)

	if got := read(t, "doc1.txt"); got != "extra" {
		t.Errorf("doc1.txt = %q, want the later directory", got)
	}
	if got := read(t, "textures/doc3.txt"); got != "only base" {
		t.Errorf("textures/doc3.txt = %q", got)
	}
	if BaseDir() != base {
		t.Errorf("BaseDir() = %v, want %v", BaseDir(), base)
	}
}

func TestFilesystemPak(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "doc1.txt", "loose")
	writeFile(t, base, "doc5.txt", "only loose")
	writePack(t, base, map[string][]byte{
		"doc1.txt":          []byte("packed"),
		"textures/moon.txt": []byte("moon"),
	})
	UseBaseDir(base)

	if got := read(t, "doc1.txt"); got != "packed" {
		t.Errorf("doc1.txt = %q, want the pack entry", got)
	}
	if got := read(t, "/textures/moon.txt"); got != "moon" {
		t.Errorf("textures/moon.txt = %q", got)
	}
	if got := read(t, "doc5.txt"); got != "only loose" {
		t.Errorf("doc5.txt = %q", got)
	}
	fi, err := Stat("textures/moon.txt")
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() != 4 || fi.IsDir() {
		t.Errorf("Stat = size %d dir %v", fi.Size(), fi.IsDir())
	}
}

func TestFilesystemMissing(t *testing.T) {
	UseBaseDir(t.TempDir())
	if _, err := Open("nothing.png"); err == nil {
		t.Errorf("Open of a missing file succeeded")
	}
	if _, err := Stat("nothing.png"); err == nil {
		t.Errorf("Stat of a missing file succeeded")
	}
}

func TestExt(t *testing.T) {
	for _, tc := range []struct {
		in, ext, stripped string
	}{
		{"textures/earth.png", ".png", "textures/earth"},
		{"textures/earth", "", "textures/earth"},
		{"dir.d/earth", "", "dir.d/earth"},
		{`dir.d\earth.tga`, ".tga", `dir.d\earth`},
	} {
		if got := Ext(tc.in); got != tc.ext {
			t.Errorf("Ext(%q) = %q, want %q", tc.in, got, tc.ext)
		}
		if got := StripExt(tc.in); got != tc.stripped {
			t.Errorf("StripExt(%q) = %q, want %q", tc.in, got, tc.stripped)
		}
	}
}
