// SPDX-License-Identifier: GPL-2.0-or-later

package pack

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writePack(t *testing.T, files map[string][]byte) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "pak0.pak")
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := Write(f, files); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestPak(t *testing.T) {
	name := writePack(t, map[string][]byte{
		"doc1.txt":          []byte("this is the first doc\r\n"),
		"textures/moon.tga": {1, 2, 3, 4},
		"empty":             {},
	})
	p, err := NewPackReader(name)
	if err != nil {
		t.Fatalf("could not open %s: %v", name, err)
	}
	defer p.Close()
	if p.String() != name {
		t.Errorf("pack String error: want %v got %v", name, p.String())
	}
	if got := p.Names(); len(got) != 3 || got[0] != "doc1.txt" || got[2] != "textures/moon.tga" {
		t.Errorf("Names() = %v", got)
	}
	for n, want := range map[string]string{
		"doc1.txt":          "this is the first doc\r\n",
		"textures/moon.tga": "\x01\x02\x03\x04",
		"empty":             "",
	} {
		f, err := p.Open(n)
		if err != nil {
			t.Fatalf("Open(%s): %v", n, err)
		}
		b, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("could not read %s: %v", n, err)
		}
		if string(b) != want {
			t.Errorf("%s contents is %q, want %q", n, b, want)
		}
	}
	if _, err := p.Open("doc2.txt"); !os.IsNotExist(err) {
		t.Errorf("Open of a missing file: %v", err)
	}
}

func TestNotAPack(t *testing.T) {
	name := filepath.Join(t.TempDir(), "junk.pak")
	if err := os.WriteFile(name, []byte("JUNK0000000000000000"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewPackReader(name); err == nil {
		t.Errorf("NewPackReader accepted junk")
	}
}
