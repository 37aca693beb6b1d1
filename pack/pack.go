// SPDX-License-Identifier: GPL-2.0-or-later

// Package pack reads and writes PACK archives: a flat list of named
// files behind a 12 byte header and a trailing directory of 64 byte entries.
package pack

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
)

const (
	entrySize = 64
	maxName   = 56
)

var magic = [4]byte{'P', 'A', 'C', 'K'}

type header struct {
	ID     [4]byte
	Offset int32
	Size   int32
}

type entry struct {
	Name   [maxName]byte
	Offset int32
	Size   int32
}

type Pack struct {
	f     *os.File
	files map[string]file
	name  string
}

type file struct {
	offset int64
	size   int64
}

// Open returns a reader for the entry name or os.ErrNotExist.
func (p *Pack) Open(name string) (*io.SectionReader, error) {
	q, ok := p.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NewSectionReader(p.f, q.offset, q.size), nil
}

// Names returns the sorted entry names.
func (p *Pack) Names() []string {
	n := make([]string, 0, len(p.files))
	for k := range p.files {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

func (p *Pack) String() string {
	return p.name
}

func (p *Pack) Close() error {
	return p.f.Close()
}

func (p *Pack) init() error {
	var h header
	if err := binary.Read(p.f, binary.LittleEndian, &h); err != nil {
		return errors.Wrap(err, "pack header")
	}
	if h.ID != magic {
		return errors.New("not a pack")
	}
	if h.Offset < 0 || h.Size < 0 || h.Size%entrySize != 0 {
		return errors.Errorf("bad directory offset %d size %d", h.Offset, h.Size)
	}
	if _, err := p.f.Seek(int64(h.Offset), io.SeekStart); err != nil {
		return err
	}
	n := h.Size / entrySize
	p.files = make(map[string]file, n)
	for i := int32(0); i < n; i++ {
		var e entry
		if err := binary.Read(p.f, binary.LittleEndian, &e); err != nil {
			return errors.Wrap(err, "pack directory")
		}
		l := bytes.IndexByte(e.Name[:], 0)
		if l < 0 {
			l = maxName
		}
		name := string(e.Name[:l])
		if _, ok := p.files[name]; ok {
			return errors.Errorf("file %s is not unique", name)
		}
		p.files[name] = file{
			offset: int64(e.Offset),
			size:   int64(e.Size),
		}
	}
	return nil
}

func NewPackReader(name string) (*Pack, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	p := &Pack{f: f, name: name}
	if err := p.init(); err != nil {
		f.Close()
		return nil, errors.Wrap(err, name)
	}
	return p, nil
}

// Write stores files as a pack. Entries are written in name order.
func Write(w io.Writer, files map[string][]byte) error {
	names := make([]string, 0, len(files))
	for n := range files {
		if len(n) >= maxName {
			return errors.Errorf("name %s is too long", n)
		}
		names = append(names, n)
	}
	sort.Strings(names)

	offset := int32(binary.Size(header{}))
	dir := make([]entry, 0, len(names))
	for _, n := range names {
		e := entry{Offset: offset, Size: int32(len(files[n]))}
		copy(e.Name[:], n)
		dir = append(dir, e)
		offset += e.Size
	}
	h := header{
		ID:     magic,
		Offset: offset,
		Size:   int32(len(dir) * entrySize),
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}
	for _, n := range names {
		if _, err := w.Write(files[n]); err != nil {
			return err
		}
	}
	return binary.Write(w, binary.LittleEndian, dir)
}
