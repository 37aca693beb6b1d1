// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/tools/godoc/vfs"

	"goplanet/conlog"
	"goplanet/pack"
)

var (
	baseDir string
	assetNS = vfs.NameSpace{}
	packs   []*pack.Pack
	mutex   sync.RWMutex
)

type File interface {
	io.ReadSeekCloser
}

type packFileSystem struct {
	p *pack.Pack
}

type closer struct {
	*io.SectionReader
}

func (*closer) Close() error {
	return nil
}

type fileInfo struct {
	name string
	size int64
	dir  bool
}

func (f *fileInfo) Name() string {
	return f.name
}
func (f *fileInfo) Size() int64 {
	return f.size
}
func (f *fileInfo) Mode() fs.FileMode {
	if f.dir {
		return fs.ModeDir
	}
	return 0
}
func (f *fileInfo) ModTime() time.Time {
	return time.Time{}
}
func (f *fileInfo) IsDir() bool {
	return f.dir
}
func (f *fileInfo) Sys() any {
	return nil
}

func (p packFileSystem) Open(name string) (vfs.ReadSeekCloser, error) {
	// inside a pack file there is no 'root'. all files are relative to '.'
	name = strings.TrimPrefix(name, "/")
	f, err := p.p.Open(name)
	if err != nil {
		return nil, err
	}
	return &closer{f}, nil
}

func (p packFileSystem) Stat(name string) (os.FileInfo, error) {
	name = strings.TrimPrefix(name, "/")
	if f, err := p.p.Open(name); err == nil {
		return &fileInfo{name: path.Base(name), size: f.Size()}, nil
	}
	prefix := name + "/"
	if name == "" {
		prefix = ""
	}
	for _, n := range p.p.Names() {
		if strings.HasPrefix(n, prefix) {
			return &fileInfo{name: path.Base(name), dir: true}, nil
		}
	}
	return nil, os.ErrNotExist
}

func (p packFileSystem) Lstat(name string) (os.FileInfo, error) {
	return p.Stat(name)
}

// ReadDir lists the direct children of dir, pack entries only know their
// full names so directories are derived from the prefixes.
func (p packFileSystem) ReadDir(dir string) ([]os.FileInfo, error) {
	dir = strings.Trim(dir, "/")
	prefix := dir + "/"
	if dir == "" {
		prefix = ""
	}
	seen := make(map[string]*fileInfo)
	for _, n := range p.p.Names() {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		rest := n[len(prefix):]
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			seen[rest[:i]] = &fileInfo{name: rest[:i], dir: true}
			continue
		}
		f, err := p.p.Open(n)
		if err != nil {
			return nil, err
		}
		seen[rest] = &fileInfo{name: rest, size: f.Size()}
	}
	if len(seen) == 0 {
		return nil, os.ErrNotExist
	}
	infos := make([]os.FileInfo, 0, len(seen))
	for _, fi := range seen {
		infos = append(infos, fi)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })
	return infos, nil
}

func (p packFileSystem) RootType(string) vfs.RootType {
	return ""
}

func (p packFileSystem) String() string {
	return p.p.String()
}

func BaseDir() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return baseDir
}

// UseBaseDir drops every search path entry and starts over with dir.
func UseBaseDir(dir string) {
	mutex.Lock()
	defer mutex.Unlock()
	for _, p := range packs {
		p.Close()
	}
	packs = nil
	baseDir = dir
	assetNS = vfs.NameSpace{}
	assetNS.Bind("/", vfs.OS(dir), "/", vfs.BindReplace)
	useDir(dir)
}

// AddAssetDir puts dir in front of the search path. Files in dir shadow
// files of the same name in earlier directories.
func AddAssetDir(dir string) {
	mutex.Lock()
	defer mutex.Unlock()
	assetNS.Bind("/", vfs.OS(dir), "/", vfs.BindBefore)
	useDir(dir)
}

func useDir(dir string) {
	// pak0.pak, pak1.pak, ... each one shadowing the previous
	for i := 0; ; i++ {
		pfp := filepath.Join(dir, fmt.Sprintf("pak%d.pak", i))
		p, err := pack.NewPackReader(pfp)
		if err != nil {
			if !os.IsNotExist(err) {
				conlog.Printf("Could not open %s: %v\n", pfp, err)
			}
			break
		}
		packs = append(packs, p)
		assetNS.Bind("/", packFileSystem{p}, "/", vfs.BindBefore)
	}
}

func Stat(name string) (os.FileInfo, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	return assetNS.Stat(path.Join("/", filepath.ToSlash(name)))
}

func Open(name string) (File, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	return assetNS.Open(path.Join("/", filepath.ToSlash(name)))
}

func ReadFile(name string) ([]byte, error) {
	file, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func StripExt(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}
