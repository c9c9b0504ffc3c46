package texture

import (
	"io/ioutil"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Extensions in lookup priority order.
var Extensions = []string{".png", ".tga", ".jpg", ".jpeg", ".bmp", ".psd", ".dds"}

// Index resolves texture names to files found in a set of directories.
// Names are matched by stem, ignoring case and extension.
type Index struct {
	Dirs []string

	files map[string]map[string]string // stem -> ext -> path
	fold  cases.Caser
}

func NewIndex(dirs ...string) *Index {
	return &Index{Dirs: dirs, fold: cases.Fold()}
}

func (x *Index) key(name string) string {
	return x.fold.String(strings.TrimSuffix(name, filepath.Ext(name)))
}

// Scan reads the directories. Earlier directories win.
func (x *Index) Scan() error {
	x.files = map[string]map[string]string{}
	for _, dir := range x.Dirs {
		files, err := ioutil.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			k := x.key(f.Name())
			ext := strings.ToLower(filepath.Ext(f.Name()))
			if x.files[k] == nil {
				x.files[k] = map[string]string{}
			}
			if _, exists := x.files[k][ext]; !exists {
				x.files[k][ext] = filepath.Join(dir, f.Name())
			}
		}
	}
	return nil
}

// Lookup returns the best file for name.
func (x *Index) Lookup(name string) (string, bool) {
	if x.files == nil {
		if err := x.Scan(); err != nil {
			log.Print("Texture dir read error: ", err)
		}
	}
	found := x.files[x.key(filepath.Base(filepath.FromSlash(name)))]
	if len(found) == 0 {
		return "", false
	}
	for _, ext := range Extensions {
		if p, ok := found[ext]; ok {
			return p, true
		}
	}
	var exts []string
	for ext := range found {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return found[exts[0]], true
}

// Resolve returns the texture file for name, or name itself when nothing matches.
func (x *Index) Resolve(name string) string {
	if p, ok := x.Lookup(name); ok {
		return p
	}
	log.Print("Texture not found: ", name)
	return name
}
