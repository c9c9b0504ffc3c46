package converter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/binzume/dtsconv/fbx"
	"github.com/binzume/dtsconv/gltfutil"
)

// SceneStore loads and saves scenes.
type SceneStore interface {
	Load(path string) (*fbx.Document, error)
	Save(doc *fbx.Document, path string) error
}

type FBXStore struct{}

func (FBXStore) Load(path string) (*fbx.Document, error) {
	return fbx.Load(path)
}

func (FBXStore) Save(doc *fbx.Document, path string) error {
	return fbx.Save(doc, path)
}

// GLTFStore writes .glb or .gltf files. Scenes can not be loaded back.
type GLTFStore struct {
	Options *FBXToGLTFOption
}

func (s *GLTFStore) Load(path string) (*fbx.Document, error) {
	return nil, fmt.Errorf("append to %s: not an fbx file", filepath.Base(path))
}

func (s *GLTFStore) Save(doc *fbx.Document, path string) error {
	opts := FBXToGLTFOption{}
	if s.Options != nil {
		opts = *s.Options
	}
	gltfdoc, err := NewFBXToGLTFConverter(&opts).Convert(doc)
	if err != nil {
		return err
	}
	return gltfutil.Save(gltfdoc, path, opts.TextureDir)
}

// StoreForPath selects a store by file extension.
func StoreForPath(path string, gltfOptions *FBXToGLTFOption) SceneStore {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		return &GLTFStore{Options: gltfOptions}
	}
	return FBXStore{}
}
