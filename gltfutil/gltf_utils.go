package gltfutil

import (
	"io/ioutil"
	"log"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Save writes doc as .glb (images embedded) or .gltf.
func Save(doc *gltf.Document, path, srcDir string) error {
	if strings.ToLower(filepath.Ext(path)) == ".glb" {
		if err := ToSingleFile(doc, srcDir); err != nil {
			return err
		}
		return gltf.SaveBinary(doc, path)
	}
	return gltf.Save(doc, path)
}

// ToSingleFile moves external images into the buffer. URIs are relative to srcDir.
func ToSingleFile(doc *gltf.Document, srcDir string) error {
	for _, b := range doc.Buffers {
		b.URI = ""
	}
	for _, m := range doc.Images {
		if m.BufferView != nil || m.URI == "" || strings.HasPrefix(m.URI, "data:") {
			continue
		}
		path := filepath.FromSlash(m.URI)
		if !filepath.IsAbs(path) {
			path = filepath.Join(srcDir, path)
		}
		buf, err := ioutil.ReadFile(path)
		if err != nil {
			log.Print(err)
			continue
		}
		if m.MimeType == "" {
			if strings.HasSuffix(strings.ToLower(m.URI), ".png") {
				m.MimeType = "image/png"
			} else {
				m.MimeType = "image/jpeg"
			}
		}
		m.BufferView = gltf.Index(modeler.WriteBufferView(doc, gltf.TargetNone, buf))
		m.URI = ""
	}
	return nil
}
