package converter

import (
	"strings"

	"github.com/binzume/dtsconv/dts"
	"github.com/binzume/dtsconv/fbx"
)

// TextureResolver maps a material name to a texture file.
type TextureResolver interface {
	Resolve(name string) string
}

func surfaceName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}

func (c *dtsToFbx) convertMaterials(shape *dts.Shape) {
	c.materials = nil
	for _, m := range shape.Materials {
		path := m.Name
		if c.Textures != nil {
			path = c.Textures.Resolve(m.Name)
		}
		mat := c.doc.AddObject(fbx.NewMaterial(surfaceName(m.Name))).(*fbx.Material)
		tex := c.doc.AddObject(fbx.NewTexture("Diffuse Texture", path)).(*fbx.Texture)
		mat.SetTexture("DiffuseColor", tex)
		c.materials = append(c.materials, mat)
	}
}
