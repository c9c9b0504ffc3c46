package fbx

import "github.com/binzume/dtsconv/geom"

type Material struct {
	Obj
}

func NewMaterial(name string) *Material {
	mat := &Material{
		Obj: *newObj("Material", name, "Material", "", NewNode("Version", int32(102)),
			NewNode("ShadingModel", "phong"), NewNode("MultiLayer", int32(0))),
	}
	mat.SetStringProperty("ShadingModel", "Phong")
	mat.SetColorProperty("DiffuseColor", 0.8, 0.8, 0.8)
	mat.SetFloatProperty("DiffuseFactor", 1)
	return mat
}

func (m *Material) GetColor(name string, def *geom.Vector3) *geom.Vector3 {
	if def == nil {
		def = &geom.Vector3{}
	}
	return m.GetProperty(name).ToVector3(def.X, def.Y, def.Z)
}

func (m *Material) SetColor(name string, c *geom.Vector3) {
	m.SetColorProperty(name, c.X, c.Y, c.Z)
}

func (m *Material) GetFactor(name string, def float32) float32 {
	return m.GetProperty(name).ToFloat32(def)
}

// SetTexture connects tex to a material property such as DiffuseColor.
func (m *Material) SetTexture(prop string, tex *Texture) {
	m.doc.AddPropertyConnection(m, tex, prop)
}

func (m *Material) GetTexture(prop string) *Texture {
	for _, c := range m.doc.Connections {
		if c.Type == "OP" && c.To == m.ID() && c.Prop == prop {
			if t, ok := m.doc.GetObject(c.From).(*Texture); ok {
				return t
			}
		}
	}
	return nil
}

type TextureMapping int

const (
	MappingUV TextureMapping = 0
)

type Texture struct {
	Obj
}

func NewTexture(name, path string) *Texture {
	tex := &Texture{
		Obj: *newObj("Texture", name, "Texture", "",
			NewNode("Type", "TextureVideoClip"),
			NewNode("Version", int32(202)),
			NewNode("TextureName", name+"\x00\x01Texture"),
			NewNode("Media", name+"\x00\x01Video"),
			NewNode("FileName", path),
			NewNode("RelativeFilename", path),
			NewNode("ModelUVTranslation", float64(0), float64(0)),
			NewNode("ModelUVScaling", float64(1), float64(1)),
			NewNode("Texture_Alpha_Source", "None"),
			NewNode("Cropping", int32(0), int32(0), int32(0), int32(0))),
	}
	tex.SetEnumProperty("CurrentMappingType", int(MappingUV))
	tex.SetIntProperty("UseMaterial", 1)
	tex.SetStringProperty("UVSet", "UV")
	return tex
}

func (t *Texture) GetFileName() string {
	if name := t.FindChild("RelativeFilename").GetString(); name != "" {
		return name
	}
	return t.FindChild("FileName").GetString()
}
