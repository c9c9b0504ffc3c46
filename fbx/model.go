package fbx

import (
	"math"

	"github.com/binzume/dtsconv/geom"
)

const (
	SkeletonRoot     = "Root"
	SkeletonLimbNode = "LimbNode"

	ShadingTexture = "T"
)

type Model struct {
	Obj
	Parent    *Model
	Attribute *NodeAttribute
}

func NewModel(name, kind string) *Model {
	model := &Model{
		Obj: *newObj("Model", name, "Model", kind, NewNode("Version", int32(232))),
	}
	model.SetStringProperty("Culling", "CullingOff")
	return model
}

func (m *Model) GetTranslation() *geom.Vector3 {
	return m.GetProperty("Lcl Translation").ToVector3(0, 0, 0)
}

func (m *Model) SetTranslation(v *geom.Vector3) {
	m.setVectorProperty("Lcl Translation", v)
}

// GetRotation returns Euler angles in degrees (XYZ order).
func (m *Model) GetRotation() *geom.Vector3 {
	return m.GetProperty("Lcl Rotation").ToVector3(0, 0, 0)
}

func (m *Model) SetRotation(v *geom.Vector3) {
	m.setVectorProperty("Lcl Rotation", v)
}

func (m *Model) GetScaling() *geom.Vector3 {
	return m.GetProperty("Lcl Scaling").ToVector3(1, 1, 1)
}

func (m *Model) SetScaling(v *geom.Vector3) {
	m.setVectorProperty("Lcl Scaling", v)
}

func (m *Model) GetMatrix() *geom.Matrix4 {
	// TODO: apply pivot
	prerotEuler := m.GetProperty("PreRotation").ToVector3(0, 0, 0).Scale(math.Pi / 180)
	prerot := geom.NewEulerRotationMatrix4(prerotEuler.X, prerotEuler.Y, prerotEuler.Z, 1)
	translation := m.GetTranslation()
	rotationEuler := m.GetRotation().Scale(math.Pi / 180)
	scale := m.GetScaling()
	tr := geom.NewTranslateMatrix4(translation.X, translation.Y, translation.Z)
	rot := geom.NewEulerRotationMatrix4(rotationEuler.X, rotationEuler.Y, rotationEuler.Z, 1)
	sacle := geom.NewScaleMatrix4(scale.X, scale.Y, scale.Z)
	return tr.Mul(prerot).Mul(rot).Mul(sacle)
}

func (m *Model) GetWorldMatrix() *geom.Matrix4 {
	if m.Parent == nil {
		return m.GetMatrix()
	}
	return m.Parent.GetWorldMatrix().Mul(m.GetMatrix())
}

func (m *Model) GetChildModels() []*Model {
	var r []*Model
	for _, o := range m.Refs {
		if c, ok := o.(*Model); ok {
			r = append(r, c)
		}
	}
	return r
}

func (m *Model) AddChild(child *Model) {
	m.doc.AddConnection(m, child)
}

func (m *Model) GetGeometry() *Geometry {
	for _, o := range m.Refs {
		if g, ok := o.(*Geometry); ok {
			return g
		}
	}
	return nil
}

func (m *Model) SetGeometry(g *Geometry) {
	m.doc.AddConnection(m, g)
}

// SetShading sets the display shading mode of the model. e.g. ShadingTexture
func (m *Model) SetShading(mode string) {
	m.AddOrReplaceChild(NewNode("Shading", mode))
}

func (m *Model) GetShading() string {
	if n := m.FindChild("Shading"); n != nil {
		return n.GetString()
	}
	return ""
}

func (m *Model) GetMaterials() []*Material {
	var r []*Material
	for _, o := range m.Refs {
		if mat, ok := o.(*Material); ok {
			r = append(r, mat)
		}
	}
	return r
}

// AddMaterial connects mat and returns its slot on this model.
func (m *Model) AddMaterial(mat *Material) int {
	mats := m.GetMaterials()
	for i, c := range mats {
		if c == mat {
			return i
		}
	}
	m.doc.AddConnection(m, mat)
	return len(mats)
}

func (m *Model) SetNodeAttribute(attr *NodeAttribute) {
	m.doc.AddConnection(m, attr)
	if attr.Kind() == SkeletonRoot || attr.Kind() == SkeletonLimbNode {
		m.Attributes[2] = &Attribute{Value: attr.Kind()}
	}
}

// SkeletonType returns Root or LimbNode for joints, empty otherwise.
func (m *Model) SkeletonType() string {
	if m.Attribute == nil || m.Attribute.FindChild("TypeFlags").GetString() != "Skeleton" {
		return ""
	}
	return m.Attribute.Kind()
}

type NodeAttribute struct {
	Obj
}

func NewSkeletonAttribute(name, kind string) *NodeAttribute {
	attr := &NodeAttribute{
		Obj: *newObj("NodeAttribute", name, "NodeAttribute", kind, NewNode("TypeFlags", "Skeleton")),
	}
	attr.SetFloatProperty("Size", 1)
	return attr
}
