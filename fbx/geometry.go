package fbx

import (
	"github.com/binzume/dtsconv/geom"
)

type MappingType string

const (
	AllSame         MappingType = "AllSame"
	ByPolygon       MappingType = "ByPolygon"
	ByVertice       MappingType = "ByVertice"
	ByPolygonVertex MappingType = "ByPolygonVertex"
	ByControlPoint  MappingType = "ByControlPoint"
)

type Geometry struct {
	Obj
	Vertices []*geom.Vector3
	Polygons [][]int

	// by control point
	Normals []*geom.Vector3
	UVs     []*geom.Vector2

	// by polygon
	PolygonMaterials []int

	polygon  []int
	material int
	dirty    bool
}

type LayerElement struct {
	*Node
	Array     *Node
	IndexNode *Node
}

func NewGeometry(name string, verts []*geom.Vector3, faces [][]int) *Geometry {
	g := &Geometry{
		Obj:      *newObj("Geometry", name, "Geometry", "Mesh", NewNode("GeometryVersion", int32(124))),
		Vertices: verts,
		Polygons: faces,
		dirty:    true,
	}
	for range faces {
		g.PolygonMaterials = append(g.PolygonMaterials, 0)
	}
	return g
}

// InitControlPoints allocates n control points at the origin.
func (g *Geometry) InitControlPoints(n int) {
	g.Vertices = make([]*geom.Vector3, n)
	for i := range g.Vertices {
		g.Vertices[i] = &geom.Vector3{}
	}
	g.dirty = true
}

func (g *Geometry) SetNormals(normals []*geom.Vector3) {
	g.Normals = normals
	g.dirty = true
}

func (g *Geometry) SetUVs(uvs []*geom.Vector2) {
	g.UVs = uvs
	g.dirty = true
}

func (g *Geometry) BeginPolygon(material int) {
	if g.polygon != nil {
		panic("fbx: BeginPolygon without EndPolygon")
	}
	g.polygon = []int{}
	g.material = material
}

func (g *Geometry) AddPolygon(index int) {
	if g.polygon == nil {
		panic("fbx: AddPolygon outside BeginPolygon")
	}
	g.polygon = append(g.polygon, index)
}

func (g *Geometry) EndPolygon() {
	if g.polygon == nil {
		panic("fbx: EndPolygon without BeginPolygon")
	}
	g.Polygons = append(g.Polygons, g.polygon)
	g.PolygonMaterials = append(g.PolygonMaterials, g.material)
	g.polygon = nil
	g.dirty = true
}

func (g *Geometry) AddDeformer(skin *Skin) {
	g.doc.AddConnection(g, skin)
}

func (g *Geometry) GetSkins() []*Skin {
	var r []*Skin
	for _, o := range g.Refs {
		if s, ok := o.(*Skin); ok {
			r = append(r, s)
		}
	}
	return r
}

func (g *Geometry) GetNode() *Node {
	if g.dirty {
		g.build()
	}
	return g.Node
}

func (g *Geometry) build() {
	g.dirty = false
	varray := make([]float64, 0, len(g.Vertices)*3)
	for _, v := range g.Vertices {
		varray = append(varray, float64(v.X), float64(v.Y), float64(v.Z))
	}
	var indices []int32
	for _, f := range g.Polygons {
		for _, i := range f {
			indices = append(indices, int32(i))
		}
		if len(f) > 0 {
			indices[len(indices)-1] = ^indices[len(indices)-1]
		}
	}
	g.AddOrReplaceChild(NewNode("Vertices", varray))
	g.AddOrReplaceChild(NewNode("PolygonVertexIndex", indices))

	layer := NewNode("Layer", int32(0))
	layer.AddChild(NewNode("Version", int32(100)))
	addLayer := func(el *Node) {
		g.AddOrReplaceChild(el)
		le := layer.AddChild(NewNode("LayerElement"))
		le.AddChild(NewNode("Type", el.Name))
		le.AddChild(NewNode("TypedIndex", int32(0)))
	}

	if len(g.Normals) > 0 {
		normals := make([]float64, 0, len(g.Normals)*3)
		for _, v := range g.Normals {
			normals = append(normals, float64(v.X), float64(v.Y), float64(v.Z))
		}
		addLayer(newLayerElement("LayerElementNormal", "", ByVertice, "Direct",
			NewNode("Normals", normals)))
	}
	if len(g.UVs) > 0 {
		uvs := make([]float64, 0, len(g.UVs)*2)
		for _, v := range g.UVs {
			uvs = append(uvs, float64(v.X), float64(v.Y))
		}
		addLayer(newLayerElement("LayerElementUV", "UV", ByVertice, "Direct",
			NewNode("UV", uvs)))
	}
	if len(g.PolygonMaterials) > 0 {
		mats := make([]int32, len(g.PolygonMaterials))
		for i, m := range g.PolygonMaterials {
			mats[i] = int32(m)
		}
		addLayer(newLayerElement("LayerElementMaterial", "", ByPolygon, "IndexToDirect",
			NewNode("Materials", mats)))
	}
	g.AddOrReplaceChild(layer)
}

func newLayerElement(name, elementName string, mapping MappingType, ref string, data ...*Node) *Node {
	el := NewNode(name, int32(0))
	el.AddChild(NewNode("Version", int32(101)))
	el.AddChild(NewNode("Name", elementName))
	el.AddChild(NewNode("MappingInformationType", string(mapping)))
	el.AddChild(NewNode("ReferenceInformationType", ref))
	el.Children = append(el.Children, data...)
	return el
}

// parse fills the fields from a loaded node.
func (g *Geometry) parse() {
	g.Vertices = g.FindChild("Vertices").GetVec3Array()
	var face []int
	for _, index := range g.FindChild("PolygonVertexIndex").GetInt32Array() {
		if index < 0 {
			face = append(face, int(^index))
			g.Polygons = append(g.Polygons, face)
			face = nil
			continue
		}
		face = append(face, int(index))
	}

	if el := g.GetLayerElementNormal(); el.isDirectByControlPoint() {
		g.Normals = el.Array.GetVec3Array()
	}
	if el := g.GetLayerElementUV(); el.isDirectByControlPoint() {
		g.UVs = el.Array.GetVec2Array()
	}
	mat := g.GetLayerElementMaterial()
	switch mat.GetMappingInformationType() {
	case ByPolygon:
		for _, m := range mat.GetIndexes() {
			g.PolygonMaterials = append(g.PolygonMaterials, int(m))
		}
	case AllSame:
		m := 0
		if idx := mat.GetIndexes(); len(idx) > 0 {
			m = int(idx[0])
		}
		for range g.Polygons {
			g.PolygonMaterials = append(g.PolygonMaterials, m)
		}
	}
}

func (g *Geometry) GetLayerElement(name string, arrayName string, indexName string) *LayerElement {
	node := g.FindChild(name)
	return &LayerElement{node, node.FindChild(arrayName), node.FindChild(indexName)}
}

func (g *Geometry) GetLayerElementUV() *LayerElement {
	return g.GetLayerElement("LayerElementUV", "UV", "UVIndex")
}

func (g *Geometry) GetLayerElementMaterial() *LayerElement {
	return g.GetLayerElement("LayerElementMaterial", "Materials", "Materials")
}

func (g *Geometry) GetLayerElementNormal() *LayerElement {
	return g.GetLayerElement("LayerElementNormal", "Normals", "NormalsIndex")
}

func (e *LayerElement) GetMappingInformationType() MappingType {
	return MappingType(e.FindChild("MappingInformationType").GetString())
}

func (e *LayerElement) GetReferenceInformationType() string {
	return e.FindChild("ReferenceInformationType").GetString()
}

func (e *LayerElement) GetIndexes() []int32 {
	return e.IndexNode.GetInt32Array()
}

func (e *LayerElement) isDirectByControlPoint() bool {
	m := e.GetMappingInformationType()
	return e.Node != nil && (m == ByVertice || m == ByControlPoint) && e.GetReferenceInformationType() == "Direct"
}
