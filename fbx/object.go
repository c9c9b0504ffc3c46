package fbx

import (
	"strings"

	"github.com/binzume/dtsconv/geom"
)

// Property is an entry of Properties70.
type Property struct {
	AttributeList
	Type  string
	Label string
	Flag  string
}

func (p *Property) ToInt(def int) int {
	return p.Get(0).ToInt(def)
}

func (p *Property) ToFloat32(def float32) float32 {
	return p.Get(0).ToFloat32(def)
}

func (p *Property) ToFloat64(def float64) float64 {
	return p.Get(0).ToFloat64(def)
}

func (p *Property) ToInt64(def int64) int64 {
	return p.Get(0).ToInt64(def)
}

func (p *Property) ToString(def string) string {
	if a := p.Get(0); a != nil {
		return a.ToString()
	}
	return def
}

func (p *Property) ToVector3(x, y, z float32) *geom.Vector3 {
	return &geom.Vector3{X: p.Get(0).ToFloat32(x), Y: p.Get(1).ToFloat32(y), Z: p.Get(2).ToFloat32(z)}
}

type Connection struct {
	Type string
	From int64
	To   int64
	Prop string
}

type Object interface {
	GetNode() *Node
	NodeName() string
	ID() int64
	Name() string
	Kind() string
	GetProperty(name string) *Property
	SetProperty(name string, prop *Property) *Property
	FindRefs(name string) []Object
	AddRef(o Object)

	base() *Obj
}

type Obj struct {
	*Node
	Template   *Obj
	Refs       []Object
	doc        *Document
	properties map[string]*Property // lazy initialize
}

func newObj(typ, name, class, kind string, nodes ...*Node) *Obj {
	children := append([]*Node{{Name: "Properties70"}}, nodes...)
	return &Obj{Node: &Node{
		Name:       typ,
		Attributes: AttributeList{{Value: int64(0)}, {Value: name + "\x00\x01" + class}, {Value: kind}},
		Children:   children,
	}}
}

func (o *Obj) base() *Obj {
	return o
}

func (o *Obj) GetNode() *Node {
	return o.Node
}

func (o *Obj) NodeName() string {
	return o.Node.Name
}

func (o *Obj) ID() int64 {
	return o.Attr(0).ToInt64(0)
}

func (o *Obj) setID(id int64) {
	if len(o.Attributes) == 0 {
		o.Attributes = AttributeList{{}}
	}
	o.Attributes[0] = &Attribute{Value: id}
}

// Name returns the object name without the class part.
func (o *Obj) Name() string {
	return splitObjectName(o.Attr(1).ToString())
}

func (o *Obj) Kind() string {
	return o.Attr(2).ToString()
}

func (o *Obj) Document() *Document {
	return o.doc
}

func splitObjectName(s string) string {
	if i := strings.Index(s, "\x00\x01"); i >= 0 {
		return s[:i]
	}
	if i := strings.Index(s, "::"); i >= 0 {
		return s[i+2:]
	}
	return s
}

func (o *Obj) GetProperty(name string) *Property {
	if o.properties == nil {
		o.properties = map[string]*Property{}
		for _, node := range o.FindChild("Properties70").GetChildren() {
			if len(node.Attributes) < 4 {
				continue
			}
			o.properties[node.Attr(0).ToString()] = &Property{
				AttributeList: node.Attributes[4:],
				Type:          node.Attr(1).ToString(),
				Label:         node.Attr(2).ToString(),
				Flag:          node.Attr(3).ToString()}
		}
	}
	if p, ok := o.properties[name]; ok {
		return p
	} else if o.Template != nil {
		return o.Template.GetProperty(name)
	}
	return &Property{}
}

func (o *Obj) HasProperty(name string) bool {
	o.GetProperty(name)
	_, ok := o.properties[name]
	return ok
}

func (o *Obj) SetProperty(name string, prop *Property) *Property {
	if o.properties != nil {
		o.properties[name] = prop
	}
	attrs := AttributeList{
		&Attribute{Value: name},
		&Attribute{Value: prop.Type},
		&Attribute{Value: prop.Label},
		&Attribute{Value: prop.Flag},
	}
	attrs = append(attrs, prop.AttributeList...)
	properties70 := o.FindChild("Properties70")
	if properties70 == nil {
		properties70 = &Node{Name: "Properties70"}
		o.Children = append([]*Node{properties70}, o.Children...)
	}
	for _, node := range properties70.GetChildren() {
		if node.Attr(0).ToString() == name {
			node.Attributes = attrs
			return prop
		}
	}
	properties70.Children = append(properties70.Children, &Node{Name: "P", Attributes: attrs})
	return prop
}

func (o *Obj) SetIntProperty(name string, v int) *Property {
	return o.SetProperty(name, &Property{Type: "int", Label: "Integer", AttributeList: AttributeList{{Value: int32(v)}}})
}

func (o *Obj) SetEnumProperty(name string, v int) *Property {
	return o.SetProperty(name, &Property{Type: "enum", AttributeList: AttributeList{{Value: int32(v)}}})
}

func (o *Obj) SetFloatProperty(name string, v float64) *Property {
	return o.SetProperty(name, &Property{Type: "double", Label: "Number", AttributeList: AttributeList{{Value: v}}})
}

func (o *Obj) SetStringProperty(name string, v string) *Property {
	return o.SetProperty(name, &Property{Type: "KString", AttributeList: AttributeList{{Value: v}}})
}

func (o *Obj) SetColorProperty(name string, r, g, b float32) *Property {
	return o.SetProperty(name, &Property{Type: "Color", Flag: "A", AttributeList: AttributeList{{Value: float64(r)}, {Value: float64(g)}, {Value: float64(b)}}})
}

func (o *Obj) SetTimeProperty(name string, t Time) *Property {
	return o.SetProperty(name, &Property{Type: "KTime", Label: "Time", AttributeList: AttributeList{{Value: int64(t)}}})
}

func (o *Obj) setVectorProperty(name string, v *geom.Vector3) *Property {
	return o.SetProperty(name, &Property{Type: name, Flag: "A", AttributeList: AttributeList{{Value: float64(v.X)}, {Value: float64(v.Y)}, {Value: float64(v.Z)}}})
}

func (o *Obj) FindRefs(typ string) []Object {
	var refs []Object
	for _, o := range o.Refs {
		if o.NodeName() == typ {
			refs = append(refs, o)
		}
	}
	return refs
}

func (o *Obj) AddRef(ref Object) {
	o.Refs = append(o.Refs, ref)
}

func (o *Obj) removeRefs(ids map[int64]bool) {
	var refs []Object
	for _, r := range o.Refs {
		if !ids[r.ID()] {
			refs = append(refs, r)
		}
	}
	o.Refs = refs
}
