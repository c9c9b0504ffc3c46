package fbx

import (
	"github.com/binzume/dtsconv/geom"
)

type Node struct {
	Name       string
	Attributes AttributeList
	Children   []*Node
}

type Attribute struct {
	Value     interface{}
	ArraySize uint
}

type AttributeList []*Attribute

// NewNode returns a node with attributes. Slices become array attributes.
func NewNode(name string, values ...interface{}) *Node {
	node := &Node{Name: name}
	for _, v := range values {
		node.Attributes = append(node.Attributes, NewAttribute(v))
	}
	return node
}

func NewAttribute(v interface{}) *Attribute {
	attr := &Attribute{Value: v}
	switch a := v.(type) {
	case []int32:
		attr.ArraySize = uint(len(a))
	case []int64:
		attr.ArraySize = uint(len(a))
	case []float32:
		attr.ArraySize = uint(len(a))
	case []float64:
		attr.ArraySize = uint(len(a))
	case []bool:
		attr.ArraySize = uint(len(a))
	}
	return attr
}

func (n *Node) FindChild(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (n *Node) FindChildren(name string) []*Node {
	if n == nil {
		return nil
	}
	var r []*Node
	for _, c := range n.Children {
		if c.Name == name {
			r = append(r, c)
		}
	}
	return r
}

func (n *Node) GetChildren() []*Node {
	if n == nil {
		return nil
	}
	return n.Children
}

func (n *Node) AddChild(c *Node) *Node {
	n.Children = append(n.Children, c)
	return c
}

// AddOrReplaceChild replaces the first child with the same name. Returns true if appended.
func (n *Node) AddOrReplaceChild(node *Node) bool {
	for i, c := range n.Children {
		if c.Name == node.Name {
			n.Children[i] = node
			return false
		}
	}
	n.Children = append(n.Children, node)
	return true
}

func (n *Node) RemoveChild(name string) {
	var children []*Node
	for _, c := range n.Children {
		if c.Name != name {
			children = append(children, c)
		}
	}
	n.Children = children
}

func (n *Node) Attr(i int) *Attribute {
	if n == nil {
		return nil
	}
	return n.Attributes.Get(i)
}

func (n *Node) GetInt() int {
	return n.Attr(0).ToInt(0)
}

func (n *Node) GetInt64() int64 {
	return n.Attr(0).ToInt64(0)
}

func (n *Node) GetFloat() float32 {
	return n.Attr(0).ToFloat32(0)
}

func (n *Node) GetString() string {
	return n.Attr(0).ToString()
}

func (n *Node) GetInt32Array() []int32 {
	return n.Attr(0).ToInt32Array()
}

func (n *Node) GetInt64Array() []int64 {
	return n.Attr(0).ToInt64Array()
}

func (n *Node) GetFloat32Array() []float32 {
	return n.Attr(0).ToFloat32Array()
}

func (n *Node) GetFloat64Array() []float64 {
	return n.Attr(0).ToFloat64Array()
}

func (n *Node) GetVec3Array() []*geom.Vector3 {
	return n.Attr(0).ToVec3Array()
}

func (n *Node) GetVec2Array() []*geom.Vector2 {
	return n.Attr(0).ToVec2Array()
}

func (l AttributeList) Get(i int) *Attribute {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

func (p *Attribute) ToInt(defvalue int) int {
	return int(p.ToInt64(int64(defvalue)))
}

func (p *Attribute) ToInt64(defvalue int64) int64 {
	if p == nil {
		return defvalue
	}
	switch v := p.Value.(type) {
	case byte:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case float32:
		return int64(v)
	case float64:
		return int64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	}
	return defvalue
}

func (p *Attribute) ToFloat32(defvalue float32) float32 {
	return float32(p.ToFloat64(float64(defvalue)))
}

func (p *Attribute) ToFloat64(defvalue float64) float64 {
	if p == nil {
		return defvalue
	}
	switch v := p.Value.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return defvalue
}

func (p *Attribute) ToString() string {
	if p == nil {
		return ""
	}
	if v, ok := p.Value.(string); ok {
		return v
	} else if v, ok := p.Value.([]byte); ok {
		return string(v)
	}
	return ""
}

func (p *Attribute) ToInt32Array() []int32 {
	if p == nil {
		return nil
	}
	switch vv := p.Value.(type) {
	case []int32:
		return vv
	case []int64:
		r := make([]int32, len(vv))
		for i, v := range vv {
			r[i] = int32(v)
		}
		return r
	case []float64:
		r := make([]int32, len(vv))
		for i, v := range vv {
			r[i] = int32(v)
		}
		return r
	}
	return nil
}

func (p *Attribute) ToInt64Array() []int64 {
	if p == nil {
		return nil
	}
	switch vv := p.Value.(type) {
	case []int64:
		return vv
	case []int32:
		r := make([]int64, len(vv))
		for i, v := range vv {
			r[i] = int64(v)
		}
		return r
	case []float64:
		r := make([]int64, len(vv))
		for i, v := range vv {
			r[i] = int64(v)
		}
		return r
	}
	return nil
}

func (p *Attribute) ToFloat64Array() []float64 {
	if p == nil {
		return nil
	}
	switch vv := p.Value.(type) {
	case []float64:
		return vv
	case []float32:
		r := make([]float64, len(vv))
		for i, v := range vv {
			r[i] = float64(v)
		}
		return r
	case []int32:
		r := make([]float64, len(vv))
		for i, v := range vv {
			r[i] = float64(v)
		}
		return r
	case []int64:
		r := make([]float64, len(vv))
		for i, v := range vv {
			r[i] = float64(v)
		}
		return r
	}
	return nil
}

func (p *Attribute) ToFloat32Array() []float32 {
	if p == nil {
		return nil
	}
	if vv, ok := p.Value.([]float32); ok {
		return vv
	}
	src := p.ToFloat64Array()
	if src == nil {
		return nil
	}
	r := make([]float32, len(src))
	for i, v := range src {
		r[i] = float32(v)
	}
	return r
}

func (p *Attribute) ToVec3Array() []*geom.Vector3 {
	v := p.ToFloat32Array()
	var vv []*geom.Vector3
	for i := 0; i < len(v)/3; i++ {
		vv = append(vv, &geom.Vector3{X: v[i*3], Y: v[i*3+1], Z: v[i*3+2]})
	}
	return vv
}

func (p *Attribute) ToVec2Array() []*geom.Vector2 {
	v := p.ToFloat32Array()
	var vv []*geom.Vector2
	for i := 0; i < len(v)/2; i++ {
		vv = append(vv, &geom.Vector2{X: v[i*2], Y: v[i*2+1]})
	}
	return vv
}
