package fbx

import (
	"github.com/binzume/dtsconv/geom"
)

type LinkMode string

const (
	LinkNormalize LinkMode = "Normalize"
	LinkAdditive  LinkMode = "Additive"
	LinkTotalOne  LinkMode = "TotalOne"
)

type Skin struct {
	Obj
}

func NewSkin(name string) *Skin {
	return &Skin{
		Obj: *newObj("Deformer", name, "Deformer", "Skin",
			NewNode("Version", int32(101)),
			NewNode("Link_DeformAcuracy", float64(50))),
	}
}

func (s *Skin) AddCluster(c *Cluster) {
	s.doc.AddConnection(s, c)
}

func (s *Skin) GetClusters() []*Cluster {
	var r []*Cluster
	for _, o := range s.Refs {
		if c, ok := o.(*Cluster); ok {
			r = append(r, c)
		}
	}
	return r
}

type Cluster struct {
	Obj
	Link          *Model
	Mode          LinkMode
	Indexes       []int32
	Weights       []float64
	Transform     *geom.Matrix4
	TransformLink *geom.Matrix4

	dirty bool
}

func NewCluster(name string) *Cluster {
	return &Cluster{
		Obj:           *newObj("Deformer", name, "SubDeformer", "Cluster", NewNode("Version", int32(100))),
		Mode:          LinkNormalize,
		Transform:     geom.NewMatrix4(),
		TransformLink: geom.NewMatrix4(),
		dirty:         true,
	}
}

// SetLink connects the joint that drives this cluster.
func (c *Cluster) SetLink(m *Model) {
	c.doc.AddConnection(c, m)
}

func (c *Cluster) SetLinkMode(mode LinkMode) {
	c.Mode = mode
	c.dirty = true
}

func (c *Cluster) SetTransformMatrix(m *geom.Matrix4) {
	c.Transform = m.Clone()
	c.dirty = true
}

func (c *Cluster) SetTransformLinkMatrix(m *geom.Matrix4) {
	c.TransformLink = m.Clone()
	c.dirty = true
}

func (c *Cluster) AddControlPointIndex(index int, weight float64) {
	c.Indexes = append(c.Indexes, int32(index))
	c.Weights = append(c.Weights, weight)
	c.dirty = true
}

func (c *Cluster) GetNode() *Node {
	if c.dirty {
		c.dirty = false
		c.AddOrReplaceChild(NewNode("UserData", "", ""))
		c.AddOrReplaceChild(NewNode("Mode", string(c.Mode)))
		c.AddOrReplaceChild(NewNode("Indexes", append([]int32{}, c.Indexes...)))
		c.AddOrReplaceChild(NewNode("Weights", append([]float64{}, c.Weights...)))
		c.AddOrReplaceChild(NewNode("Transform", c.Transform.ToFloat64Array()))
		c.AddOrReplaceChild(NewNode("TransformLink", c.TransformLink.ToFloat64Array()))
	}
	return c.Node
}

func (c *Cluster) parse() {
	if mode := c.FindChild("Mode").GetString(); mode != "" {
		c.Mode = LinkMode(mode)
	}
	c.Indexes = c.FindChild("Indexes").GetInt32Array()
	c.Weights = c.FindChild("Weights").GetFloat64Array()
	if m := c.FindChild("Transform").GetFloat32Array(); len(m) == 16 {
		c.Transform = geom.NewMatrix4FromSlice(m)
	}
	if m := c.FindChild("TransformLink").GetFloat32Array(); len(m) == 16 {
		c.TransformLink = geom.NewMatrix4FromSlice(m)
	}
}
