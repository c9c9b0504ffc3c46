package fbx

type Document struct {
	FileId       []byte
	Creator      string
	CreationTime string

	GlobalSettings *Obj
	Objects        []Object
	Connections    []*Connection
	Scene          *Model

	Materials []*Material

	RawNode *Node

	objects map[int64]Object
	nextID  int64
}

const firstObjectID = 100000

func NewDocument() *Document {
	doc := &Document{
		Creator: "dtsconv",
		objects: map[int64]Object{},
		nextID:  firstObjectID,
	}
	doc.Scene = NewModel("RootNode", "")
	doc.Scene.doc = doc
	doc.objects[0] = doc.Scene
	doc.GlobalSettings = newGlobalSettings()
	return doc
}

func newGlobalSettings() *Obj {
	gs := &Obj{Node: &Node{Name: "GlobalSettings", Children: []*Node{NewNode("Version", int32(1000)), {Name: "Properties70"}}}}
	gs.SetIntProperty("UpAxis", 1)
	gs.SetIntProperty("UpAxisSign", 1)
	gs.SetIntProperty("FrontAxis", 2)
	gs.SetIntProperty("FrontAxisSign", 1)
	gs.SetIntProperty("CoordAxis", 0)
	gs.SetIntProperty("CoordAxisSign", 1)
	gs.SetIntProperty("OriginalUpAxis", 1)
	gs.SetIntProperty("OriginalUpAxisSign", 1)
	gs.SetFloatProperty("UnitScaleFactor", 1)
	gs.SetFloatProperty("OriginalUnitScaleFactor", 1)
	return gs
}

// AddObject registers o and assigns a new id when it has none.
func (d *Document) AddObject(o Object) Object {
	b := o.base()
	if b.ID() == 0 {
		b.setID(d.nextID)
		d.nextID++
	} else if b.ID() >= d.nextID {
		d.nextID = b.ID() + 1
	}
	b.doc = d
	d.objects[b.ID()] = o
	d.Objects = append(d.Objects, o)
	if m, ok := o.(*Material); ok {
		d.Materials = append(d.Materials, m)
	}
	return o
}

func (d *Document) GetObject(id int64) Object {
	return d.objects[id]
}

// AddConnection connects child to parent.
func (d *Document) AddConnection(parent, child Object) {
	d.Connections = append(d.Connections, &Connection{Type: "OO", From: child.ID(), To: parent.ID()})
	d.link(parent, child, "")
}

// AddPropertyConnection connects src to a property of dst.
func (d *Document) AddPropertyConnection(dst, src Object, prop string) {
	d.Connections = append(d.Connections, &Connection{Type: "OP", From: src.ID(), To: dst.ID(), Prop: prop})
	d.link(dst, src, prop)
}

func (d *Document) link(to, from Object, prop string) {
	to.AddRef(from)
	switch t := to.(type) {
	case *Model:
		switch f := from.(type) {
		case *Model:
			f.Parent = t
		case *NodeAttribute:
			t.Attribute = f
		}
	case *Cluster:
		if m, ok := from.(*Model); ok {
			t.Link = m
		}
	case *AnimCurveNode:
		if c, ok := from.(*AnimCurve); ok && prop != "" {
			t.curves[prop] = c
		}
	}
	if n, ok := from.(*AnimCurveNode); ok && prop != "" {
		if m, ok := to.(*Model); ok {
			n.Target = m
			n.TargetProperty = prop
		}
	}
}

// RemoveObjects removes objects and their connections.
func (d *Document) RemoveObjects(objs []Object) {
	ids := map[int64]bool{}
	for _, o := range objs {
		ids[o.ID()] = true
	}
	var objects []Object
	for _, o := range d.Objects {
		if !ids[o.ID()] {
			objects = append(objects, o)
			o.base().removeRefs(ids)
		}
	}
	d.Objects = objects
	d.Scene.removeRefs(ids)
	for id := range ids {
		delete(d.objects, id)
	}
	var conns []*Connection
	for _, c := range d.Connections {
		if !ids[c.From] && !ids[c.To] {
			conns = append(conns, c)
		}
	}
	d.Connections = conns
}

func (d *Document) Models() []*Model {
	var r []*Model
	for _, o := range d.Objects {
		if m, ok := o.(*Model); ok {
			r = append(r, m)
		}
	}
	return r
}

// FindModel searches the hierarchy depth-first. Skeleton joints are preferred over other models.
func (d *Document) FindModel(name string) *Model {
	var found *Model
	var walk func(m *Model) *Model
	walk = func(m *Model) *Model {
		for _, c := range m.GetChildModels() {
			if c.Name() == name {
				if c.SkeletonType() != "" {
					return c
				}
				if found == nil {
					found = c
				}
			}
			if j := walk(c); j != nil {
				return j
			}
		}
		return nil
	}
	if j := walk(d.Scene); j != nil {
		return j
	}
	return found
}
