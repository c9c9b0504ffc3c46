package fbx

import (
	"bufio"
	"io"
	"os"

	"github.com/binzume/dtsconv/geom"
)

func Load(path string) (*Document, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Parse(r)
}

// Parse reads binary or ascii FBX.
func Parse(r io.Reader) (*Document, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(binaryMagic))
	var root *Node
	var err error
	if string(head) == binaryMagic {
		p := binaryParser{r: &positionReader{r: br}}
		root, err = p.Parse()
	} else {
		p := textParser{r: br}
		root, err = p.Parse()
	}
	if err != nil {
		return nil, err
	}
	return BuildDocument(root)
}

func BuildDocument(root *Node) (*Document, error) {
	doc := NewDocument()
	doc.RawNode = root

	header := root.FindChild("FBXHeaderExtension")
	if c := header.FindChild("Creator").GetString(); c != "" {
		doc.Creator = c
	}
	doc.CreationTime = root.FindChild("CreationTime").GetString()
	if id := root.FindChild("FileId").Attr(0); id != nil {
		doc.FileId, _ = id.Value.([]byte)
	}

	templates := map[string]*Obj{}
	for _, node := range root.FindChild("Definitions").GetChildren() {
		if node.Name != "ObjectType" {
			continue
		}
		if t := node.FindChild("PropertyTemplate"); t != nil {
			templates[node.GetString()] = &Obj{Node: t}
		}
	}
	if gs := root.FindChild("GlobalSettings"); gs != nil {
		doc.GlobalSettings = &Obj{Node: gs, Template: templates["GlobalSettings"]}
	}

	for _, node := range root.FindChild("Objects").GetChildren() {
		base := &Obj{Node: node, Template: templates[node.Name]}
		doc.AddObject(buildObject(base))
	}

	for _, node := range root.FindChild("Connections").GetChildren() {
		if node.Name != "C" {
			continue
		}
		c := &Connection{
			Type: node.Attr(0).ToString(),
			From: node.Attr(1).ToInt64(0),
			To:   node.Attr(2).ToInt64(0),
		}
		if c.Type == "OP" {
			c.Prop = node.Attr(3).ToString()
		}
		from := doc.objects[c.From]
		to := doc.objects[c.To]
		if from == nil || to == nil {
			continue
		}
		doc.Connections = append(doc.Connections, c)
		doc.link(to, from, c.Prop)
	}

	return doc, nil
}

func buildObject(base *Obj) Object {
	switch base.NodeName() {
	case "Model":
		return &Model{Obj: *base}
	case "NodeAttribute":
		return &NodeAttribute{Obj: *base}
	case "Geometry":
		g := &Geometry{Obj: *base}
		g.parse()
		return g
	case "Material":
		return &Material{Obj: *base}
	case "Texture":
		return &Texture{Obj: *base}
	case "Deformer":
		switch base.Kind() {
		case "Skin":
			return &Skin{Obj: *base}
		case "Cluster":
			c := &Cluster{Obj: *base, Mode: LinkNormalize, Transform: geom.NewMatrix4(), TransformLink: geom.NewMatrix4()}
			c.parse()
			return c
		}
	case "AnimationStack":
		return &AnimStack{Obj: *base}
	case "AnimationLayer":
		return &AnimLayer{Obj: *base}
	case "AnimationCurveNode":
		return &AnimCurveNode{Obj: *base, curves: map[string]*AnimCurve{}}
	case "AnimationCurve":
		c := &AnimCurve{Obj: *base}
		c.parse()
		return c
	}
	return base
}
