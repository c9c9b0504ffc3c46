package converter

import (
	"fmt"
	"log"

	"github.com/binzume/dtsconv/dts"
	"github.com/binzume/dtsconv/fbx"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
)

type DTSToFBXOption struct {
	Scale             float32  // Default: 100
	CollisionPrefixes []string // Default: col
	Textures          TextureResolver
}

type dtsToFbx struct {
	*DTSToFBXOption
	doc       *fbx.Document
	materials []*fbx.Material

	// indexed by source node index
	joints    []*fbx.Model
	skeletons map[*fbx.Model]*fbx.Model
	fold      cases.Caser
}

func NewDTSToFBXConverter(options *DTSToFBXOption) *dtsToFbx {
	if options == nil {
		options = &DTSToFBXOption{}
	}
	if options.Scale == 0 {
		options.Scale = DefaultScale
	}
	if options.CollisionPrefixes == nil {
		options.CollisionPrefixes = []string{"col"}
	}
	return &dtsToFbx{
		DTSToFBXOption: options,
		fold:           cases.Fold(),
	}
}

// Convert builds a scene from shape and bakes its sequences.
func (c *dtsToFbx) Convert(shape *dts.Shape) (*fbx.Document, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrapf(err, "shape %s", shape.Name)
	}
	c.doc = fbx.NewDocument()
	c.joints = make([]*fbx.Model, len(shape.Nodes))
	c.skeletons = map[*fbx.Model]*fbx.Model{}

	c.convertMaterials(shape)
	for i := range shape.Subshapes {
		parent := c.doc.Scene
		if len(shape.Subshapes) > 1 {
			parent = c.doc.AddObject(fbx.NewModel(fmt.Sprintf("Subshape %d", i), "Null")).(*fbx.Model)
			c.doc.Scene.AddChild(parent)
		}
		ss := &shape.Subshapes[i]
		for j := ss.FirstObject; j < ss.FirstObject+ss.NumObjects; j++ {
			if err := c.convertObject(shape, &shape.Objects[j], parent); err != nil {
				return nil, errors.Wrapf(err, "subshape %d", i)
			}
		}
	}

	all := make([]int, len(shape.Nodes))
	for i := range all {
		all[i] = i
	}
	c.buildSkeleton(shape, c.doc.Scene, all)

	targets := make([]animTarget, len(shape.Nodes))
	for i := range targets {
		targets[i] = animTarget{joint: c.joints[i], base: i}
	}
	for _, seq := range shape.Sequences {
		if err := c.bakeSequence(shape, seq, targets); err != nil {
			return nil, err
		}
	}
	return c.doc, nil
}

// AddAnimations bakes the sequences of files into doc. Nodes are matched by name
// against base and the joints of doc; unmatched nodes are skipped.
func (c *dtsToFbx) AddAnimations(doc *fbx.Document, base *dts.Shape, files []*dts.Shape) error {
	c.doc = doc
	index := base.NodeNameIndex()
	joints := jointsByName(doc)
	for _, file := range files {
		c.joints = make([]*fbx.Model, len(file.Nodes))
		targets := make([]animTarget, len(file.Nodes))
		for i := range file.Nodes {
			name := file.NodeName(i)
			targets[i].base = -1
			if b, ok := index[name]; ok {
				c.joints[i] = joints[name]
				targets[i] = animTarget{joint: c.joints[i], base: b}
			}
		}
		for _, seq := range file.Sequences {
			if err := c.bakeSequence(base, seq, targets); err != nil {
				return errors.Wrapf(err, "file %s", file.Name)
			}
		}
	}
	return nil
}

// jointsByName maps model names to models. Joints win over other models.
func jointsByName(doc *fbx.Document) map[string]*fbx.Model {
	m := map[string]*fbx.Model{}
	for _, model := range doc.Models() {
		if cur, ok := m[model.Name()]; ok && (cur.SkeletonType() != "" || model.SkeletonType() == "") {
			continue
		}
		m[model.Name()] = model
	}
	return m
}

// Export converts shape and files and saves the scene to path.
// With appendAnim, the scene at path is loaded and only the sequences of files are added.
func (c *dtsToFbx) Export(store SceneStore, shape *dts.Shape, files []*dts.Shape, path string, appendAnim bool) error {
	var doc *fbx.Document
	var err error
	if appendAnim {
		doc, err = store.Load(path)
		if err != nil {
			return errors.Wrapf(err, "load scene %s", path)
		}
	} else {
		doc, err = c.Convert(shape)
		if err != nil {
			return errors.Wrapf(err, "convert %s", shape.Name)
		}
	}
	if err := c.AddAnimations(doc, shape, files); err != nil {
		return err
	}
	log.Printf("Save: %s (%d objects)", path, len(doc.Objects))
	if err := store.Save(doc, path); err != nil {
		return errors.Wrapf(err, "save scene %s", path)
	}
	return nil
}
