package converter

import (
	"sort"

	"github.com/binzume/dtsconv/dts"
	"github.com/binzume/dtsconv/fbx"
)

// buildSkeleton creates joints for nodes and their missing ancestors.
// Existing joints are reused. New root joints are placed under a "Skeleton" model below parent.
func (c *dtsToFbx) buildSkeleton(shape *dts.Shape, parent *fbx.Model, nodes []int) {
	if len(c.joints) < len(shape.Nodes) {
		c.joints = append(c.joints, make([]*fbx.Model, len(shape.Nodes)-len(c.joints))...)
	}
	seen := map[int]bool{}
	var created []int
	for _, n := range nodes {
		for i := n; i >= 0 && !seen[i] && c.joints[i] == nil; i = shape.Nodes[i].Parent {
			seen[i] = true
			created = append(created, i)
		}
	}
	sort.Ints(created)

	for _, i := range created {
		kind := fbx.SkeletonLimbNode
		if shape.IsRoot(i) {
			kind = fbx.SkeletonRoot
		}
		name := shape.NodeName(i)
		joint := c.doc.AddObject(fbx.NewModel(name, "Null")).(*fbx.Model)
		joint.SetNodeAttribute(c.doc.AddObject(fbx.NewSkeletonAttribute(name, kind)).(*fbx.NodeAttribute))
		c.joints[i] = joint
	}

	// parents exist now
	for _, i := range created {
		if p := shape.Nodes[i].Parent; p >= 0 {
			c.joints[p].AddChild(c.joints[i])
		} else {
			c.skeletonRoot(parent).AddChild(c.joints[i])
		}
		c.setDefaultPose(shape, i, c.joints[i], shape.IsRoot(i))
	}
}

func (c *dtsToFbx) skeletonRoot(parent *fbx.Model) *fbx.Model {
	if s, ok := c.skeletons[parent]; ok {
		return s
	}
	s := c.doc.AddObject(fbx.NewModel("Skeleton", "Null")).(*fbx.Model)
	parent.AddChild(s)
	c.skeletons[parent] = s
	return s
}

func (c *dtsToFbx) setDefaultPose(shape *dts.Shape, i int, m *fbx.Model, axisFix bool) {
	t, r := shape.DefaultPose(i)
	pos, rot := toTargetPosition(&t, c.Scale, false), toTargetRotation(&r)
	if axisFix {
		pos, rot = fixTransform(pos, rot)
	}
	m.SetTranslation(pos)
	m.SetRotation(rot)
}
