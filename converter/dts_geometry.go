package converter

import (
	"strings"

	"github.com/binzume/dtsconv/dts"
	"github.com/binzume/dtsconv/fbx"
	"github.com/binzume/dtsconv/geom"
	"github.com/pkg/errors"
)

func (c *dtsToFbx) isCollision(name string) bool {
	name = c.fold.String(name)
	for _, prefix := range c.CollisionPrefixes {
		if strings.HasPrefix(name, c.fold.String(prefix)) {
			return true
		}
	}
	return false
}

// convertObject adds one model per mesh of obj under parent.
func (c *dtsToFbx) convertObject(shape *dts.Shape, obj *dts.Object, parent *fbx.Model) error {
	name := shape.ObjectName(obj)
	if c.isCollision(name) {
		return nil
	}
	for i := obj.FirstMesh; i < obj.FirstMesh+obj.NumMeshes; i++ {
		node := c.doc.AddObject(fbx.NewModel(name, "Mesh")).(*fbx.Model)
		parent.AddChild(node)
		if err := c.convertMesh(shape, shape.Meshes[i], node); err != nil {
			return errors.Wrapf(err, "object %s: mesh %d", name, i)
		}
		if obj.Node >= 0 {
			c.setDefaultPose(shape, obj.Node, node, false)
		}
	}
	return nil
}

func (c *dtsToFbx) convertMesh(shape *dts.Shape, mesh *dts.Mesh, node *fbx.Model) error {
	if mesh == nil || mesh.VertsPerFrame == 0 {
		return nil
	}

	n := mesh.VertsPerFrame
	g := c.doc.AddObject(fbx.NewGeometry(node.Name(), nil, nil)).(*fbx.Geometry)
	g.InitControlPoints(n)
	normals := make([]*geom.Vector3, n)
	uvs := make([]*geom.Vector2, n)
	for i := 0; i < n; i++ {
		*g.Vertices[i] = *toTargetPosition(&mesh.Verts[i], c.Scale, true)
		uvs[i] = &geom.Vector2{X: mesh.TVerts[i].X, Y: 1 - mesh.TVerts[i].Y}
		normal := mesh.Normal(i)
		normals[i] = &normal
	}
	g.SetNormals(normals)
	g.SetUVs(uvs)

	slots := map[int]int{}
	for i := range mesh.Primitives {
		p := &mesh.Primitives[i]
		slot, ok := slots[p.MaterialIndex()]
		if !ok {
			slot = node.AddMaterial(c.materials[p.MaterialIndex()])
			slots[p.MaterialIndex()] = slot
		}
		for _, tri := range triangles(mesh.Indices, p) {
			g.BeginPolygon(slot)
			g.AddPolygon(tri[0])
			g.AddPolygon(tri[1])
			g.AddPolygon(tri[2])
			g.EndPolygon()
		}
	}
	node.SetGeometry(g)
	node.SetShading(fbx.ShadingTexture)

	if mesh.IsSkin() {
		c.buildSkeleton(shape, node, mesh.NodeIndex)
		c.bindSkin(mesh, g, node.GetWorldMatrix())
	}
	return nil
}

// triangles decodes a primitive into vertex index triples.
func triangles(indices []int, p *dts.Primitive) [][3]int {
	first, end := p.FirstElement, p.FirstElement+p.NumElements
	var tris [][3]int
	switch p.Winding() {
	case dts.WindingList:
		for i := first; i+3 <= end; i += 3 {
			tris = append(tris, [3]int{indices[i], indices[i+1], indices[i+2]})
		}
	case dts.WindingStrip:
		flip := true
		for i := first + 2; i < end; i++ {
			if flip {
				tris = append(tris, [3]int{indices[i], indices[i-2], indices[i-1]})
			} else {
				tris = append(tris, [3]int{indices[i], indices[i-1], indices[i-2]})
			}
			flip = !flip
		}
	case dts.WindingFan:
		for i := first + 2; i < end; i++ {
			tris = append(tris, [3]int{indices[first], indices[i-1], indices[i]})
		}
	default:
		panic(dts.ErrBadWinding)
	}
	return tris
}
