package converter

import (
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/binzume/dtsconv/dts"
	"github.com/binzume/dtsconv/fbx"
	"github.com/binzume/dtsconv/geom"
)

const eps = 0.0001

func testShape() *dts.Shape {
	return &dts.Shape{
		Name:                "test",
		Names:               []string{"root", "child", "Body", "foo.png"},
		Nodes:               []dts.Node{{Name: 0, Parent: -1}, {Name: 1, Parent: 0}},
		DefaultTranslations: []dts.Point{{X: 0, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 0}},
		DefaultRotations:    []dts.Quat{{W: 1}, {W: 1}},
		Objects:             []dts.Object{{Name: 2, Node: 0, FirstMesh: 0, NumMeshes: 1}},
		Subshapes:           []dts.Subshape{{FirstNode: 0, NumNodes: 2, FirstObject: 0, NumObjects: 1}},
		Materials:           []dts.Material{{Name: "foo.png"}},
		Meshes: []*dts.Mesh{{
			Type:          dts.MeshStandard,
			VertsPerFrame: 3,
			Verts:         []dts.Point{{}, {X: 1}, {Y: 1}},
			TVerts:        []dts.Point2{{}, {X: 1}, {Y: 0.25}},
			Normals:       []dts.Point{{Z: 1}, {Z: 1}, {Z: 1}},
			Indices:       []int{0, 1, 2},
			Primitives:    []dts.Primitive{{FirstElement: 0, NumElements: 3, Type: dts.PrimitiveTriangles}},
		}},
		Sequences: []*dts.Sequence{{
			Name:         "walk",
			Duration:     1,
			NumKeyframes: 2,
			Matters: dts.Matters{
				Translation: []bool{true, false},
				Rotation:    []bool{false, false},
			},
			Translations: []dts.Point{{}, {X: 1}},
		}},
	}
}

func testSkinnedShape() *dts.Shape {
	shape := testShape()
	mesh := shape.Meshes[0]
	mesh.Type = dts.MeshSkin
	mesh.NodeIndex = []int{0, 1}
	mesh.VIndex = []int{0, 1, 2, 2}
	mesh.VBone = []int{0, 1, 1, 0}
	mesh.VWeight = []float32{1, 1, 0.25, 0.75}
	return shape
}

// auxShape has a node unknown to testShape in front of "child".
func auxShape() *dts.Shape {
	return &dts.Shape{
		Name:  "aux",
		Names: []string{"ghost", "child"},
		Nodes: []dts.Node{{Name: 0, Parent: -1}, {Name: 1, Parent: -1}},
		Sequences: []*dts.Sequence{{
			Name:         "wave",
			Duration:     2,
			NumKeyframes: 2,
			Matters: dts.Matters{
				Translation: []bool{true, true},
				Rotation:    []bool{true, false},
			},
			Translations: []dts.Point{{X: 9}, {X: 9}, {Y: 2}, {Y: 3}},
			Rotations:    []dts.Quat{{W: 1}, {W: 1}},
		}},
	}
}

func curveNodes(stack *fbx.AnimStack) []*fbx.AnimCurveNode {
	var r []*fbx.AnimCurveNode
	for _, l := range stack.GetLayers() {
		r = append(r, l.GetCurveNodes()...)
	}
	return r
}

func findStack(doc *fbx.Document, name string) *fbx.AnimStack {
	for _, s := range doc.AnimStacks() {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func keyValues(c *fbx.AnimCurve) []float32 {
	var r []float32
	for _, k := range c.Keys() {
		r = append(r, k.Value)
	}
	return r
}

func approxEquals(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if geom.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestAxisFix(t *testing.T) {
	if !AxisFix.Mul(AxisFix).ApproxEquals(geom.NewMatrix4(), eps) {
		t.Error("AxisFix is not involutory", AxisFix.Mul(AxisFix))
	}
	if d := AxisFix.Det(); geom.Abs(d-1) > eps {
		t.Error("det", d)
	}

	cases := []struct{ t, r *geom.Vector3 }{
		{&geom.Vector3{}, &geom.Vector3{}},
		{&geom.Vector3{X: 1, Y: 2, Z: 3}, &geom.Vector3{X: 10, Y: 20, Z: 30}},
		{&geom.Vector3{X: -50, Y: 0, Z: 12}, &geom.Vector3{X: -90, Y: 45, Z: 170}},
	}
	for _, c := range cases {
		t1, r1 := fixTransform(c.t, c.r)
		t2, r2 := fixTransform(t1, r1)
		if !t2.ApproxEquals(c.t, eps*100) {
			t.Errorf("translation %v -> %v", c.t, t2)
		}
		if !rotationMatrix(r2).ApproxEquals(rotationMatrix(c.r), eps*10) {
			t.Errorf("rotation %v -> %v", c.r, r2)
		}
	}
}

func TestToTargetPosition(t *testing.T) {
	p := &dts.Point{X: 1, Y: 2, Z: 3}
	if v := toTargetPosition(p, 100, false); !v.ApproxEquals(&geom.Vector3{X: 100, Y: 200, Z: 300}, eps) {
		t.Error("no fix", v)
	}
	if v := toTargetPosition(p, 100, true); !v.ApproxEquals(&geom.Vector3{X: -100, Y: 300, Z: 200}, eps) {
		t.Error("fix", v)
	}
}

func TestToTargetRotation(t *testing.T) {
	cases := []struct {
		q    dts.Quat
		want geom.Vector3
	}{
		{dts.Quat{W: 1}, geom.Vector3{}},
		{dts.Quat{X: 0.70710678, W: 0.70710678}, geom.Vector3{X: -90}},
		{dts.Quat{Z: 1.41421356, W: 1.41421356}, geom.Vector3{Z: -90}}, // not normalized
	}
	for _, c := range cases {
		if r := toTargetRotation(&c.q); !r.ApproxEquals(&c.want, 0.01) {
			t.Errorf("%v: %v, want %v", c.q, r, c.want)
		}
	}
}

func TestTriangles(t *testing.T) {
	indices := []int{10, 11, 12, 13, 14, 15}
	cases := []struct {
		name string
		prim dts.Primitive
		want [][3]int
	}{
		{"list", dts.Primitive{FirstElement: 0, NumElements: 6, Type: dts.PrimitiveTriangles},
			[][3]int{{10, 11, 12}, {13, 14, 15}}},
		{"list offset", dts.Primitive{FirstElement: 3, NumElements: 3, Type: dts.PrimitiveTriangles | 2},
			[][3]int{{13, 14, 15}}},
		{"strip", dts.Primitive{FirstElement: 0, NumElements: 5, Type: dts.PrimitiveStrip},
			[][3]int{{12, 10, 11}, {13, 12, 11}, {14, 12, 13}}},
		{"strip offset", dts.Primitive{FirstElement: 2, NumElements: 4, Type: dts.PrimitiveStrip | 1},
			[][3]int{{14, 12, 13}, {15, 14, 13}}},
		{"fan", dts.Primitive{FirstElement: 1, NumElements: 5, Type: dts.PrimitiveFan},
			[][3]int{{11, 12, 13}, {11, 13, 14}, {11, 14, 15}}},
		{"empty strip", dts.Primitive{FirstElement: 0, NumElements: 2, Type: dts.PrimitiveStrip}, nil},
	}
	for _, c := range cases {
		got := triangles(indices, &c.prim)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: %v, want %v", c.name, got, c.want)
		}
	}
}

func TestTrianglesBadWinding(t *testing.T) {
	defer func() {
		if r := recover(); r != dts.ErrBadWinding {
			t.Error("expected panic", r)
		}
	}()
	triangles([]int{0, 1, 2}, &dts.Primitive{NumElements: 3, Type: dts.PrimitiveTypeMask})
}

func TestConvert(t *testing.T) {
	doc, err := NewDTSToFBXConverter(nil).Convert(testShape())
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Materials) != 1 || doc.Materials[0].Name() != "foo" {
		t.Fatal("materials", doc.Materials)
	}
	if tex := doc.Materials[0].GetTexture("DiffuseColor"); tex == nil || tex.GetFileName() != "foo.png" {
		t.Error("texture", tex)
	}

	body := doc.FindModel("Body")
	if body == nil || body.Parent != doc.Scene {
		t.Fatal("mesh node", body)
	}
	if !body.GetTranslation().ApproxEquals(&geom.Vector3{Z: 100}, eps) {
		t.Error("mesh node pose", body.GetTranslation())
	}
	if body.GetShading() != fbx.ShadingTexture {
		t.Error("shading", body.GetShading())
	}
	g := body.GetGeometry()
	if len(g.Polygons) != 1 || !reflect.DeepEqual(g.Polygons[0], []int{0, 1, 2}) {
		t.Error("polygons", g.Polygons)
	}
	if len(body.GetMaterials()) != 1 || g.PolygonMaterials[0] != 0 {
		t.Error("material slots", body.GetMaterials(), g.PolygonMaterials)
	}
	if !g.Vertices[1].ApproxEquals(&geom.Vector3{X: -100}, eps) || !g.Vertices[2].ApproxEquals(&geom.Vector3{Z: 100}, eps) {
		t.Error("vertices", g.Vertices[1], g.Vertices[2])
	}
	if g.UVs[2].Y != 0.75 || g.UVs[0].Y != 1 {
		t.Error("uv", g.UVs)
	}
	if !g.Normals[0].ApproxEquals(&geom.Vector3{Z: 1}, eps) {
		t.Error("normal", g.Normals[0])
	}

	root, child := doc.FindModel("root"), doc.FindModel("child")
	if root == nil || child == nil {
		t.Fatal("joints")
	}
	if root.SkeletonType() != fbx.SkeletonRoot || child.SkeletonType() != fbx.SkeletonLimbNode {
		t.Error("skeleton types", root.SkeletonType(), child.SkeletonType())
	}
	if child.Parent != root || root.Parent == nil || root.Parent.Name() != "Skeleton" || root.Parent.Parent != doc.Scene {
		t.Error("skeleton hierarchy")
	}
	if !root.GetTranslation().ApproxEquals(&geom.Vector3{Y: 100}, eps) || !rotationMatrix(root.GetRotation()).ApproxEquals(AxisFix, eps) {
		t.Error("root pose", root.GetTranslation(), root.GetRotation())
	}
	if !child.GetTranslation().ApproxEquals(&geom.Vector3{Y: 100}, eps) || !child.GetRotation().ApproxEquals(&geom.Vector3{}, eps) {
		t.Error("child pose", child.GetTranslation(), child.GetRotation())
	}

	stack := findStack(doc, "walk")
	if stack == nil {
		t.Fatal("no stack")
	}
	if start, stop := stack.GetTimeSpan(); start != 0 || stop != fbx.TimeSecond {
		t.Error("time span", start, stop)
	}
	nodes := curveNodes(stack)
	if len(nodes) != 2 {
		t.Fatal("curve nodes", len(nodes))
	}
	for _, n := range nodes {
		if n.Target != root {
			t.Error("curve on", n.Target.Name())
		}
		for _, ch := range []string{fbx.ChannelX, fbx.ChannelY, fbx.ChannelZ} {
			keys := n.Curve(ch, false).Keys()
			if len(keys) != 2 || keys[0].Time != 0 || keys[1].Time != fbx.SecondsToTime(0.5) {
				t.Fatal(n.TargetProperty, ch, keys)
			}
		}
		switch n.TargetProperty {
		case "Lcl Translation":
			if v := keyValues(n.Curve(fbx.ChannelX, false)); !approxEquals(v, []float32{0, -100}) {
				t.Error("translation x", v)
			}
			if k := n.Curve(fbx.ChannelY, false).Keys()[0]; k.Interpolation != fbx.InterpolationCubic {
				t.Error("translation interpolation", k.Interpolation)
			}
		case "Lcl Rotation":
			x, y, z := n.Curve(fbx.ChannelX, false).Keys(), n.Curve(fbx.ChannelY, false).Keys(), n.Curve(fbx.ChannelZ, false).Keys()
			for i := range x {
				r := &geom.Vector3{X: x[i].Value, Y: y[i].Value, Z: z[i].Value}
				if !rotationMatrix(r).ApproxEquals(AxisFix, eps) {
					t.Error("rotation", r)
				}
				if x[i].Interpolation != fbx.InterpolationConstant {
					t.Error("rotation interpolation", x[i].Interpolation)
				}
			}
		default:
			t.Error("property", n.TargetProperty)
		}
	}
}

func TestConvertSkin(t *testing.T) {
	shape := testSkinnedShape()
	doc, err := NewDTSToFBXConverter(nil).Convert(shape)
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	for _, m := range doc.Models() {
		if m.Name() == "root" {
			count++
		}
	}
	if count != 1 {
		t.Error("joints must be shared", count)
	}
	body := doc.FindModel("Body")
	root := doc.FindModel("root")
	if root.Parent == nil || root.Parent.Name() != "Skeleton" || root.Parent.Parent != body {
		t.Error("skeleton must be under the mesh node")
	}

	skins := body.GetGeometry().GetSkins()
	if len(skins) != 1 {
		t.Fatal("skins", len(skins))
	}
	clusters := skins[0].GetClusters()
	if len(clusters) != 2 || clusters[0].Link != root || clusters[1].Link.Name() != "child" {
		t.Fatal("clusters", clusters)
	}

	type pair struct {
		bone   string
		vertex int
		weight float64
	}
	var got, want []pair
	for _, c := range clusters {
		if c.Mode != fbx.LinkTotalOne {
			t.Error("mode", c.Mode)
		}
		for i, v := range c.Indexes {
			got = append(got, pair{c.Link.Name(), int(v), c.Weights[i]})
		}
	}
	mesh := shape.Meshes[0]
	for i, v := range mesh.VIndex {
		want = append(want, pair{shape.NodeName(mesh.NodeIndex[mesh.VBone[i]]), v, float64(mesh.VWeight[i])})
	}
	less := func(p []pair) func(i, j int) bool {
		return func(i, j int) bool {
			if p[i].bone != p[j].bone {
				return p[i].bone < p[j].bone
			}
			if p[i].vertex != p[j].vertex {
				return p[i].vertex < p[j].vertex
			}
			return p[i].weight < p[j].weight
		}
	}
	sort.Slice(got, less(got))
	sort.Slice(want, less(want))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("weights %v, want %v", got, want)
	}

	if !clusters[0].Transform.ApproxEquals(geom.NewMatrix4(), eps) {
		t.Error("bind transform", clusters[0].Transform)
	}
	if tr := clusters[1].TransformLink.GetTranslation(); !tr.ApproxEquals(&geom.Vector3{Y: 100, Z: 100}, eps) {
		t.Error("link transform", tr)
	}
}

func TestConvertErrors(t *testing.T) {
	badBone := testSkinnedShape()
	badBone.Meshes[0].VBone[0] = 2

	shortStream := testShape()
	shortStream.Sequences[0].Translations = shortStream.Sequences[0].Translations[:1]

	badMatters := testShape()
	badMatters.Sequences[0].Matters.Rotation = []bool{false}

	badIndex := testShape()
	badIndex.Meshes[0].Indices = []int{0, 1, 5}

	badElements := testShape()
	badElements.Meshes[0].Primitives[0].NumElements = 4

	badMaterial := testShape()
	badMaterial.Meshes[0].Primitives[0].Type |= 1

	for name, shape := range map[string]*dts.Shape{
		"bone":     badBone,
		"stream":   shortStream,
		"matters":  badMatters,
		"index":    badIndex,
		"elements": badElements,
		"material": badMaterial,
	} {
		if _, err := NewDTSToFBXConverter(nil).Convert(shape); err == nil {
			t.Error(name, ": error expected")
		}
	}
}

func TestConvertObjects(t *testing.T) {
	shape := testShape()
	shape.Names = append(shape.Names, "COL-1")
	shape.Objects = append(shape.Objects, dts.Object{Name: 4, Node: -1, FirstMesh: 0, NumMeshes: 1})
	shape.Subshapes = []dts.Subshape{
		{FirstObject: 0, NumObjects: 1},
		{FirstObject: 1, NumObjects: 1},
	}
	shape.Meshes = append(shape.Meshes, nil)
	shape.Objects[0].NumMeshes = 2

	doc, err := NewDTSToFBXConverter(nil).Convert(shape)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, m := range doc.Scene.GetChildModels() {
		names = append(names, m.Name())
	}
	if !reflect.DeepEqual(names, []string{"Subshape 0", "Subshape 1", "Skeleton"}) {
		t.Error("top level", names)
	}
	for _, m := range doc.Models() {
		if m.Name() == "COL-1" {
			t.Error("collision object converted")
		}
	}
	// one node per mesh, the null mesh has no geometry
	bodies := doc.FindModel("Subshape 0").GetChildModels()
	if len(bodies) != 2 || bodies[0].GetGeometry() == nil || bodies[1].GetGeometry() != nil {
		t.Error("mesh nodes", bodies)
	}
}

func TestAddAnimations(t *testing.T) {
	c := NewDTSToFBXConverter(nil)
	base := testShape()
	doc, err := c.Convert(base)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.AddAnimations(doc, base, []*dts.Shape{auxShape()}); err != nil {
		t.Fatal(err)
	}

	stack := findStack(doc, "wave")
	if stack == nil || findStack(doc, "walk") == nil {
		t.Fatal("stacks", doc.AnimStacks())
	}
	if _, stop := stack.GetTimeSpan(); stop != fbx.SecondsToTime(2) {
		t.Error("time span", stop)
	}
	nodes := curveNodes(stack)
	if len(nodes) != 1 || nodes[0].Target.Name() != "child" || nodes[0].TargetProperty != "Lcl Translation" {
		t.Fatal("curve nodes", nodes)
	}
	if v := keyValues(nodes[0].Curve(fbx.ChannelY, false)); !approxEquals(v, []float32{200, 300}) {
		t.Error("stream out of sync", v)
	}
	if keys := nodes[0].Curve(fbx.ChannelX, false).Keys(); keys[1].Time != fbx.TimeSecond {
		t.Error("key time", keys[1].Time)
	}
}

func TestBakeReplacesStack(t *testing.T) {
	c := NewDTSToFBXConverter(nil)
	base := testShape()
	doc, err := c.Convert(base)
	if err != nil {
		t.Fatal(err)
	}
	objects := len(doc.Objects)
	if err := c.AddAnimations(doc, base, []*dts.Shape{base}); err != nil {
		t.Fatal(err)
	}
	if len(doc.AnimStacks()) != 1 || len(doc.Objects) != objects {
		t.Error("stack not replaced", len(doc.AnimStacks()), len(doc.Objects), objects)
	}
}

type testResolver map[string]string

func (r testResolver) Resolve(name string) string {
	return r[name]
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.fbx")
	shape := testShape()

	c := NewDTSToFBXConverter(&DTSToFBXOption{Textures: testResolver{"foo.png": "tex/foo.tga"}})
	if err := c.Export(FBXStore{}, shape, nil, path, false); err != nil {
		t.Fatal(err)
	}
	if err := NewDTSToFBXConverter(nil).Export(FBXStore{}, shape, []*dts.Shape{auxShape()}, path, true); err != nil {
		t.Fatal(err)
	}

	doc, err := fbx.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if findStack(doc, "walk") == nil || findStack(doc, "wave") == nil {
		t.Error("stacks", doc.AnimStacks())
	}
	if nodes := curveNodes(findStack(doc, "wave")); len(nodes) != 1 || nodes[0].Target.Name() != "child" {
		t.Error("appended curves", nodes)
	}
	if tex := doc.Materials[0].GetTexture("DiffuseColor"); tex == nil || tex.GetFileName() != "tex/foo.tga" {
		t.Error("texture", tex)
	}
	if body := doc.FindModel("Body"); body == nil || body.GetShading() != fbx.ShadingTexture {
		t.Error("shading after reload", body)
	}

	err = NewDTSToFBXConverter(nil).Export(FBXStore{}, shape, nil, filepath.Join(dir, "missing.fbx"), true)
	if err == nil {
		t.Error("load failure must be fatal")
	}
}
