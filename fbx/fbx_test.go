package fbx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/binzume/dtsconv/geom"
)

func newTestDocument() *Document {
	doc := NewDocument()

	model := doc.AddObject(NewModel("model01", "Mesh")).(*Model)
	model.SetTranslation(&geom.Vector3{X: 1, Y: 0, Z: 0})
	model.SetScaling(&geom.Vector3{X: 1, Y: 2, Z: 1})
	doc.Scene.AddChild(model)

	g := doc.AddObject(NewGeometry("model01", nil, nil)).(*Geometry)
	g.InitControlPoints(4)
	g.Vertices[1].X = 1
	g.Vertices[2].Y = 1
	g.Vertices[3].Z = 1
	g.SetNormals([]*geom.Vector3{{Z: 1}, {Z: 1}, {Z: 1}, {Z: 1}})
	g.SetUVs([]*geom.Vector2{{}, {X: 1}, {Y: 1}, {X: 1, Y: 1}})
	g.BeginPolygon(0)
	g.AddPolygon(0)
	g.AddPolygon(1)
	g.AddPolygon(2)
	g.EndPolygon()
	g.BeginPolygon(1)
	g.AddPolygon(2)
	g.AddPolygon(1)
	g.AddPolygon(3)
	g.EndPolygon()
	model.SetGeometry(g)

	mat := doc.AddObject(NewMaterial("mat01")).(*Material)
	mat.SetColor("DiffuseColor", &geom.Vector3{X: 1, Y: 0, Z: 0.5})
	tex := doc.AddObject(NewTexture("Diffuse Texture", "textures/mat01.png")).(*Texture)
	mat.SetTexture("DiffuseColor", tex)
	model.AddMaterial(mat)

	root := doc.AddObject(NewModel("hip", "Null")).(*Model)
	root.SetNodeAttribute(doc.AddObject(NewSkeletonAttribute("hip", SkeletonRoot)).(*NodeAttribute))
	root.SetTranslation(&geom.Vector3{X: 0, Y: 10, Z: 0})
	doc.Scene.AddChild(root)
	limb := doc.AddObject(NewModel("leg", "Null")).(*Model)
	limb.SetNodeAttribute(doc.AddObject(NewSkeletonAttribute("leg", SkeletonLimbNode)).(*NodeAttribute))
	limb.SetTranslation(&geom.Vector3{X: 0, Y: -5, Z: 0})
	root.AddChild(limb)

	skin := doc.AddObject(NewSkin("")).(*Skin)
	g.AddDeformer(skin)
	cluster := doc.AddObject(NewCluster("leg")).(*Cluster)
	cluster.SetLink(limb)
	cluster.SetLinkMode(LinkTotalOne)
	cluster.SetTransformMatrix(model.GetWorldMatrix())
	cluster.SetTransformLinkMatrix(limb.GetWorldMatrix())
	cluster.AddControlPointIndex(0, 0.25)
	cluster.AddControlPointIndex(3, 1)
	skin.AddCluster(cluster)

	stack := doc.NewAnimStack("walk")
	stack.SetTimeSpan(0, TimeSecond)
	layer := stack.AddLayer("Base Layer")
	tx := layer.CurveNode(limb, "Lcl Translation").Curve(ChannelX, true)
	tx.KeyModifyBegin()
	for i, v := range []float32{1, 2, 3} {
		k := tx.KeyAdd(SecondsToTime(float64(i) * 0.5))
		tx.KeySetValue(k, v)
		tx.KeySetInterpolation(k, InterpolationCubic)
	}
	tx.KeyModifyEnd()
	rx := layer.CurveNode(limb, "Lcl Rotation").Curve(ChannelX, true)
	rx.KeyModifyBegin()
	k := rx.KeyAdd(0)
	rx.KeySetValue(k, 90)
	rx.KeySetInterpolation(k, InterpolationConstant)
	rx.KeyModifyEnd()
	return doc
}

func TestWriteAndParse(t *testing.T) {
	doc := newTestDocument()

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"Model::model01"`) {
		t.Error("object name not written")
	}

	doc2, err := Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc2.Objects) != len(doc.Objects) {
		t.Error("objects: ", len(doc2.Objects), len(doc.Objects))
	}
	if len(doc2.Connections) != len(doc.Connections) {
		t.Error("connections: ", len(doc2.Connections), len(doc.Connections))
	}

	model := doc2.FindModel("model01")
	if model == nil || model.Parent != doc2.Scene {
		t.Fatal("model01 not found")
	}
	if *model.GetTranslation() != (geom.Vector3{X: 1}) {
		t.Error("translation: ", model.GetTranslation())
	}
	g := model.GetGeometry()
	if g == nil || len(g.Vertices) != 4 || len(g.Polygons) != 2 {
		t.Fatal("geometry: ", g)
	}
	if g.Polygons[1][2] != 3 || len(g.PolygonMaterials) != 2 || g.PolygonMaterials[1] != 1 {
		t.Error("polygons: ", g.Polygons, g.PolygonMaterials)
	}
	if len(g.Normals) != 4 || len(g.UVs) != 4 || g.UVs[3].X != 1 {
		t.Error("layers: ", g.Normals, g.UVs)
	}
	mats := model.GetMaterials()
	if len(mats) != 1 || mats[0].Name() != "mat01" || len(doc2.Materials) != 1 {
		t.Fatal("materials: ", mats)
	}
	if tex := mats[0].GetTexture("DiffuseColor"); tex == nil || tex.GetFileName() != "textures/mat01.png" {
		t.Error("texture: ", tex)
	}

	leg := doc2.FindModel("leg")
	if leg == nil || leg.Parent == nil || leg.Parent.Name() != "hip" {
		t.Fatal("leg: ", leg)
	}
	if leg.SkeletonType() != SkeletonLimbNode || leg.Parent.SkeletonType() != SkeletonRoot {
		t.Error("skeleton type: ", leg.SkeletonType(), leg.Parent.SkeletonType())
	}
	world := leg.GetWorldMatrix().GetTranslation()
	if !world.ApproxEquals(&geom.Vector3{Y: 5}, 0.0001) {
		t.Error("world: ", world)
	}

	skins := g.GetSkins()
	if len(skins) != 1 || len(skins[0].GetClusters()) != 1 {
		t.Fatal("skin: ", skins)
	}
	c := skins[0].GetClusters()[0]
	if c.Link != leg || c.Mode != LinkTotalOne {
		t.Error("cluster link: ", c.Link, c.Mode)
	}
	if len(c.Indexes) != 2 || c.Indexes[1] != 3 || c.Weights[0] != 0.25 {
		t.Error("cluster weights: ", c.Indexes, c.Weights)
	}
	if !c.TransformLink.ApproxEquals(leg.GetWorldMatrix(), 0.0001) {
		t.Error("transform link: ", c.TransformLink)
	}

	stacks := doc2.AnimStacks()
	if len(stacks) != 1 || stacks[0].Name() != "walk" {
		t.Fatal("stacks: ", stacks)
	}
	if _, stop := stacks[0].GetTimeSpan(); stop != TimeSecond {
		t.Error("time span: ", stop)
	}
	layers := stacks[0].GetLayers()
	if len(layers) != 1 || len(layers[0].GetCurveNodes()) != 2 {
		t.Fatal("layers: ", layers)
	}
	for _, n := range layers[0].GetCurveNodes() {
		if n.Target != leg {
			t.Error("curve node target: ", n.Target)
		}
		curve := n.Curve(ChannelX, false)
		if curve == nil {
			t.Fatal("no curve: ", n.TargetProperty)
		}
		keys := curve.Keys()
		switch n.TargetProperty {
		case "Lcl Translation":
			if len(keys) != 3 || keys[2].Value != 3 || keys[1].Time != TimeSecond/2 || keys[0].Interpolation != InterpolationCubic {
				t.Error("translation keys: ", keys)
			}
		case "Lcl Rotation":
			if len(keys) != 1 || keys[0].Value != 90 || keys[0].Interpolation != InterpolationConstant {
				t.Error("rotation keys: ", keys)
			}
		default:
			t.Error("unexpected property: ", n.TargetProperty)
		}
	}
}

func TestRemoveAnimStack(t *testing.T) {
	doc := newTestDocument()
	n := len(doc.Objects)

	if doc.RemoveAnimStack("run") {
		t.Error("removed unknown stack")
	}
	if !doc.RemoveAnimStack("walk") {
		t.Fatal("stack not removed")
	}
	// stack, layer, 2 curve nodes, 2 curves
	if len(doc.Objects) != n-6 {
		t.Error("objects: ", len(doc.Objects), n)
	}
	for _, c := range doc.Connections {
		if doc.GetObject(c.From) == nil || doc.GetObject(c.To) == nil {
			t.Error("dangling connection: ", c)
		}
	}
	leg := doc.FindModel("leg")
	for _, r := range leg.Refs {
		if r.NodeName() == "AnimationCurveNode" {
			t.Error("curve node still referenced")
		}
	}
}

func TestKeyAddOutsideEdit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	c := NewAnimCurve()
	c.KeyAdd(0)
}

func TestKeyAddOrder(t *testing.T) {
	c := NewAnimCurve()
	c.KeyModifyBegin()
	c.KeySetValue(c.KeyAdd(TimeSecond), 2)
	c.KeySetValue(c.KeyAdd(0), 1)
	if i := c.KeyAdd(TimeSecond); i != 1 {
		t.Error("existing key index: ", i)
	}
	c.KeyModifyEnd()
	keys := c.Keys()
	if len(keys) != 2 || keys[0].Value != 1 || keys[1].Value != 2 {
		t.Error("keys: ", keys)
	}
	if SecondsToTime(0.5).Seconds() != 0.5 {
		t.Error("time conversion")
	}
}

func TestFindModelPrefersJoint(t *testing.T) {
	doc := NewDocument()
	mesh := doc.AddObject(NewModel("Bone", "Mesh")).(*Model)
	doc.Scene.AddChild(mesh)
	joint := doc.AddObject(NewModel("Bone", "Null")).(*Model)
	joint.SetNodeAttribute(doc.AddObject(NewSkeletonAttribute("Bone", SkeletonLimbNode)).(*NodeAttribute))
	doc.Scene.AddChild(joint)

	if doc.FindModel("Bone") != joint {
		t.Error("joint not preferred")
	}
	if doc.FindModel("None") != nil {
		t.Error("unexpected model")
	}
}
