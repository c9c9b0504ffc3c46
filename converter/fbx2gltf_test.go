package converter

import (
	"image"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/binzume/dtsconv/dts"
	"github.com/binzume/dtsconv/fbx"
	"github.com/binzume/dtsconv/geom"
	"github.com/binzume/dtsconv/texture"
	"github.com/qmuntal/gltf"
)

func TestSkinWeights(t *testing.T) {
	a := fbx.NewCluster("a")
	a.Indexes = []int32{0, 0, 1}
	a.Weights = []float64{0.1, 0.2, 0.5}
	b := fbx.NewCluster("b")
	b.Indexes = []int32{0, 0, 0, 1}
	b.Weights = []float64{0.3, 0.4, 0.5, 0}
	joints, weights := skinWeights([]*fbx.Cluster{a, b}, 3)

	// 0.1 is dropped
	if joints[0] != [4]uint16{1, 1, 1, 0} || geom.Abs(weights[0][0]-0.5/1.4) > eps || geom.Abs(weights[0][3]-0.2/1.4) > eps {
		t.Error("vertex 0", joints[0], weights[0])
	}
	if joints[1] != [4]uint16{0, 0, 0, 0} || weights[1] != [4]float32{1, 0, 0, 0} {
		t.Error("vertex 1", joints[1], weights[1])
	}
	if weights[2] != [4]float32{} {
		t.Error("vertex 2", weights[2])
	}
}

func TestFBXToGLTF(t *testing.T) {
	doc, err := NewDTSToFBXConverter(nil).Convert(testSkinnedShape())
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewFBXToGLTFConverter(nil).Convert(doc)
	if err != nil {
		t.Fatal(err)
	}

	if len(g.Nodes) != len(doc.Models()) {
		t.Error("nodes", len(g.Nodes), len(doc.Models()))
	}
	if len(g.Scenes[0].Nodes) != 1 || g.Nodes[g.Scenes[0].Nodes[0]].Name != "Body" {
		t.Fatal("scene", g.Scenes[0].Nodes)
	}
	body := g.Nodes[g.Scenes[0].Nodes[0]]
	if !geom.NewVector3FromArray(body.Translation).ApproxEquals(&geom.Vector3{Z: 1}, eps) {
		t.Error("translation", body.Translation)
	}
	if body.Mesh == nil || len(g.Meshes[*body.Mesh].Primitives) != 1 {
		t.Fatal("mesh")
	}
	if p := g.Meshes[*body.Mesh].Primitives[0]; p.Material == nil || *p.Material != 0 {
		t.Error("material", p.Material)
	}
	if body.Skin == nil || len(g.Skins[*body.Skin].Joints) != 2 {
		t.Error("skin", body.Skin)
	}
	if len(g.Images) != 1 || g.Images[0].URI != "foo.png" {
		t.Error("images", g.Images)
	}
	if len(g.Animations) != len(doc.AnimStacks()) || len(g.Animations[0].Channels) != 2 {
		t.Fatal("animations", g.Animations)
	}
	if g.Animations[0].Name != "walk" {
		t.Error("animation name", g.Animations[0].Name)
	}
}

func TestExportGLTF(t *testing.T) {
	dir := t.TempDir()
	data, err := texture.EncodePNG(image.NewRGBA(image.Rect(0, 0, 4, 4)), 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(filepath.Join(dir, "foo.png"), data, 0644); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "out.glb")
	store := StoreForPath(path, &FBXToGLTFOption{TextureDir: dir})
	if _, ok := store.(*GLTFStore); !ok {
		t.Fatalf("store %T", store)
	}
	err = NewDTSToFBXConverter(nil).Export(store, testShape(), []*dts.Shape{auxShape()}, path, false)
	if err != nil {
		t.Fatal(err)
	}

	g, err := gltf.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Animations) != 2 {
		t.Error("animations", len(g.Animations))
	}
	if len(g.Images) != 1 || g.Images[0].BufferView == nil || g.Images[0].URI != "" {
		t.Error("image not embedded", g.Images)
	}

	if err := NewDTSToFBXConverter(nil).Export(store, testShape(), nil, path, true); err == nil {
		t.Error("append to glb must fail")
	}
}

func TestStoreForPath(t *testing.T) {
	if _, ok := StoreForPath("a.FBX", nil).(FBXStore); !ok {
		t.Error("fbx")
	}
	if _, ok := StoreForPath("a.gltf", nil).(*GLTFStore); !ok {
		t.Error("gltf")
	}
}
