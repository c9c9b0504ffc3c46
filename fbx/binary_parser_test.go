package fbx

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"math"
	"testing"
)

type binNode struct {
	name     string
	props    []interface{}
	children []binNode
}

type compressed []int32

func writeBinProp(w *bytes.Buffer, v interface{}) {
	le := binary.LittleEndian
	switch p := v.(type) {
	case int32:
		w.WriteByte('I')
		binary.Write(w, le, p)
	case int64:
		w.WriteByte('L')
		binary.Write(w, le, p)
	case float64:
		w.WriteByte('D')
		binary.Write(w, le, p)
	case string:
		w.WriteByte('S')
		binary.Write(w, le, uint32(len(p)))
		w.WriteString(p)
	case []float64:
		w.WriteByte('d')
		binary.Write(w, le, uint32(len(p)))
		binary.Write(w, le, uint32(0))
		binary.Write(w, le, uint32(len(p)*8))
		binary.Write(w, le, p)
	case compressed:
		var z bytes.Buffer
		zw := zlib.NewWriter(&z)
		binary.Write(zw, le, []int32(p))
		zw.Close()
		w.WriteByte('i')
		binary.Write(w, le, uint32(len(p)))
		binary.Write(w, le, uint32(1))
		binary.Write(w, le, uint32(z.Len()))
		w.Write(z.Bytes())
	}
}

func writeBinNode(w *bytes.Buffer, n binNode) {
	var props bytes.Buffer
	for _, p := range n.props {
		writeBinProp(&props, p)
	}
	start := w.Len()
	w.Write(make([]byte, 12))
	w.WriteByte(byte(len(n.name)))
	w.WriteString(n.name)
	w.Write(props.Bytes())
	for _, c := range n.children {
		writeBinNode(w, c)
	}
	if len(n.children) > 0 {
		w.Write(make([]byte, 13))
	}
	b := w.Bytes()
	binary.LittleEndian.PutUint32(b[start:], uint32(w.Len()))
	binary.LittleEndian.PutUint32(b[start+4:], uint32(len(n.props)))
	binary.LittleEndian.PutUint32(b[start+8:], uint32(props.Len()))
}

func encodeBinary(nodes ...binNode) *bytes.Buffer {
	var w bytes.Buffer
	w.WriteString(binaryMagic)
	w.Write([]byte{0x1a, 0x00})
	binary.Write(&w, binary.LittleEndian, uint32(7400))
	for _, n := range nodes {
		writeBinNode(&w, n)
	}
	w.Write(make([]byte, 13))
	return &w
}

func TestParseBinary(t *testing.T) {
	prop := func(name string, x, y, z float64) binNode {
		return binNode{name: "P", props: []interface{}{name, name, "", "A", x, y, z}}
	}
	buf := encodeBinary(
		binNode{name: "Objects", children: []binNode{
			{name: "Model", props: []interface{}{int64(200), "Joint\x00\x01Model", "LimbNode"}, children: []binNode{
				{name: "Version", props: []interface{}{int32(232)}},
				{name: "Properties70", children: []binNode{prop("Lcl Translation", 1, 2, 3)}},
			}},
			{name: "Geometry", props: []interface{}{int64(300), "\x00\x01Geometry", "Mesh"}, children: []binNode{
				{name: "Vertices", props: []interface{}{[]float64{0, 0, 0, 1, 0, 0, 0, 1, 0}}},
				{name: "PolygonVertexIndex", props: []interface{}{compressed{0, 1, ^2}}},
			}},
		}},
		binNode{name: "Connections", children: []binNode{
			{name: "C", props: []interface{}{"OO", int64(200), int64(0)}},
			{name: "C", props: []interface{}{"OO", int64(300), int64(200)}},
		}},
	)

	doc, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	joint := doc.FindModel("Joint")
	if joint == nil {
		t.Fatal("model not found")
	}
	if tr := joint.GetTranslation(); tr.X != 1 || tr.Y != 2 || tr.Z != 3 {
		t.Error("translation: ", tr)
	}
	g := joint.GetGeometry()
	if g == nil || len(g.Vertices) != 3 {
		t.Fatal("geometry: ", g)
	}
	if len(g.Polygons) != 1 || g.Polygons[0][2] != 2 {
		t.Error("polygons: ", g.Polygons)
	}
	if math.Abs(float64(g.Vertices[2].Y)-1) > 1e-6 {
		t.Error("vertices: ", g.Vertices[2])
	}
}

func TestParseBinaryTruncated(t *testing.T) {
	buf := encodeBinary(binNode{name: "Objects", children: []binNode{{name: "Version", props: []interface{}{int32(1)}}}})
	b := buf.Bytes()
	if _, err := Parse(bytes.NewReader(b[:len(b)-20])); err == nil {
		t.Error("expected error")
	}
}
