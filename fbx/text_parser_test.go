package fbx

import (
	"strings"
	"testing"
)

const textSnippet = `; FBX 7.4.0 project file
FBXHeaderExtension:  {
	Creator: "test"
}
Objects:  {
	Geometry: 300, "Geometry::", "Mesh" {
		Vertices: *6 {
			a: 0,0,1.5,-2e-1,1E+2,3
		}
		PolygonVertexIndex: *3 {
			a: 0,1,-3
		}
		KeyTime: *2 {
			a: 0,46186158000
		}
		Smoothness: 3
		Flag: T
	}
}
`

func TestTextParser(t *testing.T) {
	p := textParser{r: strings.NewReader(textSnippet)}
	root, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if root.FindChild("FBXHeaderExtension").FindChild("Creator").GetString() != "test" {
		t.Error("creator")
	}
	g := root.FindChild("Objects").FindChild("Geometry")
	if g == nil || g.Attr(0).ToInt64(0) != 300 || g.Attr(2).ToString() != "Mesh" {
		t.Fatal("geometry: ", g)
	}

	verts, ok := g.FindChild("Vertices").Attr(0).Value.([]float64)
	if !ok || len(verts) != 6 || verts[3] != -0.2 || verts[4] != 100 {
		t.Error("vertices: ", verts)
	}
	indices, ok := g.FindChild("PolygonVertexIndex").Attr(0).Value.([]int32)
	if !ok || len(indices) != 3 || indices[2] != -3 {
		t.Error("indices: ", indices)
	}
	times, ok := g.FindChild("KeyTime").Attr(0).Value.([]int64)
	if !ok || times[1] != int64(TimeSecond) {
		t.Error("times: ", times)
	}
	if g.FindChild("Smoothness").GetInt() != 3 {
		t.Error("smoothness")
	}
	if g.FindChild("Flag").GetString() != "T" {
		t.Error("flag")
	}
}

func TestTextParserArraySizeMismatch(t *testing.T) {
	p := textParser{r: strings.NewReader("Vertices: *4 {\n a: 0,1,2\n}\n")}
	if _, err := p.Parse(); err == nil {
		t.Error("expected error")
	}
}

func TestTextParserErrorLine(t *testing.T) {
	p := textParser{r: strings.NewReader("A: 1\nB: \"x\n")}
	_, err := p.Parse()
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Error("error: ", err)
	}

	p = textParser{r: strings.NewReader("Name: \"a&quot;b\"\n")}
	root, err := p.Parse()
	if err != nil || root.FindChild("Name").GetString() != "a\"b" {
		t.Error("quote: ", err)
	}
}
