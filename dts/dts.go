package dts

import (
	"github.com/binzume/dtsconv/geom"
	"github.com/pkg/errors"
)

type Point = geom.Vector3
type Point2 = geom.Vector2
type Quat = geom.Quaternion

type MeshType int

const (
	MeshStandard MeshType = 0
	MeshSkin     MeshType = 1
	MeshDecal    MeshType = 2
	MeshSorted   MeshType = 3
	MeshNull     MeshType = 4
)

// Primitive type bits
const (
	PrimitiveTriangles    = 0x00000000
	PrimitiveStrip        = 0x40000000
	PrimitiveFan          = 0x80000000
	PrimitiveTypeMask     = 0xC0000000
	PrimitiveMaterialMask = 0x0000FFFF
)

type Winding int

const (
	WindingList  Winding = 0
	WindingStrip Winding = 1
	WindingFan   Winding = 2
)

var ErrBadWinding = errors.New("dts: bad primitive winding")

// Shape is a decoded DTS shape. Names, nodes and objects reference each other by index; -1 means none.
type Shape struct {
	Name      string      `yaml:"name"`
	Names     []string    `yaml:"names"`
	Nodes     []Node      `yaml:"nodes"`
	Objects   []Object    `yaml:"objects"`
	Subshapes []Subshape  `yaml:"subshapes"`
	Meshes    []*Mesh     `yaml:"meshes"`
	Materials []Material  `yaml:"materials"`
	Sequences []*Sequence `yaml:"sequences"`

	DefaultTranslations []Point `yaml:"defaultTranslations"`
	DefaultRotations    []Quat  `yaml:"defaultRotations"`
}

type Node struct {
	Name   int `yaml:"name"`
	Parent int `yaml:"parent"`
}

type Object struct {
	Name      int `yaml:"name"`
	Node      int `yaml:"node"`
	FirstMesh int `yaml:"firstMesh"`
	NumMeshes int `yaml:"numMeshes"`
}

type Subshape struct {
	FirstNode   int `yaml:"firstNode"`
	NumNodes    int `yaml:"numNodes"`
	FirstObject int `yaml:"firstObject"`
	NumObjects  int `yaml:"numObjects"`
}

type Material struct {
	Name  string `yaml:"name"`
	Flags uint32 `yaml:"flags"`
}

type Primitive struct {
	FirstElement int    `yaml:"firstElement"`
	NumElements  int    `yaml:"numElements"`
	Type         uint32 `yaml:"type"`
}

func (p *Primitive) MaterialIndex() int {
	return int(p.Type & PrimitiveMaterialMask)
}

func (p *Primitive) Winding() Winding {
	return Winding(p.Type >> 30)
}

type Mesh struct {
	Type          MeshType    `yaml:"type"`
	VertsPerFrame int         `yaml:"vertsPerFrame"`
	Verts         []Point     `yaml:"verts"`
	TVerts        []Point2    `yaml:"tverts"`
	Normals       []Point     `yaml:"normals"`
	ENormals      []uint8     `yaml:"enormals"`
	Indices       []int       `yaml:"indices"`
	Primitives    []Primitive `yaml:"primitives"`

	// skin
	NodeIndex []int     `yaml:"nodeIndex"`
	VIndex    []int     `yaml:"vindex"`
	VBone     []int     `yaml:"vbone"`
	VWeight   []float32 `yaml:"vweight"`
}

func (m *Mesh) IsSkin() bool {
	return m.Type == MeshSkin
}

// Normal returns the normal of vertex i, decoding the encoded form when present.
func (m *Mesh) Normal(i int) Point {
	if len(m.ENormals) > 0 {
		return NormalTable[m.ENormals[i]]
	}
	return m.Normals[i]
}

type Matters struct {
	Translation []bool `yaml:"translation"`
	Rotation    []bool `yaml:"rotation"`
}

// Sequence holds keyframes of animated channels in node-major, frame-minor order.
type Sequence struct {
	Name         string  `yaml:"name"`
	Duration     float32 `yaml:"duration"`
	NumKeyframes int     `yaml:"numKeyframes"`
	Matters      Matters `yaml:"matters"`

	Translations []Point `yaml:"translations"`
	Rotations    []Quat  `yaml:"rotations"`
}

// TimePerFrame returns the duration of a frame in seconds.
func (s *Sequence) TimePerFrame() float64 {
	if s.NumKeyframes == 0 {
		return 0
	}
	return float64(s.Duration) / float64(s.NumKeyframes)
}

func (s *Sequence) CountTranslations() int {
	return countTrue(s.Matters.Translation) * s.NumKeyframes
}

func (s *Sequence) CountRotations() int {
	return countTrue(s.Matters.Rotation) * s.NumKeyframes
}

func countTrue(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func (s *Shape) GetName(i int) string {
	if i < 0 || i >= len(s.Names) {
		return ""
	}
	return s.Names[i]
}

func (s *Shape) NodeName(i int) string {
	return s.GetName(s.Nodes[i].Name)
}

func (s *Shape) ObjectName(o *Object) string {
	return s.GetName(o.Name)
}

// NodeNameIndex maps node names to the first node with that name.
func (s *Shape) NodeNameIndex() map[string]int {
	m := make(map[string]int, len(s.Nodes))
	for i := range s.Nodes {
		name := s.NodeName(i)
		if _, ok := m[name]; !ok {
			m[name] = i
		}
	}
	return m
}

func (s *Shape) IsRoot(i int) bool {
	return s.Nodes[i].Parent < 0
}

// DefaultPose returns the default translation and rotation of node i.
func (s *Shape) DefaultPose(i int) (Point, Quat) {
	t := Point{}
	r := Quat{W: 1}
	if i >= 0 && i < len(s.DefaultTranslations) {
		t = s.DefaultTranslations[i]
	}
	if i >= 0 && i < len(s.DefaultRotations) {
		r = s.DefaultRotations[i]
	}
	return t, r
}
