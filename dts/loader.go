package dts

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Parse reads a shape dump.
func Parse(r io.Reader) (*Shape, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read shape")
	}
	var shape Shape
	if err := yaml.Unmarshal(data, &shape); err != nil {
		return nil, errors.Wrap(err, "decode shape")
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &shape, nil
}

func Load(path string) (*Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	shape, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	if shape.Name == "" {
		shape.Name = path
	}
	return shape, nil
}

// Save writes a shape dump.
func Save(shape *Shape, path string) error {
	data, err := yaml.Marshal(shape)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0644)
}

// Validate checks index ranges and stream lengths.
func (s *Shape) Validate() error {
	for i, n := range s.Nodes {
		if n.Parent >= len(s.Nodes) || n.Parent < -1 {
			return errors.Errorf("node %d: parent %d out of range", i, n.Parent)
		}
		if n.Name >= len(s.Names) {
			return errors.Errorf("node %d: name %d out of range", i, n.Name)
		}
	}
	if err := s.checkForest(); err != nil {
		return err
	}
	if len(s.DefaultTranslations) != 0 && len(s.DefaultTranslations) != len(s.Nodes) {
		return errors.Errorf("defaultTranslations: %d entries for %d nodes", len(s.DefaultTranslations), len(s.Nodes))
	}
	if len(s.DefaultRotations) != 0 && len(s.DefaultRotations) != len(s.Nodes) {
		return errors.Errorf("defaultRotations: %d entries for %d nodes", len(s.DefaultRotations), len(s.Nodes))
	}
	for i, o := range s.Objects {
		if o.Node >= len(s.Nodes) {
			return errors.Errorf("object %d: node %d out of range", i, o.Node)
		}
		if o.FirstMesh < 0 || o.FirstMesh+o.NumMeshes > len(s.Meshes) {
			return errors.Errorf("object %d: meshes %d+%d out of range", i, o.FirstMesh, o.NumMeshes)
		}
	}
	for i, ss := range s.Subshapes {
		if ss.FirstObject < 0 || ss.FirstObject+ss.NumObjects > len(s.Objects) {
			return errors.Errorf("subshape %d: objects %d+%d out of range", i, ss.FirstObject, ss.NumObjects)
		}
	}
	for i, m := range s.Meshes {
		if err := s.validateMesh(m); err != nil {
			return errors.Wrapf(err, "mesh %d", i)
		}
	}
	for _, seq := range s.Sequences {
		if err := s.validateSequence(seq); err != nil {
			return errors.Wrapf(err, "sequence %q", seq.Name)
		}
	}
	return nil
}

func (s *Shape) checkForest() error {
	for i := range s.Nodes {
		p := s.Nodes[i].Parent
		for steps := 0; p >= 0; steps++ {
			if steps > len(s.Nodes) {
				return errors.Errorf("node %d: cyclic parent chain", i)
			}
			p = s.Nodes[p].Parent
		}
	}
	return nil
}

func (s *Shape) validateMesh(m *Mesh) error {
	if m == nil || m.VertsPerFrame == 0 {
		return nil
	}
	if len(m.Verts) < m.VertsPerFrame || len(m.TVerts) < m.VertsPerFrame {
		return errors.Errorf("%d verts / %d tverts for %d vertices", len(m.Verts), len(m.TVerts), m.VertsPerFrame)
	}
	if len(m.ENormals) == 0 && len(m.Normals) < m.VertsPerFrame {
		return errors.Errorf("%d normals for %d vertices", len(m.Normals), m.VertsPerFrame)
	}
	if len(m.ENormals) != 0 && len(m.ENormals) < m.VertsPerFrame {
		return errors.Errorf("%d encoded normals for %d vertices", len(m.ENormals), m.VertsPerFrame)
	}
	for i, p := range m.Primitives {
		if p.FirstElement < 0 || p.FirstElement+p.NumElements > len(m.Indices) {
			return errors.Errorf("primitive %d: elements %d+%d out of range", i, p.FirstElement, p.NumElements)
		}
		if p.MaterialIndex() >= len(s.Materials) {
			return errors.Errorf("primitive %d: material %d out of range", i, p.MaterialIndex())
		}
	}
	for _, idx := range m.Indices {
		if idx < 0 || idx >= m.VertsPerFrame {
			return errors.Errorf("index %d out of range", idx)
		}
	}
	if len(m.VIndex) != len(m.VBone) || len(m.VIndex) != len(m.VWeight) {
		return errors.Errorf("skin arrays differ in length: %d/%d/%d", len(m.VIndex), len(m.VBone), len(m.VWeight))
	}
	for _, n := range m.NodeIndex {
		if n < 0 || n >= len(s.Nodes) {
			return errors.Errorf("skin node %d out of range", n)
		}
	}
	for i, b := range m.VBone {
		if b < 0 || b >= len(m.NodeIndex) {
			return errors.Errorf("weight %d: bone %d out of range", i, b)
		}
		if v := m.VIndex[i]; v < 0 || v >= m.VertsPerFrame {
			return errors.Errorf("weight %d: vertex %d out of range", i, v)
		}
	}
	return nil
}

func (s *Shape) validateSequence(seq *Sequence) error {
	if len(seq.Matters.Translation) != len(s.Nodes) || len(seq.Matters.Rotation) != len(s.Nodes) {
		return errors.Errorf("matters: %d/%d flags for %d nodes", len(seq.Matters.Translation), len(seq.Matters.Rotation), len(s.Nodes))
	}
	if n := seq.CountTranslations(); len(seq.Translations) != n {
		return errors.Errorf("translation stream has %d entries, want %d", len(seq.Translations), n)
	}
	if n := seq.CountRotations(); len(seq.Rotations) != n {
		return errors.Errorf("rotation stream has %d entries, want %d", len(seq.Rotations), n)
	}
	return nil
}
