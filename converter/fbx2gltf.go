package converter

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/binzume/dtsconv/fbx"
	"github.com/binzume/dtsconv/geom"
	"github.com/binzume/dtsconv/texture"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

type FBXToGLTFOption struct {
	Scale                  float32 // Default: 0.01
	TextureDir             string  // base of relative texture paths
	EmbedTextures          bool
	TextureResolutionLimit int // 0: unlimited
}

type fbxToGltf struct {
	*FBXToGLTFOption
	*gltf.Document
	nodes     map[*fbx.Model]uint32
	models    []*fbx.Model // by node index
	materials map[*fbx.Material]uint32
	textures  map[string]*uint32
}

func NewFBXToGLTFConverter(options *FBXToGLTFOption) *fbxToGltf {
	if options == nil {
		options = &FBXToGLTFOption{}
	}
	if options.Scale == 0 {
		options.Scale = 0.01
	}
	return &fbxToGltf{
		FBXToGLTFOption: options,
		Document:        gltf.NewDocument(),
		nodes:           map[*fbx.Model]uint32{},
		materials:       map[*fbx.Material]uint32{},
		textures:        map[string]*uint32{},
	}
}

func (c *fbxToGltf) Convert(src *fbx.Document) (*gltf.Document, error) {
	for _, mat := range src.Materials {
		c.materials[mat] = uint32(len(c.Materials))
		c.Materials = append(c.Materials, c.convertMaterial(mat))
	}
	if len(c.Textures) > 0 {
		c.Samplers = []*gltf.Sampler{{}}
	}

	for _, m := range src.Scene.GetChildModels() {
		c.Scenes[0].Nodes = append(c.Scenes[0].Nodes, c.addNode(m))
	}
	for n, m := range c.models {
		if g := m.GetGeometry(); g != nil {
			c.convertGeometry(m, g, c.Nodes[n])
		}
	}
	for _, stack := range src.AnimStacks() {
		if a := c.convertAnimation(stack); len(a.Channels) > 0 {
			c.Animations = append(c.Animations, a)
		}
	}
	return c.Document, nil
}

func (c *fbxToGltf) addNode(m *fbx.Model) uint32 {
	t := m.GetTranslation().Scale(c.Scale)
	r := geom.NewQuaternionFromMatrix4(rotationMatrix(m.GetRotation()))
	s := m.GetScaling()
	index := uint32(len(c.Nodes))
	node := &gltf.Node{
		Name:        m.Name(),
		Translation: [3]float32{t.X, t.Y, t.Z},
		Rotation:    [4]float32{r.X, r.Y, r.Z, r.W},
		Scale:       [3]float32{s.X, s.Y, s.Z},
	}
	c.Nodes = append(c.Nodes, node)
	c.models = append(c.models, m)
	c.nodes[m] = index
	for _, child := range m.GetChildModels() {
		node.Children = append(node.Children, c.addNode(child))
	}
	return index
}

func (c *fbxToGltf) convertMaterial(mat *fbx.Material) *gltf.Material {
	color := mat.GetColor("DiffuseColor", &geom.Vector3{X: 0.8, Y: 0.8, Z: 0.8})
	var metallic float32 = 0
	var roughness float32 = 0.8
	mm := &gltf.Material{
		Name: mat.Name(),
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{color.X, color.Y, color.Z, 1},
			MetallicFactor:  &metallic,
			RoughnessFactor: &roughness,
		},
	}
	if tex := mat.GetTexture("DiffuseColor"); tex != nil && tex.GetFileName() != "" {
		if index, err := c.addTexture(tex.GetFileName()); err == nil {
			mm.PBRMetallicRoughness.BaseColorTexture = &gltf.TextureInfo{Index: *index}
		} else {
			log.Print("Texture read error:", err)
		}
	}
	return mm
}

func (c *fbxToGltf) texturePath(name string) string {
	path := filepath.FromSlash(name)
	if !filepath.IsAbs(path) && c.TextureDir != "" {
		path = filepath.Join(c.TextureDir, path)
	}
	return path
}

func (c *fbxToGltf) addTexture(name string) (*uint32, error) {
	if index, ok := c.textures[name]; ok {
		return index, nil
	}
	path := c.texturePath(name)
	mimeType, native := texture.MimeType(path)

	var img uint32
	if !native || c.TextureResolutionLimit > 0 {
		src, err := texture.Decode(path)
		if err != nil {
			return nil, err
		}
		data, err := texture.EncodePNG(src, c.TextureResolutionLimit)
		if err != nil {
			return nil, err
		}
		img, err = c.writeImage(name, "image/png", bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
	} else if c.EmbedTextures {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, err = c.writeImage(name, mimeType, f)
		if err != nil {
			return nil, err
		}
	} else {
		img = uint32(len(c.Images))
		c.Images = append(c.Images, &gltf.Image{Name: filepath.Base(path), URI: filepath.ToSlash(name), MimeType: mimeType})
	}

	c.Textures = append(c.Textures, &gltf.Texture{Sampler: gltf.Index(0), Source: gltf.Index(img)})
	index := gltf.Index(uint32(len(c.Textures)) - 1)
	c.textures[name] = index
	return index, nil
}

func (c *fbxToGltf) writeImage(name, mimeType string, r io.Reader) (uint32, error) {
	img, err := modeler.WriteImage(c.Document, filepath.Base(name), mimeType, r)
	if err != nil {
		return 0, err
	}
	c.Buffers[0].ByteLength = uint32(len(c.Buffers[0].Data)) // avoid AddImage bug
	return img, nil
}

func (c *fbxToGltf) addMatrices(mat []*geom.Matrix4) uint32 {
	a := make([][4]float32, len(mat)*4)
	for i, m := range mat {
		copy(a[i*4+0][:], m[0:4])
		copy(a[i*4+1][:], m[4:8])
		copy(a[i*4+2][:], m[8:12])
		copy(a[i*4+3][:], m[12:16])
	}
	acc := modeler.WriteTangent(c.Document, a)
	c.Accessors[acc].Type = gltf.AccessorMat4
	c.Accessors[acc].Count /= 4
	c.BufferViews[*c.Accessors[acc].BufferView].ByteStride *= 4
	return acc
}

type influence struct {
	joint  uint16
	weight float32
}

// skinWeights keeps the 4 strongest influences per vertex, normalized.
func skinWeights(clusters []*fbx.Cluster, vertices int) ([][4]uint16, [][4]float32) {
	influences := make([][]influence, vertices)
	for ci, cl := range clusters {
		for i, v := range cl.Indexes {
			if int(v) < vertices && i < len(cl.Weights) && cl.Weights[i] > 0 {
				influences[v] = append(influences[v], influence{uint16(ci), float32(cl.Weights[i])})
			}
		}
	}
	joints := make([][4]uint16, vertices)
	weights := make([][4]float32, vertices)
	for v, inf := range influences {
		sort.SliceStable(inf, func(i, j int) bool { return inf[i].weight > inf[j].weight })
		if len(inf) > 4 {
			inf = inf[:4]
		}
		var sum float32
		for _, w := range inf {
			sum += w.weight
		}
		for i, w := range inf {
			joints[v][i] = w.joint
			weights[v][i] = w.weight / sum
		}
	}
	return joints, weights
}

func (c *fbxToGltf) convertGeometry(m *fbx.Model, g *fbx.Geometry, node *gltf.Node) {
	scale := c.Scale
	vertexes := make([][3]float32, len(g.Vertices))
	for i, v := range g.Vertices {
		vertexes[i] = [3]float32{v.X * scale, v.Y * scale, v.Z * scale}
	}
	attributes := map[string]uint32{
		"POSITION": modeler.WritePosition(c.Document, vertexes),
	}
	if len(g.Normals) == len(g.Vertices) {
		normals := make([][3]float32, len(g.Normals))
		for i, n := range g.Normals {
			normals[i] = [3]float32{n.X, n.Y, n.Z}
		}
		attributes["NORMAL"] = modeler.WriteNormal(c.Document, normals)
	}
	if len(g.UVs) == len(g.Vertices) {
		uvs := make([][2]float32, len(g.UVs))
		for i, uv := range g.UVs {
			uvs[i] = [2]float32{uv.X, 1 - uv.Y}
		}
		attributes["TEXCOORD_0"] = modeler.WriteTextureCoord(c.Document, uvs)
	}

	if skins := g.GetSkins(); len(skins) > 0 {
		clusters := skins[0].GetClusters()
		joints := make([]uint32, len(clusters))
		invmats := make([]*geom.Matrix4, len(clusters))
		s := geom.NewScaleMatrix4(scale, scale, scale)
		sinv := geom.NewScaleMatrix4(1/scale, 1/scale, 1/scale)
		for i, cl := range clusters {
			joints[i] = c.nodes[cl.Link]
			invmats[i] = s.Mul(cl.TransformLink.Inverse()).Mul(cl.Transform).Mul(sinv)
		}
		joints0, weights0 := skinWeights(clusters, len(g.Vertices))
		attributes["JOINTS_0"] = modeler.WriteJoints(c.Document, joints0)
		attributes["WEIGHTS_0"] = modeler.WriteWeights(c.Document, weights0)
		c.Skins = append(c.Skins, &gltf.Skin{
			Name:                m.Name(),
			Joints:              joints,
			InverseBindMatrices: gltf.Index(c.addMatrices(invmats)),
		})
		node.Skin = gltf.Index(uint32(len(c.Skins) - 1))
	}

	indices := map[int][]uint32{}
	var slots []int
	for i, f := range g.Polygons {
		slot := 0
		if i < len(g.PolygonMaterials) {
			slot = g.PolygonMaterials[i]
		}
		if _, ok := indices[slot]; !ok {
			slots = append(slots, slot)
		}
		for j := 1; j+1 < len(f); j++ {
			indices[slot] = append(indices[slot], uint32(f[0]), uint32(f[j]), uint32(f[j+1]))
		}
	}
	materials := m.GetMaterials()
	var primitives []*gltf.Primitive
	for _, slot := range slots {
		if len(indices[slot]) == 0 {
			continue
		}
		p := &gltf.Primitive{
			Indices:    gltf.Index(modeler.WriteIndices(c.Document, indices[slot])),
			Attributes: attributes,
		}
		if slot < len(materials) {
			p.Material = gltf.Index(c.materials[materials[slot]])
		}
		primitives = append(primitives, p)
	}
	if len(primitives) > 0 {
		node.Mesh = gltf.Index(uint32(len(c.Meshes)))
		c.Meshes = append(c.Meshes, &gltf.Mesh{Name: g.Name(), Primitives: primitives})
	}
}

// valueAt returns the value of the last key at or before t.
func valueAt(c *fbx.AnimCurve, t fbx.Time, def float32) float32 {
	if c == nil {
		return def
	}
	v := def
	for _, k := range c.Keys() {
		if k.Time > t {
			break
		}
		v = k.Value
	}
	return v
}

func keyTimes(curves []*fbx.AnimCurve) []fbx.Time {
	set := map[fbx.Time]bool{}
	var times []fbx.Time
	for _, c := range curves {
		if c == nil {
			continue
		}
		for _, k := range c.Keys() {
			if !set[k.Time] {
				set[k.Time] = true
				times = append(times, k.Time)
			}
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	return times
}

func (c *fbxToGltf) convertAnimation(stack *fbx.AnimStack) *gltf.Animation {
	a := &gltf.Animation{Name: stack.Name()}
	for _, layer := range stack.GetLayers() {
		for _, cn := range layer.GetCurveNodes() {
			n, ok := c.nodes[cn.Target]
			if !ok {
				continue
			}
			curves := []*fbx.AnimCurve{cn.Curve(fbx.ChannelX, false), cn.Curve(fbx.ChannelY, false), cn.Curve(fbx.ChannelZ, false)}
			times := keyTimes(curves)
			if len(times) == 0 {
				continue
			}
			def := cn.GetProperty(fbx.ChannelX).ToVector3(0, 0, 0)
			def.Y = cn.GetProperty(fbx.ChannelY).ToFloat32(0)
			def.Z = cn.GetProperty(fbx.ChannelZ).ToFloat32(0)

			keys := make([]float32, len(times))
			for i, t := range times {
				keys[i] = float32(t.Seconds())
			}
			keysAcc := modeler.WriteAccessor(c.Document, gltf.TargetArrayBuffer, keys)
			c.Accessors[keysAcc].Min = []float32{keys[0]}
			c.Accessors[keysAcc].Max = []float32{keys[len(keys)-1]}

			var samplesAcc uint32
			var path gltf.TRSProperty
			var interp gltf.Interpolation
			switch cn.TargetProperty {
			case "Lcl Translation":
				translations := make([][3]float32, len(times))
				for i, t := range times {
					translations[i] = [3]float32{
						valueAt(curves[0], t, def.X) * c.Scale,
						valueAt(curves[1], t, def.Y) * c.Scale,
						valueAt(curves[2], t, def.Z) * c.Scale,
					}
				}
				samplesAcc = modeler.WritePosition(c.Document, translations)
				path, interp = gltf.TRSTranslation, gltf.InterpolationLinear
			case "Lcl Rotation":
				rotations := make([][4]float32, len(times))
				for i, t := range times {
					r := geom.NewQuaternionFromMatrix4(rotationMatrix(&geom.Vector3{
						X: valueAt(curves[0], t, def.X),
						Y: valueAt(curves[1], t, def.Y),
						Z: valueAt(curves[2], t, def.Z),
					}))
					rotations[i] = [4]float32{r.X, r.Y, r.Z, r.W}
				}
				samplesAcc = modeler.WriteTangent(c.Document, rotations)
				path, interp = gltf.TRSRotation, gltf.InterpolationStep
			default:
				continue
			}
			a.Samplers = append(a.Samplers, &gltf.AnimationSampler{
				Input:         gltf.Index(keysAcc),
				Output:        gltf.Index(samplesAcc),
				Interpolation: interp,
			})
			a.Channels = append(a.Channels, &gltf.Channel{
				Sampler: gltf.Index(uint32(len(a.Samplers) - 1)),
				Target: gltf.ChannelTarget{
					Node: gltf.Index(n),
					Path: path,
				},
			})
		}
	}
	return a
}
