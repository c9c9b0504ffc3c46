package fbx

import (
	"sort"
)

// Time is FBX time in ticks.
type Time int64

const TimeSecond Time = 46186158000

func SecondsToTime(s float64) Time {
	return Time(s * float64(TimeSecond))
}

func (t Time) Seconds() float64 {
	return float64(t) / float64(TimeSecond)
}

type Interpolation int

const (
	InterpolationConstant Interpolation = 0x00000002
	InterpolationLinear   Interpolation = 0x00000004
	InterpolationCubic    Interpolation = 0x00000008
)

const (
	ChannelX = "d|X"
	ChannelY = "d|Y"
	ChannelZ = "d|Z"
)

type AnimStack struct {
	Obj
}

func NewAnimStack(name string) *AnimStack {
	return &AnimStack{Obj: *newObj("AnimationStack", name, "AnimStack", "")}
}

// SetTimeSpan sets both local and reference spans.
func (s *AnimStack) SetTimeSpan(start, stop Time) {
	s.SetTimeProperty("LocalStart", start)
	s.SetTimeProperty("LocalStop", stop)
	s.SetTimeProperty("ReferenceStart", start)
	s.SetTimeProperty("ReferenceStop", stop)
}

func (s *AnimStack) GetTimeSpan() (Time, Time) {
	return Time(s.GetProperty("LocalStart").ToInt64(0)), Time(s.GetProperty("LocalStop").ToInt64(0))
}

func (s *AnimStack) AddLayer(name string) *AnimLayer {
	layer := s.doc.AddObject(NewAnimLayer(name)).(*AnimLayer)
	s.doc.AddConnection(s, layer)
	return layer
}

func (s *AnimStack) GetLayers() []*AnimLayer {
	var r []*AnimLayer
	for _, o := range s.Refs {
		if l, ok := o.(*AnimLayer); ok {
			r = append(r, l)
		}
	}
	return r
}

type AnimLayer struct {
	Obj
}

func NewAnimLayer(name string) *AnimLayer {
	return &AnimLayer{Obj: *newObj("AnimationLayer", name, "AnimLayer", "")}
}

func (l *AnimLayer) GetCurveNodes() []*AnimCurveNode {
	var r []*AnimCurveNode
	for _, o := range l.Refs {
		if n, ok := o.(*AnimCurveNode); ok {
			r = append(r, n)
		}
	}
	return r
}

// CurveNode returns the curve node animating prop of m, creating it when missing.
func (l *AnimLayer) CurveNode(m *Model, prop string) *AnimCurveNode {
	for _, n := range l.GetCurveNodes() {
		if n.Target == m && n.TargetProperty == prop {
			return n
		}
	}
	name := map[string]string{"Lcl Translation": "T", "Lcl Rotation": "R", "Lcl Scaling": "S"}[prop]
	n := l.doc.AddObject(NewAnimCurveNode(name)).(*AnimCurveNode)
	def := m.GetProperty(prop).ToVector3(0, 0, 0)
	if prop == "Lcl Scaling" {
		def = m.GetScaling()
	}
	n.SetFloatProperty(ChannelX, float64(def.X))
	n.SetFloatProperty(ChannelY, float64(def.Y))
	n.SetFloatProperty(ChannelZ, float64(def.Z))
	l.doc.AddConnection(l, n)
	l.doc.AddPropertyConnection(m, n, prop)
	return n
}

type AnimCurveNode struct {
	Obj
	Target         *Model
	TargetProperty string
	curves         map[string]*AnimCurve
}

func NewAnimCurveNode(name string) *AnimCurveNode {
	return &AnimCurveNode{Obj: *newObj("AnimationCurveNode", name, "AnimCurveNode", ""), curves: map[string]*AnimCurve{}}
}

// Curve returns the curve of a channel (d|X, d|Y, d|Z). It is created when create is set.
func (n *AnimCurveNode) Curve(channel string, create bool) *AnimCurve {
	if c, ok := n.curves[channel]; ok || !create {
		return c
	}
	c := n.doc.AddObject(NewAnimCurve()).(*AnimCurve)
	c.Default = n.GetProperty(channel).ToFloat64(0)
	n.doc.AddPropertyConnection(n, c, channel)
	return c
}

func (n *AnimCurveNode) Curves() map[string]*AnimCurve {
	return n.curves
}

type Key struct {
	Time          Time
	Value         float32
	Interpolation Interpolation
}

type AnimCurve struct {
	Obj
	Default float64
	keys    []Key
	editing bool
	dirty   bool
}

func NewAnimCurve() *AnimCurve {
	return &AnimCurve{Obj: *newObj("AnimationCurve", "", "AnimCurve", ""), dirty: true}
}

func (c *AnimCurve) KeyModifyBegin() {
	c.editing = true
}

// KeyAdd inserts a key at t and returns its index. An existing key at t is reused.
func (c *AnimCurve) KeyAdd(t Time) int {
	if !c.editing {
		panic("fbx: KeyAdd outside KeyModifyBegin/KeyModifyEnd")
	}
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i].Time >= t })
	if i < len(c.keys) && c.keys[i].Time == t {
		return i
	}
	c.keys = append(c.keys, Key{})
	copy(c.keys[i+1:], c.keys[i:])
	c.keys[i] = Key{Time: t, Interpolation: InterpolationCubic}
	return i
}

func (c *AnimCurve) KeySetValue(i int, v float32) {
	if !c.editing {
		panic("fbx: KeySetValue outside KeyModifyBegin/KeyModifyEnd")
	}
	c.keys[i].Value = v
}

func (c *AnimCurve) KeySetInterpolation(i int, interp Interpolation) {
	if !c.editing {
		panic("fbx: KeySetInterpolation outside KeyModifyBegin/KeyModifyEnd")
	}
	c.keys[i].Interpolation = interp
}

func (c *AnimCurve) KeyModifyEnd() {
	c.editing = false
	c.dirty = true
}

func (c *AnimCurve) IsEditing() bool {
	return c.editing
}

func (c *AnimCurve) Keys() []Key {
	return c.keys
}

func (c *AnimCurve) GetNode() *Node {
	if c.dirty {
		c.dirty = false
		times := make([]int64, len(c.keys))
		values := make([]float32, len(c.keys))
		flags := make([]int32, len(c.keys))
		data := make([]float32, 0, len(c.keys)*4)
		refs := make([]int32, len(c.keys))
		for i, k := range c.keys {
			times[i] = int64(k.Time)
			values[i] = k.Value
			flags[i] = int32(k.Interpolation)
			// slopes, packed tangent weights, velocity
			data = append(data, 0, 0, 218434821, 0)
			refs[i] = 1
		}
		c.AddOrReplaceChild(NewNode("Default", c.Default))
		c.AddOrReplaceChild(NewNode("KeyVer", int32(4009)))
		c.AddOrReplaceChild(NewNode("KeyTime", times))
		c.AddOrReplaceChild(NewNode("KeyValueFloat", values))
		c.AddOrReplaceChild(NewNode("KeyAttrFlags", flags))
		c.AddOrReplaceChild(NewNode("KeyAttrDataFloat", data))
		c.AddOrReplaceChild(NewNode("KeyAttrRefCount", refs))
	}
	return c.Node
}

func (c *AnimCurve) parse() {
	c.Default = c.FindChild("Default").Attr(0).ToFloat64(0)
	times := c.FindChild("KeyTime").GetInt64Array()
	values := c.FindChild("KeyValueFloat").GetFloat32Array()
	flags := c.FindChild("KeyAttrFlags").GetInt32Array()
	refs := c.FindChild("KeyAttrRefCount").GetInt32Array()
	attr, remain := 0, int32(0)
	if len(refs) > 0 {
		remain = refs[0]
	}
	for i, t := range times {
		k := Key{Time: Time(t), Interpolation: InterpolationCubic}
		if i < len(values) {
			k.Value = values[i]
		}
		for remain <= 0 && attr+1 < len(refs) {
			attr++
			remain = refs[attr]
		}
		if attr < len(flags) {
			k.Interpolation = Interpolation(flags[attr] & 0x0e)
		}
		remain--
		c.keys = append(c.keys, k)
	}
}

func (d *Document) AnimStacks() []*AnimStack {
	var r []*AnimStack
	for _, o := range d.Objects {
		if s, ok := o.(*AnimStack); ok {
			r = append(r, s)
		}
	}
	return r
}

// NewAnimStack adds a stack. Use RemoveAnimStack first to replace one.
func (d *Document) NewAnimStack(name string) *AnimStack {
	return d.AddObject(NewAnimStack(name)).(*AnimStack)
}

// RemoveAnimStack removes stacks named name with their layers, curve nodes and curves.
func (d *Document) RemoveAnimStack(name string) bool {
	var objs []Object
	for _, s := range d.AnimStacks() {
		if s.Name() != name {
			continue
		}
		objs = append(objs, s)
		for _, l := range s.GetLayers() {
			objs = append(objs, l)
			for _, n := range l.GetCurveNodes() {
				objs = append(objs, n)
				for _, c := range n.curves {
					objs = append(objs, c)
				}
			}
		}
	}
	if len(objs) == 0 {
		return false
	}
	d.RemoveObjects(objs)
	return true
}
