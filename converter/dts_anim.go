package converter

import (
	"fmt"

	"github.com/binzume/dtsconv/dts"
	"github.com/binzume/dtsconv/fbx"
	"github.com/binzume/dtsconv/geom"
)

// animTarget binds a sequence node to a scene joint and to a node of the base shape.
type animTarget struct {
	joint *fbx.Model // nil: channels are dropped
	base  int        // default pose index in the base shape, -1 if none
}

type channelGroup struct {
	curves [3]*fbx.AnimCurve
	interp fbx.Interpolation
}

// openChannels starts a key edit on the X, Y, Z curves of prop.
func openChannels(layer *fbx.AnimLayer, m *fbx.Model, prop string, interp fbx.Interpolation) *channelGroup {
	node := layer.CurveNode(m, prop)
	g := &channelGroup{interp: interp}
	for i, ch := range []string{fbx.ChannelX, fbx.ChannelY, fbx.ChannelZ} {
		g.curves[i] = node.Curve(ch, true)
		g.curves[i].KeyModifyBegin()
	}
	return g
}

func (g *channelGroup) add(t fbx.Time, v *geom.Vector3) {
	if g == nil {
		return
	}
	for i, value := range [3]float32{v.X, v.Y, v.Z} {
		k := g.curves[i].KeyAdd(t)
		g.curves[i].KeySetValue(k, value)
		g.curves[i].KeySetInterpolation(k, g.interp)
	}
}

func (g *channelGroup) close() {
	if g == nil {
		return
	}
	for _, c := range g.curves {
		c.KeyModifyEnd()
	}
}

// bakeSequence writes one key per frame for every animated node of seq.
// targets is indexed by the node index of the shape seq belongs to.
func (c *dtsToFbx) bakeSequence(base *dts.Shape, seq *dts.Sequence, targets []animTarget) error {
	if len(seq.Matters.Translation) != len(targets) || len(seq.Matters.Rotation) != len(targets) {
		return fmt.Errorf("sequence %s: matters for %d/%d nodes, want %d",
			seq.Name, len(seq.Matters.Translation), len(seq.Matters.Rotation), len(targets))
	}
	if len(seq.Translations) < seq.CountTranslations() || len(seq.Rotations) < seq.CountRotations() {
		return fmt.Errorf("sequence %s: short stream %d/%d, want %d/%d", seq.Name,
			len(seq.Translations), len(seq.Rotations), seq.CountTranslations(), seq.CountRotations())
	}

	c.doc.RemoveAnimStack(seq.Name)
	stack := c.doc.NewAnimStack(seq.Name)
	stack.SetTimeSpan(0, fbx.SecondsToTime(float64(seq.Duration)))
	layer := stack.AddLayer("Base Layer")

	timePerFrame := seq.TimePerFrame()
	tcur, rcur := 0, 0
	for i, target := range targets {
		mt, mr := seq.Matters.Translation[i], seq.Matters.Rotation[i]
		if !mt && !mr {
			continue
		}
		root := target.joint != nil && target.joint.SkeletonType() == fbx.SkeletonRoot

		// the axis fix mixes both channels of a root
		var tg, rg *channelGroup
		if target.joint != nil {
			if mt || root {
				tg = openChannels(layer, target.joint, "Lcl Translation", fbx.InterpolationCubic)
			}
			if mr || root {
				rg = openChannels(layer, target.joint, "Lcl Rotation", fbx.InterpolationConstant)
			}
		}

		defT, defR := base.DefaultPose(target.base)
		for frame := 0; frame < seq.NumKeyframes; frame++ {
			t, r := defT, defR
			if mt {
				t = seq.Translations[tcur]
				tcur++
			}
			if mr {
				r = seq.Rotations[rcur]
				rcur++
			}
			if target.joint == nil {
				continue
			}
			pos, rot := toTargetPosition(&t, c.Scale, false), toTargetRotation(&r)
			if root {
				pos, rot = fixTransform(pos, rot)
			}
			time := fbx.SecondsToTime(float64(frame) * timePerFrame)
			tg.add(time, pos)
			rg.add(time, rot)
		}
		tg.close()
		rg.close()
	}
	return nil
}
