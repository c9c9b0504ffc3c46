package converter

import (
	"github.com/binzume/dtsconv/dts"
	"github.com/binzume/dtsconv/fbx"
	"github.com/binzume/dtsconv/geom"
)

// bindSkin adds one cluster per mesh.NodeIndex entry. Weights are copied as is.
func (c *dtsToFbx) bindSkin(mesh *dts.Mesh, g *fbx.Geometry, bind *geom.Matrix4) {
	skin := c.doc.AddObject(fbx.NewSkin("")).(*fbx.Skin)
	clusters := make([]*fbx.Cluster, len(mesh.NodeIndex))
	for i, n := range mesh.NodeIndex {
		joint := c.joints[n]
		cluster := c.doc.AddObject(fbx.NewCluster(joint.Name())).(*fbx.Cluster)
		cluster.SetLink(joint)
		cluster.SetLinkMode(fbx.LinkTotalOne)
		cluster.SetTransformMatrix(bind)
		cluster.SetTransformLinkMatrix(joint.GetWorldMatrix())
		skin.AddCluster(cluster)
		clusters[i] = cluster
	}
	for i, v := range mesh.VIndex {
		clusters[mesh.VBone[i]].AddControlPointIndex(v, float64(mesh.VWeight[i]))
	}
	g.AddDeformer(skin)
}
