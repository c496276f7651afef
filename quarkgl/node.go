package quarkgl

// Node is a transform in a parent chain.
//
// The local matrix is T * Ry * Rx * S. A nil Parent means world space.
type Node struct {
	Parent *Node

	Position  Vec3
	RotationX Scalar
	RotationY Scalar
	Scale     Scalar // uniform; zero is treated as 1
}

// NewNode returns a unit node attached to parent.
func NewNode(parent *Node) *Node {
	return &Node{Parent: parent, Scale: 1}
}

// Local returns the node transform relative to its parent.
func (n *Node) Local() Mat4 {
	if n == nil {
		return Mat4Identity()
	}
	s := n.Scale
	if s == 0 {
		s = 1
	}
	m := Mat4Translate(n.Position)
	if n.RotationY != 0 {
		m = Mat4Mul(m, Mat4RotateY(n.RotationY))
	}
	if n.RotationX != 0 {
		m = Mat4Mul(m, Mat4RotateX(n.RotationX))
	}
	if s != 1 {
		m = Mat4Mul(m, Mat4Scale(V3(s, s, s)))
	}
	return m
}

// World returns the node transform in world space.
func (n *Node) World() Mat4 {
	if n == nil {
		return Mat4Identity()
	}
	m := n.Local()
	for p := n.Parent; p != nil; p = p.Parent {
		m = Mat4Mul(p.Local(), m)
	}
	return m
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() Vec3 {
	return TransformPoint(n.World(), Vec3{})
}
