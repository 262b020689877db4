package scene

// Vector3 is a three-component vector used for position, euler rotation and scale.
type Vector3 [3]float64

// Transform is the local placement of a node relative to its parent.
type Transform struct {
	Position Vector3
	Rotation Vector3 // euler angles in degrees
	Scale    Vector3
}

// IdentityTransform returns a transform with unit scale and no offset.
func IdentityTransform() Transform {
	return Transform{Scale: Vector3{1, 1, 1}}
}
