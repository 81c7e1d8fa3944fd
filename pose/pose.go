// Package pose provides rigid transforms between named coordinate frames:
// a translation paired with a unit-quaternion orientation, convertible to
// and from the 4x4 homogeneous matrix form used for composition.
package pose

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Pose is a rigid transform. It maps points expressed in the child frame
// into the parent frame: p_parent = R*p_child + T.
type Pose struct {
	// Translation is the position of the child frame origin in the parent frame.
	Translation r3.Vec
	// Rotation is the unit quaternion orienting the child frame in the parent frame.
	Rotation quat.Number
}

// Identity returns the identity transform.
func Identity() Pose {
	return Pose{Rotation: quat.Number{Real: 1}}
}

// New builds a pose from a translation and roll/pitch/yaw angles in
// radians. The rotation is Rz(yaw)*Ry(pitch)*Rx(roll), the fixed-axis
// convention used by the SDF pose element.
func New(x, y, z, roll, pitch, yaw float64) Pose {
	return Pose{
		Translation: r3.Vec{X: x, Y: y, Z: z},
		Rotation:    fromEuler(roll, pitch, yaw),
	}
}

// Translate builds a pure translation pose.
func Translate(x, y, z float64) Pose {
	return Pose{Translation: r3.Vec{X: x, Y: y, Z: z}, Rotation: quat.Number{Real: 1}}
}

func fromEuler(roll, pitch, yaw float64) quat.Number {
	cr, sr := math.Cos(roll/2), math.Sin(roll/2)
	cp, sp := math.Cos(pitch/2), math.Sin(pitch/2)
	cy, sy := math.Cos(yaw/2), math.Sin(yaw/2)
	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

// Euler returns the roll, pitch and yaw angles of the pose orientation in
// radians, using the same Rz*Ry*Rx convention as New.
func (p Pose) Euler() (roll, pitch, yaw float64) {
	q := p.Rotation
	roll = math.Atan2(2*(q.Real*q.Imag+q.Jmag*q.Kmag), 1-2*(q.Imag*q.Imag+q.Jmag*q.Jmag))
	s := 2 * (q.Real*q.Jmag - q.Kmag*q.Imag)
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	pitch = math.Asin(s)
	yaw = math.Atan2(2*(q.Real*q.Kmag+q.Imag*q.Jmag), 1-2*(q.Jmag*q.Jmag+q.Kmag*q.Kmag))
	return roll, pitch, yaw
}

// Matrix returns the 4x4 homogeneous matrix form of the pose.
func (p Pose) Matrix() *mat.Dense {
	q := p.Rotation
	xx, yy, zz := q.Imag*q.Imag, q.Jmag*q.Jmag, q.Kmag*q.Kmag
	xy, xz, yz := q.Imag*q.Jmag, q.Imag*q.Kmag, q.Jmag*q.Kmag
	wx, wy, wz := q.Real*q.Imag, q.Real*q.Jmag, q.Real*q.Kmag
	return mat.NewDense(4, 4, []float64{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy), p.Translation.X,
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx), p.Translation.Y,
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy), p.Translation.Z,
		0, 0, 0, 1,
	})
}

// FromMatrix converts a 4x4 homogeneous matrix back to a pose. The upper
// 3x3 block must be a rotation matrix.
func FromMatrix(m *mat.Dense) Pose {
	var q quat.Number
	tr := m.At(0, 0) + m.At(1, 1) + m.At(2, 2)
	switch {
	case tr > 0:
		s := math.Sqrt(tr+1) * 2
		q = quat.Number{
			Real: s / 4,
			Imag: (m.At(2, 1) - m.At(1, 2)) / s,
			Jmag: (m.At(0, 2) - m.At(2, 0)) / s,
			Kmag: (m.At(1, 0) - m.At(0, 1)) / s,
		}
	case m.At(0, 0) > m.At(1, 1) && m.At(0, 0) > m.At(2, 2):
		s := math.Sqrt(1+m.At(0, 0)-m.At(1, 1)-m.At(2, 2)) * 2
		q = quat.Number{
			Real: (m.At(2, 1) - m.At(1, 2)) / s,
			Imag: s / 4,
			Jmag: (m.At(0, 1) + m.At(1, 0)) / s,
			Kmag: (m.At(0, 2) + m.At(2, 0)) / s,
		}
	case m.At(1, 1) > m.At(2, 2):
		s := math.Sqrt(1+m.At(1, 1)-m.At(0, 0)-m.At(2, 2)) * 2
		q = quat.Number{
			Real: (m.At(0, 2) - m.At(2, 0)) / s,
			Imag: (m.At(0, 1) + m.At(1, 0)) / s,
			Jmag: s / 4,
			Kmag: (m.At(1, 2) + m.At(2, 1)) / s,
		}
	default:
		s := math.Sqrt(1+m.At(2, 2)-m.At(0, 0)-m.At(1, 1)) * 2
		q = quat.Number{
			Real: (m.At(1, 0) - m.At(0, 1)) / s,
			Imag: (m.At(0, 2) + m.At(2, 0)) / s,
			Jmag: (m.At(1, 2) + m.At(2, 1)) / s,
			Kmag: s / 4,
		}
	}
	return Pose{
		Translation: r3.Vec{X: m.At(0, 3), Y: m.At(1, 3), Z: m.At(2, 3)},
		Rotation:    q,
	}
}

// RigidInverse inverts a homogeneous rigid transform without a general
// matrix inversion: the rotation block is transposed and the translation
// negated through it.
func RigidInverse(m *mat.Dense) *mat.Dense {
	r00, r01, r02 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	r10, r11, r12 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	r20, r21, r22 := m.At(2, 0), m.At(2, 1), m.At(2, 2)
	tx, ty, tz := m.At(0, 3), m.At(1, 3), m.At(2, 3)
	return mat.NewDense(4, 4, []float64{
		r00, r10, r20, -(r00*tx + r10*ty + r20*tz),
		r01, r11, r21, -(r01*tx + r11*ty + r21*tz),
		r02, r12, r22, -(r02*tx + r12*ty + r22*tz),
		0, 0, 0, 1,
	})
}

// Mul composes two poses: the result maps child-of-b coordinates through
// b then through a.
func Mul(a, b Pose) Pose {
	var m mat.Dense
	m.Mul(a.Matrix(), b.Matrix())
	return FromMatrix(&m)
}

// Inverse returns the inverse transform.
func (p Pose) Inverse() Pose {
	return FromMatrix(RigidInverse(p.Matrix()))
}

// ApproxEqual reports whether two poses are equal within tol, comparing
// translations componentwise and orientations up to quaternion sign.
func ApproxEqual(a, b Pose, tol float64) bool {
	if math.Abs(a.Translation.X-b.Translation.X) > tol ||
		math.Abs(a.Translation.Y-b.Translation.Y) > tol ||
		math.Abs(a.Translation.Z-b.Translation.Z) > tol {
		return false
	}
	qa, qb := a.Rotation, b.Rotation
	dot := qa.Real*qb.Real + qa.Imag*qb.Imag + qa.Jmag*qb.Jmag + qa.Kmag*qb.Kmag
	return math.Abs(math.Abs(dot)-1) <= tol
}
