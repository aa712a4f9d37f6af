// Package vec3 provides the small float32 3D point type shared by the
// navigation graph, its spatial index and its file formats.
//
// Only the operations the graph needs are implemented: arithmetic,
// squared and plain Euclidean distance, and linear interpolation.
package vec3

import "math"

// Vector3 is a point or direction in world space.
type Vector3 struct {
	X, Y, Z float32
}

// New returns the vector (x, y, z).
func New(x, y, z float32) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vector3) Scale(s float32) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// SqrLength returns |v|².
func (v Vector3) SqrLength() float32 { return v.Dot(v) }

// Length returns |v|.
func (v Vector3) Length() float32 { return float32(math.Sqrt(float64(v.SqrLength()))) }

// SqrDistance returns |v - o|². The search uses it both as edge cost and
// as heuristic, so it must stay free of square roots.
func (v Vector3) SqrDistance(o Vector3) float32 { return v.Sub(o).SqrLength() }

// Distance returns the Euclidean distance between v and o.
func (v Vector3) Distance(o Vector3) float32 { return v.Sub(o).Length() }

// Lerp interpolates between v (t=0) and o (t=1).
func (v Vector3) Lerp(o Vector3, t float32) Vector3 {
	return v.Add(o.Sub(v).Scale(t))
}

// Array returns the components as [x, y, z].
func (v Vector3) Array() [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

// FromArray builds a vector from [x, y, z].
func FromArray(a [3]float32) Vector3 { return Vector3{a[0], a[1], a[2]} }
