package core

import (
	"math"
	"math/rand"
)

// Vec3 represents a 3D vector. It doubles as a point in space and as an
// RGB colour, matching how the rest of the package uses it.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat creates a Vec3 with the scalar broadcast across all components
func Splat(s float64) Vec3 {
	return Vec3{X: s, Y: s, Z: s}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds the scalar to every component
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubtractScalar subtracts the scalar from every component
func (v Vec3) SubtractScalar(s float64) Vec3 {
	return Vec3{v.X - s, v.Y - s, v.Z - s}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Divide returns the vector scaled by 1/scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return v.Multiply(1.0 / scalar)
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared L2 norm of the vector
func (v Vec3) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns the L2 norm of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction.
// Precondition: v must be nonzero. Normalizing the zero vector yields
// NaN components; callers are responsible for never passing one.
func (v Vec3) Normalize() Vec3 {
	return v.Divide(v.Length())
}

// Map applies f to each component
func (v Vec3) Map(f func(float64) float64) Vec3 {
	return Vec3{f(v.X), f(v.Y), f(v.Z)}
}

// EqualsScalar reports whether every component equals the scalar
func (v Vec3) EqualsScalar(s float64) bool {
	return v.X == s && v.Y == s && v.Z == s
}

// AtMost reports whether every component is <= the scalar
func (v Vec3) AtMost(s float64) bool {
	return v.AllLessEq(Splat(s))
}

// AtLeast reports whether every component is >= the scalar
func (v Vec3) AtLeast(s float64) bool {
	return v.AllGreaterEq(Splat(s))
}

// AllLessEq reports whether every component is <= the other's
func (v Vec3) AllLessEq(other Vec3) bool {
	return v.X <= other.X && v.Y <= other.Y && v.Z <= other.Z
}

// AllGreaterEq reports whether every component is >= the other's
func (v Vec3) AllGreaterEq(other Vec3) bool {
	return v.X >= other.X && v.Y >= other.Y && v.Z >= other.Z
}

// RandomInRange returns a vector with each component independently
// uniform in [low, high)
func RandomInRange(low, high float64, random *rand.Rand) Vec3 {
	span := high - low
	return Vec3{
		X: low + span*random.Float64(),
		Y: low + span*random.Float64(),
		Z: low + span*random.Float64(),
	}
}

// RandomUnitVector returns a vector of norm 1 built from uniformly
// sampled inclination and rotation angles
func RandomUnitVector(random *rand.Rand) Vec3 {
	inclination := 2 * math.Pi * random.Float64()
	rotation := 2 * math.Pi * random.Float64()
	hypotenuse := math.Cos(inclination)
	return Vec3{
		X: hypotenuse * math.Cos(rotation),
		Y: hypotenuse * math.Sin(rotation),
		Z: math.Sin(inclination),
	}
}
