// Package gm (stands for geometry math) provides the geometry primitives
// shared by the polygon, narrow phase and shape packages.
//
// It includes a 2d vector type called Vec, a 2d matrix type Mat, an
// affine transform matrix named Affine and an axis aligned Rect.
//
// There is also a type named Rad to represent angle values in radian.
// All rotations are counter clockwise for positive angles in a y-up
// coordinate system.
package gm
