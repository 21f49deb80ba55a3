// Package geom is the public declarative surface of geocad: primitives
// (Rectangle, Circle, Polygon, Box, Sphere, Cylinder, Mesh), the
// combinators that build trees from them (Adding/Subtracting/Intersecting,
// Transformed/Translated/Scaled/Rotated, Hull, Offset, Extruded,
// Projected/Sliced), and the part/material/metadata/measurement operators
// (InPart, Material, WithMetadata, Measuring2D/Measuring3D, Separated).
//
// Every value here is a thin wrapper around an internal/build.Geometry
// lowering template; calling code builds a tree of Plane (2D) and Solid
// (3D) values, then hands the root to a Model (see model.go) to evaluate
// and export it. Grounded on the teacher's top-level pkg/dungeon package,
// which plays the same "public library surface over an internal pipeline"
// role for github.com/dshills/dungo.
package geom
