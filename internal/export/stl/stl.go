// Package stl writes binary STL files (spec §6.3): an 80-byte header, a
// uint32 triangle count, then 50 bytes per triangle (a float32 normal,
// three float32 vertices, and a uint16 attribute byte count, always 0
// here). STL carries no part/material information, and this package only
// serializes a single Manifold3D; geom.Model.WriteSTL unions every Part
// into one mesh before calling Write.
//
// Binary layout grounded on the format's own fixed-width spec; byte
// encoding follows the teacher's encoding/binary idiom in
// pkg/rng/rng.go (BigEndian.PutUint64 for deterministic hashing) adapted
// to STL's little-endian, float32 wire format.
package stl

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/kernel"
)

// Write serializes m as binary STL to w.
func Write(w io.Writer, m kernel.Manifold3D) error {
	vertices, faces, _ := m.Mesh()

	var header [80]byte
	copy(header[:], "geocad binary STL export")
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(faces)))
	if _, err := w.Write(countBuf[:]); err != nil {
		return err
	}

	var tri [50]byte
	for _, f := range faces {
		a, b, c := vertices[f[0]], vertices[f[1]], vertices[f[2]]
		n := triangleNormal(a, b, c)
		putVec3(tri[0:12], n)
		putVec3(tri[12:24], a)
		putVec3(tri[24:36], b)
		putVec3(tri[36:48], c)
		binary.LittleEndian.PutUint16(tri[48:50], 0)
		if _, err := w.Write(tri[:]); err != nil {
			return err
		}
	}
	return nil
}

func putVec3(b []byte, v dim.Vector3) {
	binary.LittleEndian.PutUint32(b[0:4], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:12], math.Float32bits(float32(v.Z)))
}

func triangleNormal(a, b, c dim.Vector3) dim.Vector3 {
	u := b.Sub(a)
	v := c.Sub(a)
	n := dim.Vector3{
		X: u.Y*v.Z - u.Z*v.Y,
		Y: u.Z*v.X - u.X*v.Z,
		Z: u.X*v.Y - u.Y*v.X,
	}
	l := n.Len()
	if l == 0 {
		return dim.Vector3{}
	}
	return n.Scale(1 / l)
}
