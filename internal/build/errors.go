package build

import (
	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/geomerr"
	"github.com/dshills/geocad/internal/ir"
)

func geomerrUnsupported2D(n ir.Node[dim.Dim2]) error {
	return geomerr.KernelInternalf(nil, "build: evaluate2D: unhandled node kind %s", n.Kind())
}

func geomerrUnsupported3D(n ir.Node[dim.Dim3]) error {
	return geomerr.KernelInternalf(nil, "build: evaluate3D: unhandled node kind %s", n.Kind())
}
