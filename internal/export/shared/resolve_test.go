package shared

import (
	"context"
	"testing"

	"github.com/dshills/geocad/internal/dim"
	"github.com/dshills/geocad/internal/evalctx"
	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/kernel/refkernel"
	"github.com/dshills/geocad/internal/result"
)

func TestResolve3DSurfacesDiagnostics(t *testing.T) {
	refState := result.NewReferenceState[dim.Dim3]().WithUndefinedAnchor("top").WithUndefinedTag("brass")
	elems := result.Empty[dim.Dim3]().With(refState).With(result.NewHasOnlyFlag[dim.Dim3](true))

	k := refkernel.New()
	ec := evalctx.New(k, k)
	root := ir.Empty[dim.Dim3]()

	resolved, err := Resolve3D(context.Background(), ec, root, elems)
	if err != nil {
		t.Fatalf("Resolve3D: %v", err)
	}
	if len(resolved.UndefinedAnchors) != 1 || resolved.UndefinedAnchors[0] != "top" {
		t.Fatalf("expected undefined anchor 'top', got %v", resolved.UndefinedAnchors)
	}
	if len(resolved.UndefinedTags) != 1 || resolved.UndefinedTags[0] != "brass" {
		t.Fatalf("expected undefined tag 'brass', got %v", resolved.UndefinedTags)
	}
	if !resolved.OnlyModifierUsed {
		t.Fatalf("expected OnlyModifierUsed to be true")
	}
}

func TestResolve3DDiagnosticsEmptyWhenAbsent(t *testing.T) {
	k := refkernel.New()
	ec := evalctx.New(k, k)
	root := ir.Empty[dim.Dim3]()

	resolved, err := Resolve3D(context.Background(), ec, root, result.Empty[dim.Dim3]())
	if err != nil {
		t.Fatalf("Resolve3D: %v", err)
	}
	if len(resolved.UndefinedAnchors) != 0 || len(resolved.UndefinedTags) != 0 || resolved.OnlyModifierUsed {
		t.Fatalf("expected no diagnostics for an empty elements set, got %+v", resolved)
	}
}
