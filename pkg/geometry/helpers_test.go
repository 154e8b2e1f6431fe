package geometry

import (
	"testing"

	"github.com/df07/go-raycore/pkg/core"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// defaultInterval mirrors the t range used throughout these tests
var defaultInterval = core.NewInterval(0.001, 1000.0)

func assertVec(t *testing.T, what string, want, got core.Vec3) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", what, diff)
	}
}
