package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestProjectFormula(t *testing.T) {
	cam := Camera{Perspective: 60, Height: 55, Z: -70, HorizonRatio: 0.34}
	p := cam.Project(10, 5, 30, 200, 100)

	if !p.Visible {
		t.Fatal("point in front of the camera should be visible")
	}
	want := Projected{X: 106, Y: 64, Scale: 0.6, Visible: true}
	const eps = 1e-9
	if math.Abs(p.X-want.X) > eps || math.Abs(p.Y-want.Y) > eps || math.Abs(p.Scale-want.Scale) > eps {
		t.Errorf("Project = %+v, want %+v", p, want)
	}
}

func TestProjectVisibility(t *testing.T) {
	cam := NewCamera(config.DefaultRunnerConfig().Camera)
	tests := []struct {
		name    string
		z       float64
		visible bool
	}{
		{"far ahead", 500, true},
		{"at player", 0, true},
		{"just in front of camera", cam.Z + 1e-6, true},
		{"at camera plane", cam.Z, false},
		{"behind camera", cam.Z - 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := cam.Project(0, 0, tt.z, 120, 80)
			if p.Visible != tt.visible {
				t.Errorf("visible = %v, want %v", p.Visible, tt.visible)
			}
			if !p.Visible && p.Scale != 0 {
				t.Errorf("invisible point has scale %v, want 0", p.Scale)
			}
		})
	}
}

func TestProjectScaleMonotonic(t *testing.T) {
	for _, ref := range []float64{0, 80} {
		cam := NewCamera(config.DefaultRunnerConfig().Camera)
		cam.ReferenceHeight = ref

		prev := math.Inf(1)
		for z := cam.Z + 0.5; z < 2000; z += 7.25 {
			p := cam.Project(15, 10, z, 160, 96)
			if !(p.Scale < prev) {
				t.Fatalf("ref=%v: scale not strictly decreasing at z=%v (%v >= %v)", ref, z, p.Scale, prev)
			}
			prev = p.Scale
		}
	}
}

func TestProjectFocalFollowsSurface(t *testing.T) {
	cam := Camera{Perspective: 60, Height: 55, Z: -70, ReferenceHeight: 80}
	small := cam.Project(0, 0, 30, 100, 40)
	large := cam.Project(0, 0, 30, 100, 160)
	if math.Abs(large.Scale-4*small.Scale) > 1e-9 {
		t.Errorf("scale at 160 rows = %v, want 4x %v", large.Scale, small.Scale)
	}
}

func TestLaneToX(t *testing.T) {
	tests := []struct {
		lane float64
		want float64
	}{
		{-1, -40},
		{0, 0},
		{1, 40},
		{0.5, 20},
		{-0.25, -10},
	}
	for _, tt := range tests {
		if got := LaneToX(tt.lane, 80); got != tt.want {
			t.Errorf("LaneToX(%v, 80) = %v, want %v", tt.lane, got, tt.want)
		}
	}
}
