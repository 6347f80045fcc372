package scene

import (
	"math"
	"testing"

	"github.com/hubastard/canopy/engine/core"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func TestPixelCameraMapsCorners(t *testing.T) {
	cam := NewPixelCamera(200, 100)
	tests := []struct {
		name       string
		x, y       float32
		ndcX, ndcY float32
	}{
		{"top left", 0, 0, -1, 1},
		{"bottom right", 200, 100, 1, -1},
		{"center", 100, 50, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := cam.Project(tt.x, tt.y)
			if !near(x, tt.ndcX) || !near(y, tt.ndcY) {
				t.Fatalf("Project(%v,%v) = %v,%v want %v,%v", tt.x, tt.y, x, y, tt.ndcX, tt.ndcY)
			}
		})
	}

	cam.SetViewportPixels(400, 100)
	if x, _ := cam.Project(400, 0); !near(x, 1) {
		t.Fatalf("after resize right edge maps to %v", x)
	}
}

func TestCenteredCameraFollowsPosition(t *testing.T) {
	cam := NewOrtho2D(100, 100)
	if x, y := cam.Project(0, 0); !near(x, 0) || !near(y, 0) {
		t.Fatalf("origin = %v,%v", x, y)
	}
	cam.Move(50, 0)
	if x, _ := cam.Project(50, 0); !near(x, 0) {
		t.Fatalf("camera position not centered, got %v", x)
	}
	cam.SetZoom(2)
	if x, _ := cam.Project(75, 0); !near(x, 1) {
		t.Fatalf("zoomed edge = %v", x)
	}
}

func TestControllerMovesWithKeys(t *testing.T) {
	cam := NewOrtho2D(100, 100)
	cc := NewOrthoController2D(cam)
	cc.MoveSpeed = 10
	in := core.NewInput()
	in.Handle(core.EventKey{Key: core.KeyD, Down: true})
	in.Handle(core.EventKey{Key: core.KeyW, Down: true})

	cc.Update(in, 0.5)
	if cam.X != 5 || cam.Y != 5 {
		t.Fatalf("camera at %v,%v", cam.X, cam.Y)
	}
}

func TestUnprojectInvertsProject(t *testing.T) {
	cam := NewOrtho2D(200, 100)
	cam.Move(30, -10)
	cam.SetZoom(2)
	cam.Rotate(0.3)

	tests := []struct{ x, y float32 }{{0, 0}, {12, -7}, {30, -10}, {-40, 20}}
	for _, tt := range tests {
		nx, ny := cam.Project(tt.x, tt.y)
		px := float64(nx+1) / 2 * 200
		py := float64(1-ny) / 2 * 100
		wx, wy := cam.Unproject(px, py, 200, 100)
		if math.Abs(float64(wx-tt.x)) > 1e-3 || math.Abs(float64(wy-tt.y)) > 1e-3 {
			t.Errorf("round trip of %v,%v = %v,%v", tt.x, tt.y, wx, wy)
		}
	}
}

func TestPixelCameraUnprojectIsIdentity(t *testing.T) {
	cam := NewPixelCamera(320, 240)
	x, y := cam.Unproject(100, 60, 320, 240)
	if !near(x, 100) || !near(y, 60) {
		t.Fatalf("Unproject = %v,%v", x, y)
	}
}

func TestControllerZoomsOnScroll(t *testing.T) {
	cam := NewOrtho2D(100, 100)
	cc := NewOrthoController2D(cam)
	cc.ZoomStep = 2

	if !cc.HandleEvent(core.EventScroll{Yoff: 1}) || cam.Zoom != 2 {
		t.Fatalf("zoom in: %v", cam.Zoom)
	}
	if !cc.HandleEvent(core.EventScroll{Yoff: -1}) || cam.Zoom != 1 {
		t.Fatalf("zoom out: %v", cam.Zoom)
	}
	if cc.HandleEvent(core.EventScroll{Xoff: 1}) || cc.HandleEvent(core.EventKey{Key: core.KeyW}) {
		t.Fatal("unrelated events consumed")
	}
}
