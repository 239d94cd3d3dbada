package scene

import (
	"testing"

	"github.com/softglow/raylight/pkg/core"
)

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != "default" || names[1] != "showcase" {
		t.Errorf("unexpected scene names: %v", names)
	}
}

func TestByName(t *testing.T) {
	s, err := ByName("default", 400, 225)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Camera.ImageWidth != 400 || s.Camera.ImageHeight != 225 {
		t.Errorf("camera config not sized to request: %+v", s.Camera)
	}

	if _, err := ByName("nope", 400, 225); err == nil {
		t.Error("expected an error for an unknown scene name")
	}
}

func TestDefaultSceneContents(t *testing.T) {
	s := NewDefaultScene(400, 225)

	if s.Surfaces.Len() != 2 {
		t.Errorf("expected 2 surfaces, got %d", s.Surfaces.Len())
	}
	if s.Top != core.NewVec3(0.5, 0.7, 1.0) {
		t.Errorf("unexpected top background colour: %v", s.Top)
	}
	if s.Bottom != core.NewVec3(1.0, 1.0, 1.0) {
		t.Errorf("unexpected bottom background colour: %v", s.Bottom)
	}
}

func TestShowcaseSceneContents(t *testing.T) {
	s := NewShowcaseScene(400, 225)
	if s.Surfaces.Len() != 4 {
		t.Errorf("expected 4 surfaces, got %d", s.Surfaces.Len())
	}
}
