package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by New
	Description string
	build       func() *Scene
}

// builtinScenes lists the scenes New can build, keyed by ID
var builtinScenes = map[string]SceneInfo{
	"default": {
		ID:          "default",
		Description: "Spheres, a turned box and an infinite ground plane",
		build:       NewDefaultScene,
	},
	"spheregrid": {
		ID:          "spheregrid",
		Description: "20x20 grid of spheres on a ground plane",
		build:       func() *Scene { return NewSphereGridScene(20) },
	},
	"cylinders": {
		ID:          "cylinders",
		Description: "Open and capped cylinders and a cone on a ground quad",
		build:       NewCylinderScene,
	},
	"trianglemesh": {
		ID:          "trianglemesh",
		Description: "Box, pyramid and icosahedron meshes placed by instance transforms",
		build:       NewTriangleMeshScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, info := range builtinScenes {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// New builds the built-in scene with the given ID
func New(id string) (*Scene, error) {
	info, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", id)
	}
	return info.build(), nil
}
