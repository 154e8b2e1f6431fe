package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/geometry"
	"github.com/df07/go-raycore/pkg/loaders"
	"github.com/df07/go-raycore/pkg/renderer"
	"github.com/df07/go-raycore/pkg/scene"
	"github.com/golang/glog"
)

// options holds the parsed command line
type options struct {
	sceneType string
	meshPath  string
	rays      int
	seed      int64
	workers   int
	chunkSize int
	leafSize  int
	maxDepth  int
	rotate    float64 // Degrees about Y
	translate string  // "x,y,z"
	verify    bool
}

// glogLogger routes core.Logger output to glog
type glogLogger struct{}

func (glogLogger) Printf(format string, args ...interface{}) {
	glog.InfoDepth(1, strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}

func main() {
	var opts options
	flag.StringVar(&opts.sceneType, "scene", "default", "Built-in scene to query (ignored when -mesh is set)")
	flag.StringVar(&opts.meshPath, "mesh", "", "Mesh to load: local path or s3://bucket/key (.obj, .stl, .ply, .gltf, .glb)")
	flag.IntVar(&opts.rays, "rays", 100000, "Number of random rays to cast")
	flag.Int64Var(&opts.seed, "seed", 1, "Random seed for ray generation")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	flag.IntVar(&opts.chunkSize, "chunk", renderer.DefaultWorkerConfig().ChunkSize, "Rays per work unit")
	flag.IntVar(&opts.leafSize, "leaf-size", geometry.DefaultBVHConfig().LeafSize, "Maximum primitives per BVH leaf")
	flag.IntVar(&opts.maxDepth, "max-depth", geometry.DefaultBVHConfig().MaxDepth, "Maximum BVH depth")
	flag.Float64Var(&opts.rotate, "rotate", 0, "Rotate the scene about Y by this many degrees")
	flag.StringVar(&opts.translate, "translate", "", "Translate the scene by x,y,z")
	flag.BoolVar(&opts.verify, "verify", false, "Check every BVH result against a brute force scan")
	list := flag.Bool("list", false, "List built-in scenes and exit")
	flag.Parse()
	defer glog.Flush()

	if *list {
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-14s %s\n", info.ID, info.Description)
		}
		return
	}

	if err := run(context.Background(), opts, glogLogger{}); err != nil {
		glog.Exitf("raycore: %v", err)
	}
}

// run builds the scene, casts the ray batch and optionally verifies it
func run(ctx context.Context, opts options, logger core.Logger) error {
	logger = core.LoggerOrNop(logger)
	s, err := createScene(ctx, opts.sceneType, opts.meshPath, logger)
	if err != nil {
		return err
	}

	xf, err := createTransform(opts.rotate, opts.translate)
	if err != nil {
		return err
	}

	bounds := s.Bounds()
	if bounds.IsEmpty() {
		return fmt.Errorf("scene %s has no bounded shapes to aim at", s.Name)
	}
	if xf != nil {
		bounds = xf.BoxToWorld(bounds)
	}

	s.Preprocess(geometry.WithLeafSize(opts.leafSize), geometry.WithMaxDepth(opts.maxDepth))
	stats := s.BVH.Stats()
	logger.Printf("Scene %s: %d primitives, BVH %d nodes (%d leaves, depth %d, avg %.1f), %d unbounded\n",
		s.Name, s.GetPrimitiveCount(), stats.TotalNodes, stats.LeafNodes, stats.MaxDepth, stats.AvgDepth, stats.Background)

	rays := renderer.RandomRays(bounds, opts.rays, opts.seed)
	interval := core.NewInterval(0.001, math.Inf(1))

	pool := renderer.NewWorkerPool(s.BVH, renderer.WorkerConfig{
		NumWorkers: opts.workers,
		ChunkSize:  opts.chunkSize,
	}, logger)
	results, castStats, err := pool.Cast(ctx, rays, interval, xf)
	if err != nil {
		return err
	}
	logger.Printf("Hit rate %.1f%%, %.0f rays/s\n", 100*castStats.HitRate(), castStats.RaysPerSecond())

	if opts.verify {
		reference := make([]*core.HitRecord, len(rays))
		list := s.List()
		for i, ray := range rays {
			reference[i], _ = ray.Hit(list, interval, xf)
		}
		if n := renderer.CountMismatches(results, reference, 1e-9); n > 0 {
			return fmt.Errorf("verify: %d of %d rays disagree with brute force", n, len(rays))
		}
		logger.Printf("Verified %d rays against brute force\n", len(rays))
	}

	return nil
}

// createScene loads meshPath when set, otherwise builds the named scene
func createScene(ctx context.Context, sceneType, meshPath string, logger core.Logger) (*scene.Scene, error) {
	if meshPath != "" {
		mesh, err := loaders.LoadMesh(ctx, meshPath, logger)
		if err != nil {
			return nil, err
		}
		return scene.NewMeshScene(meshPath, mesh)
	}
	return scene.New(sceneType)
}

// createTransform returns nil when the options leave the scene in place
func createTransform(rotateDegrees float64, translate string) (*core.Transform, error) {
	translation, err := parseVec3(translate)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}
	if rotateDegrees == 0 && translation == (core.Vec3{}) {
		return nil, nil
	}
	return core.NewTransform(rotateDegrees*math.Pi/180, translation), nil
}

// parseVec3 parses "x,y,z". An empty string is the zero vector.
func parseVec3(s string) (core.Vec3, error) {
	if strings.TrimSpace(s) == "" {
		return core.Vec3{}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var xyz [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		xyz[i] = v
	}
	return core.NewVec3(xyz[0], xyz[1], xyz[2]), nil
}

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "raycore casts random rays at a scene or mesh through a BVH")
		fmt.Fprintln(os.Stderr, "Usage: raycore [options]")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
}
