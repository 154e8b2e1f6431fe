package loaders

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/geometry"
)

// ErrUnsupportedFormat is returned for sources whose extension has no loader
var ErrUnsupportedFormat = errors.New("unsupported mesh format")

// Loader reads triangle meshes from local files or S3 objects
type Loader struct {
	// S3 fetches s3:// sources. When nil a client is built from the
	// RAYCORE_S3_* environment variables on each remote load.
	S3     s3iface.S3API
	Logger core.Logger
}

// NewLoader creates a loader that reports progress to logger (nil is silent)
func NewLoader(logger core.Logger) *Loader {
	return &Loader{Logger: logger}
}

// LoadMesh loads a mesh with a default loader.
// See Loader.Load for the accepted sources.
func LoadMesh(ctx context.Context, source string, logger core.Logger) (*geometry.TriMesh, error) {
	return NewLoader(logger).Load(ctx, source)
}

// Load reads the mesh at source, which is either a local path or an
// s3://bucket/key URI. The format is chosen by extension: .gltf and .glb are
// read as glTF, .obj, .stl and .ply through fauxgl. The returned mesh has
// already passed Validate.
func (l *Loader) Load(ctx context.Context, source string) (*geometry.TriMesh, error) {
	logger := core.LoggerOrNop(l.Logger)
	startTime := time.Now()

	read, err := readerFor(source)
	if err != nil {
		return nil, err
	}

	path := source
	if bucket, key, ok := ParseS3URI(source); ok {
		local, cleanup, err := l.fetchS3(ctx, bucket, key)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", source, err)
		}
		defer cleanup()
		path = local
	}

	mesh, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}

	logger.Printf("Loaded mesh %s: %d vertices, %d triangles in %v\n",
		source, len(mesh.Vertices), mesh.TriangleCount(), time.Since(startTime))

	return mesh, nil
}

// readerFor picks the file reader for source's extension
func readerFor(source string) (func(path string) (*geometry.TriMesh, error), error) {
	ext := strings.ToLower(filepath.Ext(source))
	switch ext {
	case ".gltf", ".glb":
		return LoadGLTF, nil
	case ".obj", ".stl", ".ply":
		return LoadFauxGL, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
