package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ErrUnknownScene is returned when a scene name matches no built-in scene or file
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Name passed to Create
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to JSON file (file type only)
}

type builtinScene struct {
	info  SceneInfo
	build func(aspectRatio float64) *Scene
}

var builtinScenes = []builtinScene{
	{
		info:  SceneInfo{ID: "metal", Name: "Metal", Description: "Diffuse sphere between fuzzy gold and silver metal spheres", Type: "builtin"},
		build: NewMetalScene,
	},
	{
		info:  SceneInfo{ID: "diffuse", Name: "Diffuse", Description: "Single diffuse sphere on a diffuse ground", Type: "builtin"},
		build: NewDiffuseScene,
	},
	{
		info: SceneInfo{ID: "glass", Name: "Glass", Description: "Solid and hollow glass spheres with depth of field", Type: "builtin"},
		build: func(aspectRatio float64) *Scene {
			return NewGlassScene(aspectRatio)
		},
	},
	{
		info: SceneInfo{ID: "spheregrid", Name: "Sphere Grid", Description: "10x10 grid of rainbow diffuse, metal and glass spheres", Type: "builtin"},
		build: func(aspectRatio float64) *Scene {
			return NewSphereGridScene(aspectRatio)
		},
	},
}

// Create builds a scene from a built-in name or a path to a .json scene file
func Create(nameOrPath string, aspectRatio float64) (*Scene, error) {
	if strings.EqualFold(filepath.Ext(nameOrPath), ".json") {
		return LoadFile(nameOrPath, aspectRatio)
	}

	for _, b := range builtinScenes {
		if b.info.ID == nameOrPath {
			return b.build(aspectRatio), nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, nameOrPath)
}

// BuiltinScenes returns metadata for every built-in scene
func BuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		infos[i] = b.info
	}
	return infos
}

// ListFileScenes scans dir for .json scene files. A missing directory yields no scenes.
// Files whose metadata cannot be read are reported to logger and skipped.
func ListFileScenes(dir string, logger core.Logger) ([]SceneInfo, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}

	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var scenes []SceneInfo
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			logger.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseSceneMetadata reads the name and description of a scene file.
// The file name is used when the document has no name.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       filePath,
		Name:     titleCase(nameWithoutExt),
		Type:     "file",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, fmt.Errorf("failed to read scene file: %w", err)
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return info, fmt.Errorf("%s: %w: %v", filePath, ErrInvalidSceneFile, err)
	}

	if header.Name != "" {
		info.Name = header.Name
	}
	info.Description = header.Description
	return info, nil
}

// ListAllScenes returns built-in scenes followed by the scene files found in dir
func ListAllScenes(dir string, logger core.Logger) ([]SceneInfo, error) {
	fileScenes, err := ListFileScenes(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}
	return append(BuiltinScenes(), fileScenes...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "three-spheres" -> "Three Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
