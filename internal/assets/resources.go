package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultDir       = "assets"
	resourcesFile    = "resources.yml"
	defaultSettings  = "settings.yml"
	defaultScreens   = "screens.yml"
	defaultSoundsDir = "sounds"
	ratiosKey        = "RATIOS"
)

// EntityKind names an on-screen object that is drawn from an image file.
type EntityKind string

const (
	KindBall   EntityKind = "ball"
	KindPaddle EntityKind = "paddle"
)

// Manifest is the top-level resources.yml.
type Manifest struct {
	Static   map[EntityKind]string `yaml:"static"`
	Settings string                `yaml:"settings"`
	Sounds   string                `yaml:"sounds"`
}

// Settings selects the screens file and the default display.
type Settings struct {
	Screens    string `yaml:"screens"`
	Resolution string `yaml:"resolution"`
	Size       int    `yaml:"size"`
}

// Screens maps resolution names to their supported sizes. RATIOS holds the
// width:height ratio for each name.
type Screens struct {
	Sizes  map[string][]int  `yaml:",inline"`
	Ratios map[string][2]int `yaml:"RATIOS"`
}

// Resources is the parsed resource tree rooted at one static folder.
type Resources struct {
	dir      string
	Manifest Manifest
	Settings Settings
	Screens  Screens
}

// Dir resolves the static folder. PONG_ASSETS_DIR wins over dir, and an empty
// dir falls back to ./assets.
func Dir(dir string) string {
	if env := os.Getenv("PONG_ASSETS_DIR"); env != "" {
		return env
	}
	if dir == "" {
		return defaultDir
	}
	return dir
}

// Load reads resources.yml from dir and the settings and screens files it names.
func Load(dir string) (*Resources, error) {
	r := &Resources{dir: Dir(dir)}
	if err := r.readYAML(resourcesFile, &r.Manifest); err != nil {
		return nil, err
	}
	if r.Manifest.Settings == "" {
		r.Manifest.Settings = defaultSettings
	}
	if r.Manifest.Sounds == "" {
		r.Manifest.Sounds = defaultSoundsDir
	}
	if err := r.readYAML(r.Manifest.Settings, &r.Settings); err != nil {
		return nil, err
	}
	if r.Settings.Screens == "" {
		r.Settings.Screens = defaultScreens
	}
	if err := r.readYAML(r.Settings.Screens, &r.Screens); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Resources) StaticDir() string { return r.dir }

// Path resolves a resource filename. Names starting with "." are relative to
// the working directory, everything else to the static folder.
func (r *Resources) Path(name string) string {
	if strings.HasPrefix(name, ".") {
		if wd, err := os.Getwd(); err == nil {
			return filepath.Join(wd, name)
		}
		return name
	}
	return filepath.Join(r.dir, name)
}

// AssetFor returns the image filename bound to kind, or "<kind>.png".
func (r *Resources) AssetFor(kind EntityKind) string {
	if name, ok := r.Manifest.Static[kind]; ok && name != "" {
		return name
	}
	return string(kind) + ".png"
}

func (r *Resources) SoundsDir() string { return r.Path(r.Manifest.Sounds) }

func (r *Resources) readYAML(name string, v any) error {
	path := r.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read resource %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse resource %s: %w", path, err)
	}
	return nil
}

// DisplayError reports a resolution/size pair missing from the screens file.
type DisplayError struct {
	Resolution string
	Size       int
	Supported  map[string][]int
}

func (e *DisplayError) Error() string {
	names := make([]string, 0, len(e.Supported))
	for name := range e.Supported {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%v", name, e.Supported[name])
	}
	return fmt.Sprintf("resolution=%s or size=%d not supported; supported in settings: %s",
		e.Resolution, e.Size, strings.Join(parts, ", "))
}

var ErrBadRatio = errors.New("invalid aspect ratio")

// Display returns the window size for a resolution preset. Size is the window
// height; the width follows from the preset ratio. Empty or zero arguments
// fall back to the settings defaults.
func (r *Resources) Display(resolution string, size int) (width, height int, err error) {
	if resolution == "" {
		resolution = r.Settings.Resolution
	}
	if size == 0 {
		size = r.Settings.Size
	}
	supported := false
	for _, s := range r.Screens.Sizes[resolution] {
		if s == size {
			supported = true
			break
		}
	}
	if !supported {
		return 0, 0, &DisplayError{Resolution: resolution, Size: size, Supported: r.Screens.Sizes}
	}
	ratio, ok := r.Screens.Ratios[resolution]
	if !ok || ratio[0] <= 0 || ratio[1] <= 0 {
		return 0, 0, fmt.Errorf("resolution %s: %w %v", resolution, ErrBadRatio, ratio)
	}
	return size * ratio[0] / ratio[1], size, nil
}
