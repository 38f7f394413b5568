package viewcube

import (
	"errors"
	"time"

	"github.com/seqsense/pcgol/mat"
	"gopkg.in/yaml.v3"
)

const (
	defaultCameraDistance = 6.0
	defaultQuietPeriodMs  = 200
	defaultFOV            = 3.14159265 / 3
	defaultNear           = 0.1
	defaultFar            = 100.0
	defaultViewportScale  = 0.15
	defaultMargin         = 10.0
)

// Config holds the per-instance gizmo settings. There is no module-level
// state; every gizmo carries its own copy.
//
// CameraDistance and FocusPoint apply to the primary camera when a view
// command is resolved. FOV, Near and Far build the gizmo camera.
// ViewportScale sizes the overlay canvas as a fraction of the host
// viewport width, offset from its top-left corner by Margin pixels.
type Config struct {
	CameraDistance float32  `yaml:"cameraDistance"`
	FocusPoint     mat.Vec3 `yaml:"focusPoint,flow"`
	QuietPeriodMs  int      `yaml:"quietPeriodMs"`
	FOV            float32  `yaml:"fov"`
	Near           float32  `yaml:"near"`
	Far            float32  `yaml:"far"`
	ViewportScale  float64  `yaml:"viewportScale"`
	Margin         float64  `yaml:"margin"`
}

func DefaultConfig() Config {
	return Config{
		CameraDistance: defaultCameraDistance,
		QuietPeriodMs:  defaultQuietPeriodMs,
		FOV:            defaultFOV,
		Near:           defaultNear,
		Far:            defaultFar,
		ViewportScale:  defaultViewportScale,
		Margin:         defaultMargin,
	}
}

// LoadConfig parses a yaml blob over the defaults.
func LoadConfig(b []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, err
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.CameraDistance <= 0 {
		return errors.New("cameraDistance must be positive")
	}
	if c.QuietPeriodMs < 0 {
		return errors.New("quietPeriodMs must not be negative")
	}
	if c.FOV <= 0 {
		return errors.New("fov must be positive")
	}
	if c.Near <= 0 || c.Far <= c.Near {
		return errors.New("near/far planes must satisfy 0 < near < far")
	}
	if c.ViewportScale <= 0 || c.ViewportScale > 1 {
		return errors.New("viewportScale must be in (0, 1]")
	}
	return nil
}

func (c *Config) quietPeriod() time.Duration {
	return time.Duration(c.QuietPeriodMs) * time.Millisecond
}
