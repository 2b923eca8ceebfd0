// Package config handles terrain viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Noise    NoiseConfig    `yaml:"noise"`
	Camera   CameraConfig   `yaml:"camera"`
	Light    LightConfig    `yaml:"light"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int        `yaml:"width"`
	Height        int        `yaml:"height"`
	Fullscreen    bool       `yaml:"fullscreen"`
	VSync         bool       `yaml:"vsync"`
	Wireframe     bool       `yaml:"wireframe"`
	ClearColor    [3]float32 `yaml:"clear_color"`
	ScreenshotDir string     `yaml:"screenshot_dir"`
}

// TerrainConfig holds mesh generation settings.
type TerrainConfig struct {
	VertexCount  int          `yaml:"vertex_count"` // vertices per side
	Size         float32      `yaml:"size"`         // world-space side length
	Amplitude    float32      `yaml:"amplitude"`
	Seed         int64        `yaml:"seed"` // 0 picks a random seed at startup
	ColourSpread float32      `yaml:"colour_spread"`
	Palette      [][3]float32 `yaml:"palette"` // RGB anchors in [0,255], low to high
}

// NoiseConfig holds noise source settings.
type NoiseConfig struct {
	Type          string  `yaml:"type"` // perlin, simplex or gradient
	Frequency     float64 `yaml:"frequency"`
	Octaves       int     `yaml:"octaves"`
	Interpolation string  `yaml:"interpolation"` // linear, hermite or quintic
	Fractal       string  `yaml:"fractal"`       // fbm, billow or ridged
	Lacunarity    float64 `yaml:"lacunarity"`
	Gain          float64 `yaml:"gain"`
}

// CameraConfig holds fly camera settings.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`   // degrees
	Pitch       float32    `yaml:"pitch"` // degrees
	Speed       float32    `yaml:"speed"` // world units per second
	Sensitivity float32    `yaml:"sensitivity"`
	FOV         float32    `yaml:"fov"` // degrees
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

// LightConfig holds the terrain light placement.
type LightConfig struct {
	Position  [3]float32 `yaml:"position"`
	UseSun    bool       `yaml:"use_sun"`   // place the light from azimuth/elevation instead
	Azimuth   float32    `yaml:"azimuth"`   // degrees around Y
	Elevation float32    `yaml:"elevation"` // degrees above the horizon
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultPalette is the sand, grass, forest, rock and snow ramp.
func DefaultPalette() [][3]float32 {
	return [][3]float32{
		{201, 178, 99},
		{135, 184, 82},
		{80, 171, 93},
		{120, 120, 120},
		{200, 200, 210},
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         800,
			Height:        600,
			Fullscreen:    false,
			VSync:         true,
			Wireframe:     false,
			ClearColor:    [3]float32{1, 1, 1},
			ScreenshotDir: "screenshots",
		},
		Terrain: TerrainConfig{
			VertexCount:  1000,
			Size:         50,
			Amplitude:    1,
			Seed:         0,
			ColourSpread: 0.45,
			Palette:      DefaultPalette(),
		},
		Noise: NoiseConfig{
			Type:          "gradient",
			Frequency:     0.06,
			Octaves:       8,
			Interpolation: "linear",
			Fractal:       "fbm",
			Lacunarity:    2,
			Gain:          0.5,
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 3},
			Yaw:         -90,
			Pitch:       0,
			Speed:       2.5,
			Sensitivity: 0.1,
			FOV:         45,
			Near:        0.1,
			Far:         100,
		},
		Light: LightConfig{
			Position:  [3]float32{1.5, 3, 1.5},
			UseSun:    false,
			Azimuth:   45,
			Elevation: 60,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
