package engineconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds window, projection and runtime preferences. Persisted across runs with
// the console "save" command. Scene content lives in the layout file instead.
type EnginePrefs struct {
	WindowWidth  int     `json:"window_width"`
	WindowHeight int     `json:"window_height"`
	WindowTitle  string  `json:"window_title"`
	TargetFPS    int     `json:"target_fps"`
	FovY         float32 `json:"fov_y"`
	Near         float32 `json:"near"`
	Far          float32 `json:"far"`
	ShowFPS      bool    `json:"show_fps"`
	Audio        bool    `json:"audio"`
	AudioVolume  float64 `json:"audio_volume"`
	LogPath      string  `json:"log_path,omitempty"`
	LogEcho      bool    `json:"log_echo"`
	Seed         int64   `json:"seed"`
}

// Default returns default engine preferences: an 800x600 window at 60 FPS, 45° FOV with
// near/far planes 0.1/100, rain ambience on, key actions echoed to stdout.
func Default() EnginePrefs {
	return EnginePrefs{
		WindowWidth:  800,
		WindowHeight: 600,
		WindowTitle:  "3D Scene with House, Tree, and Sphere",
		TargetFPS:    60,
		FovY:         45,
		Near:         0.1,
		Far:          100,
		ShowFPS:      false,
		Audio:        true,
		AudioVolume:  0.3,
		LogEcho:      true,
		Seed:         0,
	}
}

// Load reads engine preferences from config/engine.json. If the file is missing or invalid,
// returns Default() and does not create a file.
func Load() (EnginePrefs, error) {
	return LoadFile(EngineConfigPath)
}

// LoadFile is Load for an explicit path. Fields absent from the file keep their defaults.
func LoadFile(path string) (EnginePrefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p.sanitized(), nil
}

// Save writes engine preferences to config/engine.json, creating the config directory if needed.
func Save(p EnginePrefs) error {
	return SaveFile(EngineConfigPath, p)
}

// SaveFile is Save for an explicit path.
func SaveFile(path string, p EnginePrefs) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides p from RAIN_SCENE_SEED, RAIN_SCENE_FPS, RAIN_SCENE_AUDIO and
// RAIN_SCENE_LOG. Unset variables are ignored; malformed ones are reported and skipped.
func ApplyEnv(p *EnginePrefs) error {
	var errs []string
	if v, ok := lookup("RAIN_SCENE_SEED"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			p.Seed = n
		} else {
			errs = append(errs, fmt.Sprintf("RAIN_SCENE_SEED=%q: %v", v, err))
		}
	}
	if v, ok := lookup("RAIN_SCENE_FPS"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.TargetFPS = n
		} else {
			errs = append(errs, fmt.Sprintf("RAIN_SCENE_FPS=%q: want a positive integer", v))
		}
	}
	if v, ok := lookup("RAIN_SCENE_AUDIO"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			p.Audio = b
		} else {
			errs = append(errs, fmt.Sprintf("RAIN_SCENE_AUDIO=%q: %v", v, err))
		}
	}
	if v, ok := lookup("RAIN_SCENE_LOG"); ok {
		p.LogPath = v
	}
	if len(errs) > 0 {
		return fmt.Errorf("engine env overrides: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Aspect returns the window aspect ratio.
func (p EnginePrefs) Aspect() float32 {
	return float32(p.WindowWidth) / float32(p.WindowHeight)
}

// sanitized replaces unusable values with defaults.
func (p EnginePrefs) sanitized() EnginePrefs {
	d := Default()
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		p.WindowWidth, p.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = d.TargetFPS
	}
	if p.FovY <= 0 || p.FovY >= 180 {
		p.FovY = d.FovY
	}
	if p.Near <= 0 || p.Far <= p.Near {
		p.Near, p.Far = d.Near, d.Far
	}
	if p.AudioVolume < 0 || p.AudioVolume > 1 {
		p.AudioVolume = d.AudioVolume
	}
	return p
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
