package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"supercut/internal/appdirs"
)

type AppConfig struct {
	FfmpegPath  string `toml:"ffmpeg_path"`
	FfprobePath string `toml:"ffprobe_path"`
	OutputDir   string `toml:"output_dir"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type LibraryConfig struct {
	// VideosDir holds the source movies; screenshot ids resolve against it.
	VideosDir      string `toml:"videos_dir"`
	ScreenshotsDir string `toml:"screenshots_dir"`
	NeighborsDir   string `toml:"neighbors_dir"`
	CatalogFile    string `toml:"catalog_file"`
}

type CompileConfig struct {
	PaddingSec      float64 `toml:"padding_sec"`
	Concurrency     int     `toml:"concurrency"`
	TargetWidth     int     `toml:"target_width"`
	TargetHeight    int     `toml:"target_height"`
	TargetFPS       int     `toml:"target_fps"`
	AudioSampleRate int     `toml:"audio_sample_rate"`
}

type QueueConfig struct {
	Enabled       bool   `toml:"enabled"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	Concurrency   int    `toml:"concurrency"`
}

type Config struct {
	App     AppConfig     `toml:"app"`
	Server  ServerConfig  `toml:"server"`
	Library LibraryConfig `toml:"library"`
	Compile CompileConfig `toml:"compile"`
	Queue   QueueConfig   `toml:"queue"`
}

var Conf = defaultConfig()

var resolveConfigPath = func() (string, error) {
	dirs, err := appdirs.Resolve()
	if err != nil {
		return "", err
	}
	return dirs.ConfigFile, nil
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8888,
		},
		Library: LibraryConfig{
			VideosDir:      "library",
			ScreenshotsDir: filepath.Join("library", "screenshots"),
			NeighborsDir:   filepath.Join("library", "neighbors"),
			CatalogFile:    filepath.Join("library", "catalog.json"),
		},
		Compile: CompileConfig{
			PaddingSec:      5,
			Concurrency:     2,
			TargetWidth:     1280,
			TargetHeight:    720,
			TargetFPS:       30,
			AudioSampleRate: 44100,
		},
		Queue: QueueConfig{
			RedisAddr:   "localhost:6379",
			Concurrency: 3,
		},
	}
}

// LoadOrCreateConfig reads the config file, writing defaults first when the
// file does not exist yet. Returns whether a new file was created.
func LoadOrCreateConfig() (bool, error) {
	configPath, err := resolveConfigPath()
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		Conf = defaultConfig()
		if err := SaveConfig(); err != nil {
			return false, fmt.Errorf("write default config: %w", err)
		}
		return true, nil
	} else if err != nil {
		return false, err
	}

	Conf = defaultConfig()
	if _, err := toml.DecodeFile(configPath, &Conf); err != nil {
		return false, fmt.Errorf("decode config %s: %w", configPath, err)
	}
	return false, nil
}

// SaveConfig writes Conf to the resolved config path, creating parent dirs.
func SaveConfig() error {
	configPath, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	file, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(Conf)
}

// CheckConfig validates values the compiler cannot run without.
func CheckConfig() error {
	if Conf.Library.VideosDir == "" {
		return errors.New("library.videos_dir is required")
	}
	if Conf.Compile.PaddingSec < 0 {
		return errors.New("compile.padding_sec must not be negative")
	}
	if Conf.Compile.Concurrency <= 0 {
		return errors.New("compile.concurrency must be positive")
	}
	if Conf.Compile.TargetWidth <= 0 || Conf.Compile.TargetHeight <= 0 {
		return errors.New("compile.target resolution must be positive")
	}
	if Conf.Compile.TargetFPS <= 0 {
		return errors.New("compile.target_fps must be positive")
	}
	if Conf.Compile.AudioSampleRate <= 0 {
		return errors.New("compile.audio_sample_rate must be positive")
	}
	if Conf.Queue.Enabled && Conf.Queue.RedisAddr == "" {
		return errors.New("queue.redis_addr is required when queue is enabled")
	}
	return nil
}
