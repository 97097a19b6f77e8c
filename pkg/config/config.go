package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Limits    LimitsConfig    `yaml:"limits"`
	Benchmark BenchmarkConfig `yaml:"benchmark"`
}

type ServerConfig struct {
	Addr    string `yaml:"addr"`     // HTTP Listen Address (e.g. :8080)
	TCPAddr string `yaml:"tcp_addr"` // TCP Listen Address (e.g. :9090)
}

type StorageConfig struct {
	Path string `yaml:"path"` // directory for the result archive
}

type LimitsConfig struct {
	MaxDatasetSize int `yaml:"max_dataset_size"`
	MaxVizElements int `yaml:"max_viz_elements"` // visualization refused above this size
}

type BenchmarkConfig struct {
	Algorithms  []string `yaml:"algorithms"`
	Sizes       []int    `yaml:"sizes"`
	RunsPerSize int      `yaml:"runs_per_size"`
	Parallelism int      `yaml:"parallelism"`
	Seed        int64    `yaml:"seed"`
}

func Load(configPath string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr:    ":8080",
			TCPAddr: ":9090",
		},
		Storage: StorageConfig{
			Path: "algoviz_data",
		},
		Limits: LimitsConfig{
			MaxDatasetSize: 1_000_000,
			MaxVizElements: 200,
		},
		Benchmark: BenchmarkConfig{
			Algorithms:  []string{"linear", "binary", "bfs", "dfs"},
			Sizes:       []int{100, 1000, 10000},
			RunsPerSize: 5,
			Parallelism: 4,
			Seed:        42,
		},
	}

	if configPath == "" {
		for _, p := range []string{"configs/algoviz.yaml", "algoviz.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Limits.MaxDatasetSize <= 0 {
		cfg.Limits.MaxDatasetSize = 1_000_000
	}
	if cfg.Limits.MaxVizElements <= 0 {
		cfg.Limits.MaxVizElements = 200
	}
	if len(cfg.Benchmark.Algorithms) == 0 {
		cfg.Benchmark.Algorithms = []string{"linear", "binary", "bfs", "dfs"}
	}
	if len(cfg.Benchmark.Sizes) == 0 {
		cfg.Benchmark.Sizes = []int{100, 1000, 10000}
	}
	if cfg.Benchmark.RunsPerSize <= 0 {
		cfg.Benchmark.RunsPerSize = 5
	}
	if cfg.Benchmark.Parallelism <= 0 {
		cfg.Benchmark.Parallelism = 4
	}
}
