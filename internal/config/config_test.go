package config

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Title != "Fractal Clock" {
		t.Errorf("Title = %q, want 'Fractal Clock'", cfg.Title)
	}
	if cfg.Depth != 12 {
		t.Errorf("Depth = %d, want 12", cfg.Depth)
	}
	if cfg.ThicknessScale != 3.0 {
		t.Errorf("ThicknessScale = %f, want 3.0", cfg.ThicknessScale)
	}
	if !cfg.AntiAlias {
		t.Error("AntiAlias = false, want true")
	}
	if cfg.Tick {
		t.Error("Tick = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"depth zero", func(c *Config) { c.Depth = 0 }, true},
		{"depth max", func(c *Config) { c.Depth = MaxDepth }, true},
		{"negative depth", func(c *Config) { c.Depth = -1 }, false},
		{"depth too large", func(c *Config) { c.Depth = MaxDepth + 1 }, false},
		{"depth twenty", func(c *Config) { c.Depth = 20 }, false},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Height = -5 }, false},
		{"zero thickness", func(c *Config) { c.ThicknessScale = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestMaxDepthSegmentBudget(t *testing.T) {
	// every depth level doubles the segment count; keep a frame in the tens of thousands
	if n := 2 * (1<<(MaxDepth+1) - 1); n > 1<<16 {
		t.Errorf("MaxDepth %d gives %d segments per frame, want at most %d", MaxDepth, n, 1<<16)
	}
	if DefaultDepth > MaxDepth {
		t.Errorf("DefaultDepth %d above MaxDepth %d", DefaultDepth, MaxDepth)
	}
}
