package persistence

import (
	"context"
	"os"
	"sync"

	"gopkg.in/yaml.v2"

	"call-audio-router/internal/domain/model"
	"call-audio-router/internal/ports"
)

type YAMLConfigRepository struct {
	filepath string
	defaults func() *model.Config
	mu       sync.RWMutex
}

var _ ports.ConfigRepository = (*YAMLConfigRepository)(nil)

// NewYAMLConfigRepository reads and writes config at filepath. Values missing
// from the file keep what defaults returns.
func NewYAMLConfigRepository(filepath string, defaults func() *model.Config) *YAMLConfigRepository {
	if defaults == nil {
		defaults = func() *model.Config { return &model.Config{} }
	}
	return &YAMLConfigRepository{filepath: filepath, defaults: defaults}
}

func (r *YAMLConfigRepository) Get(ctx context.Context) (*model.Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg := r.defaults()
	if r.filepath == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(r.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *YAMLConfigRepository) Save(ctx context.Context, config *model.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(r.filepath, data, 0644)
}
