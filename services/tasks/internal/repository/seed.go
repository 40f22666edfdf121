package repository

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sun1tar/tasks-api/services/tasks/internal/models"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Tasks []models.Task `yaml:"tasks"`
}

// ParseSeed разбирает набор начальных задач из YAML
func ParseSeed(data []byte) ([]models.Task, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	seen := make(map[int]struct{}, len(f.Tasks))
	for _, t := range f.Tasks {
		if t.ID <= 0 {
			return nil, fmt.Errorf("seed task has non-positive id %d", t.ID)
		}
		if _, ok := seen[t.ID]; ok {
			return nil, fmt.Errorf("seed task id %d is duplicated", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return f.Tasks, nil
}

// DefaultSeed возвращает встроенный начальный набор задач
func DefaultSeed() ([]models.Task, error) {
	return ParseSeed(seedYAML)
}
