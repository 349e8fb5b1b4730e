package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/eduwijs/querywise/internal/domain"
	"github.com/eduwijs/querywise/internal/domain/course"
)

// catalogFile is the YAML document shape of a file catalog.
type catalogFile struct {
	Courses []courseDTO `yaml:"courses"`
}

// FileSource loads the course catalog from a YAML file.
type FileSource struct {
	path string
}

// NewFileSource creates a file catalog source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and hydrates all courses in file order.
func (s *FileSource) Load(ctx context.Context) ([]course.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	data, err := os.ReadFile(filepath.Clean(s.path))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrCatalogUnavailable, s.path, err)
	}

	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrCatalogUnavailable, s.path, err)
	}

	courses := make([]course.Course, 0, len(doc.Courses))
	for i := range doc.Courses {
		c, err := doc.Courses[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("hydrate catalog: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, nil
}
