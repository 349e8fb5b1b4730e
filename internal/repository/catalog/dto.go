package catalog

import (
	"fmt"

	"github.com/eduwijs/querywise/internal/domain/course"
)

// lessonDTO is the serialized lesson shape shared by both sources.
type lessonDTO struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Body  string `yaml:"body" json:"body"`
}

// moduleDTO is the serialized module shape.
type moduleDTO struct {
	ID      string      `yaml:"id" json:"id"`
	Title   string      `yaml:"title" json:"title"`
	Lessons []lessonDTO `yaml:"lessons" json:"lessons"`
}

// courseDTO is the serialized course shape. Level and duration stay
// free text; mapping to ordinals and hours happens in the domain.
type courseDTO struct {
	ID               string      `yaml:"id" json:"id"`
	Title            string      `yaml:"title" json:"title"`
	Description      string      `yaml:"description" json:"description"`
	ShortDescription string      `yaml:"short_description" json:"shortDescription"`
	Tags             []string    `yaml:"tags" json:"tags"`
	Level            string      `yaml:"level" json:"level"`
	Duration         string      `yaml:"duration" json:"duration"`
	Price            float64     `yaml:"price" json:"price"`
	Modules          []moduleDTO `yaml:"modules" json:"modules"`
}

// toDomain hydrates a validated domain course from its DTO.
func (d *courseDTO) toDomain() (course.Course, error) {
	modules := make([]course.Module, len(d.Modules))
	for i, m := range d.Modules {
		lessons := make([]course.Lesson, len(m.Lessons))
		for j, l := range m.Lessons {
			lessons[j] = course.NewLesson(l.ID, l.Title, l.Body)
		}
		modules[i] = course.NewModule(m.ID, m.Title, lessons)
	}

	c, err := course.New(
		d.ID, d.Title, d.Description, d.ShortDescription,
		d.Tags, d.Level, d.Duration, d.Price, modules,
	)
	if err != nil {
		return course.Course{}, fmt.Errorf("course %q: %w", d.ID, err)
	}
	return c, nil
}
