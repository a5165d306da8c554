// Package jsonfile implements the resume content store over the structured
// data file the site is rendered from.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"

	"go-portfolio-site/internal/domain"

	"github.com/go-playground/validator/v10"
)

type resumeRepository struct {
	resume *domain.Resume
}

// NewResumeRepository loads, decodes and validates the resume data file once
// at startup. The decoded record is read-only for the life of the process.
func NewResumeRepository(path string, validate *validator.Validate) (domain.ResumeRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume data: %w", err)
	}

	var resume domain.Resume
	if err := json.Unmarshal(raw, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume data: %w", err)
	}

	if err := validate.Struct(&resume); err != nil {
		return nil, fmt.Errorf("invalid resume data: %w", err)
	}

	return &resumeRepository{resume: &resume}, nil
}

func (r *resumeRepository) Get() (*domain.Resume, error) {
	return r.resume, nil
}
