package usecase

import (
	"fmt"
	"strings"

	"go-portfolio-site/internal/domain"
)

// ErrProjectNotFound is returned when no project matches the requested slug.
var ErrProjectNotFound = fmt.Errorf("project not found")

type resumeUsecase struct {
	repo domain.ResumeRepository
}

// NewResumeUsecase creates a new resume usecase
func NewResumeUsecase(repo domain.ResumeRepository) domain.ResumeUsecase {
	return &resumeUsecase{repo: repo}
}

func (uc *resumeUsecase) GetResume() (*domain.Resume, error) {
	return uc.repo.Get()
}

func (uc *resumeUsecase) GetProjectBySlug(slug string) (*domain.Project, error) {
	resume, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	for i := range resume.Projects {
		if resume.Projects[i].Slug == slug {
			return &resume.Projects[i], nil
		}
	}
	return nil, ErrProjectNotFound
}

func (uc *resumeUsecase) GetProjectsByTech(tech string) ([]domain.Project, error) {
	resume, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(tech)
	var matched []domain.Project
	for _, p := range resume.Projects {
		for _, t := range p.Tech {
			if strings.Contains(strings.ToLower(t), needle) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched, nil
}

// GetAllSkills flattens the categorized skill lists in display order.
func (uc *resumeUsecase) GetAllSkills() ([]domain.Skill, error) {
	resume, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	var skills []domain.Skill
	for _, category := range domain.SkillCategories {
		for _, name := range resume.Skills[category] {
			skills = append(skills, domain.Skill{Name: name, Category: category})
		}
	}
	return skills, nil
}
