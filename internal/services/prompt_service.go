package services

import (
	"context"
	"errors"
	"strings"

	"github.com/filipefdm/rocketseat-prompt-manager/internal/models"
	"github.com/filipefdm/rocketseat-prompt-manager/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPromptNotFound      = errors.New("prompt not found")
	ErrPromptTitleRequired = errors.New("prompt title is required")
)

type PromptService struct {
	repo repository.PromptRepository
}

func NewPromptService(repo repository.PromptRepository) *PromptService {
	return &PromptService{repo: repo}
}

// Search lists every prompt when term is blank and otherwise searches by the
// trimmed term. Exactly one repository call is made and its error is
// returned unchanged.
func (s *PromptService) Search(ctx context.Context, term string) ([]models.Prompt, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.repo.FindMany(ctx)
	}
	return s.repo.SearchMany(ctx, term)
}

// Get retrieves a prompt by ID
func (s *PromptService) Get(ctx context.Context, id string) (*models.Prompt, error) {
	prompt, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPromptNotFound
	}
	if err != nil {
		return nil, err
	}
	return prompt, nil
}

// Create stores a new prompt
func (s *PromptService) Create(ctx context.Context, title, content string) (*models.Prompt, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrPromptTitleRequired
	}

	prompt := &models.Prompt{
		Title:   title,
		Content: content,
	}
	if err := s.repo.Create(ctx, prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}
