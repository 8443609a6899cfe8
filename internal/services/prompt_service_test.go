package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/filipefdm/rocketseat-prompt-manager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRepository filters in memory and records how it was called.
type fakeRepository struct {
	prompts []models.Prompt
	err     error

	findManyCalls   int
	searchManyCalls int
	searchTerms     []string
	created         []*models.Prompt
}

func (f *fakeRepository) FindMany(ctx context.Context) ([]models.Prompt, error) {
	f.findManyCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.prompts, nil
}

func (f *fakeRepository) SearchMany(ctx context.Context, term string) ([]models.Prompt, error) {
	f.searchManyCalls++
	f.searchTerms = append(f.searchTerms, term)
	if f.err != nil {
		return nil, f.err
	}

	term = strings.ToLower(term)
	var out []models.Prompt
	for _, p := range f.prompts {
		if strings.Contains(strings.ToLower(p.Title), term) || strings.Contains(strings.ToLower(p.Content), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*models.Prompt, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.prompts {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) Create(ctx context.Context, prompt *models.Prompt) error {
	if f.err != nil {
		return f.err
	}
	prompt.ID = "generated"
	f.created = append(f.created, prompt)
	return nil
}

func newFakeRepository() *fakeRepository {
	now := time.Now()
	return &fakeRepository{
		prompts: []models.Prompt{
			{ID: "2", Title: "Title 02", Content: "Content 02", CreatedAt: now, UpdatedAt: now},
			{ID: "1", Title: "Title 01", Content: "Content 01", CreatedAt: now.Add(-time.Minute), UpdatedAt: now},
		},
	}
}

func TestSearchEmptyTermListsEverything(t *testing.T) {
	repo := newFakeRepository()
	service := NewPromptService(repo)

	results, err := service.Search(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, 1, repo.findManyCalls)
	assert.Equal(t, 0, repo.searchManyCalls)
}

func TestSearchBlankTermListsEverything(t *testing.T) {
	for _, term := range []string{"   ", "\t", "\n  \t"} {
		repo := newFakeRepository()
		service := NewPromptService(repo)

		results, err := service.Search(context.Background(), term)

		require.NoError(t, err)
		assert.Equal(t, repo.prompts, results)
		assert.Equal(t, 1, repo.findManyCalls, "term %q", term)
		assert.Equal(t, 0, repo.searchManyCalls, "term %q", term)
	}
}

func TestSearchFiltersByTerm(t *testing.T) {
	repo := newFakeRepository()
	service := NewPromptService(repo)

	results, err := service.Search(context.Background(), "title 01")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "1", results[0].ID)
	assert.Equal(t, 0, repo.findManyCalls)
}

func TestSearchTrimsTerm(t *testing.T) {
	repo := newFakeRepository()
	service := NewPromptService(repo)

	results, err := service.Search(context.Background(), "  Title 02  ")

	require.NoError(t, err)
	assert.Equal(t, []string{"Title 02"}, repo.searchTerms)
	assert.Equal(t, 1, repo.searchManyCalls)
	assert.Equal(t, 0, repo.findManyCalls)
	require.Len(t, results, 1)
	assert.Equal(t, "2", results[0].ID)
}

func TestSearchPassesTrimmedMultiWordTerm(t *testing.T) {
	repo := newFakeRepository()
	service := NewPromptService(repo)

	_, err := service.Search(context.Background(), "  AI Prompt   ")

	require.NoError(t, err)
	assert.Equal(t, []string{"AI Prompt"}, repo.searchTerms)
}

func TestSearchPropagatesRepositoryError(t *testing.T) {
	repoErr := errors.New("database error")

	repo := newFakeRepository()
	repo.err = repoErr
	service := NewPromptService(repo)

	_, err := service.Search(context.Background(), "ai")
	assert.Same(t, repoErr, err)

	_, err = service.Search(context.Background(), "")
	assert.Same(t, repoErr, err)
	assert.Equal(t, 1, repo.findManyCalls)
	assert.Equal(t, 1, repo.searchManyCalls)
}

func TestSearchIsIdempotent(t *testing.T) {
	repo := newFakeRepository()
	service := NewPromptService(repo)

	first, err := service.Search(context.Background(), "content")
	require.NoError(t, err)
	second, err := service.Search(context.Background(), "content")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGet(t *testing.T) {
	service := NewPromptService(newFakeRepository())

	prompt, err := service.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Title 01", prompt.Title)

	_, err = service.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestGetPropagatesOtherErrors(t *testing.T) {
	repo := newFakeRepository()
	repo.err = errors.New("connection refused")
	service := NewPromptService(repo)

	_, err := service.Get(context.Background(), "1")
	assert.EqualError(t, err, "connection refused")
}

func TestCreate(t *testing.T) {
	repo := newFakeRepository()
	service := NewPromptService(repo)

	prompt, err := service.Create(context.Background(), "  New prompt ", "Body")

	require.NoError(t, err)
	assert.Equal(t, "generated", prompt.ID)
	assert.Equal(t, "New prompt", prompt.Title)
	assert.Len(t, repo.created, 1)
}

func TestCreateRequiresTitle(t *testing.T) {
	repo := newFakeRepository()
	service := NewPromptService(repo)

	_, err := service.Create(context.Background(), "   ", "Body")

	assert.ErrorIs(t, err, ErrPromptTitleRequired)
	assert.Empty(t, repo.created)
}
