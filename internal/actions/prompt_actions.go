package actions

import (
	"context"
	"net/url"
	"strings"

	"github.com/filipefdm/rocketseat-prompt-manager/internal/models"
	"github.com/filipefdm/rocketseat-prompt-manager/pkg/logger"
	"go.uber.org/zap"
)

const SearchPromptsFailedMessage = "Falha ao buscar prompts."

// PromptSearcher is satisfied by services.PromptService.
type PromptSearcher interface {
	Search(ctx context.Context, term string) ([]models.Prompt, error)
}

// SearchPromptResult is what the search form receives. Prompts is omitted on
// failure so the client keeps the list it already shows.
type SearchPromptResult struct {
	Success bool            `json:"success"`
	Prompts []models.Prompt `json:"prompts,omitzero"`
	Message string          `json:"message,omitempty"`
}

// SearchPromptAction runs a search for the form's "q" field.
func SearchPromptAction(ctx context.Context, searcher PromptSearcher, form url.Values) SearchPromptResult {
	term := strings.TrimSpace(form.Get("q"))

	prompts, err := searcher.Search(ctx, term)
	if err != nil {
		logger.Log.Error("Failed to search prompts", zap.String("term", term), zap.Error(err))
		return SearchPromptResult{
			Success: false,
			Message: SearchPromptsFailedMessage,
		}
	}

	if prompts == nil {
		prompts = []models.Prompt{}
	}
	return SearchPromptResult{
		Success: true,
		Prompts: prompts,
	}
}
