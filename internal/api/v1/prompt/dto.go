package prompt

import "github.com/filipefdm/rocketseat-prompt-manager/internal/models"

type CreatePromptRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content"`
}

type PromptListResponse struct {
	Total int                    `json:"total"`
	Items []models.PromptSummary `json:"items"`
}
