package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prompt is a stored title + content record.
type Prompt struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PromptSummary is the projection used to render prompt lists.
type PromptSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BeforeCreate assigns a UUID to prompts created without an ID.
func (p *Prompt) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p Prompt) Summary() PromptSummary {
	return PromptSummary{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
	}
}

// Summaries projects prompts preserving their order. It never returns nil.
func Summaries(prompts []Prompt) []PromptSummary {
	summaries := make([]PromptSummary, 0, len(prompts))
	for _, p := range prompts {
		summaries = append(summaries, p.Summary())
	}
	return summaries
}
