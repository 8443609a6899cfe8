package repository

import (
	"context"
	"database/sql/driver"
	"strings"

	"github.com/filipefdm/rocketseat-prompt-manager/internal/models"
	sqlitedriver "github.com/glebarez/go-sqlite"
	"gorm.io/gorm"
)

// SQLite's LOWER only folds ASCII, so searches there go through fold.
func init() {
	sqlitedriver.MustRegisterDeterministicScalarFunction("fold", 1, fold)
}

func fold(_ *sqlitedriver.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// PromptRepository is the persistence contract for prompts.
// List results are always ordered newest first.
type PromptRepository interface {
	FindMany(ctx context.Context) ([]models.Prompt, error)
	// SearchMany matches term case-insensitively against title or content.
	SearchMany(ctx context.Context, term string) ([]models.Prompt, error)
	FindByID(ctx context.Context, id string) (*models.Prompt, error)
	Create(ctx context.Context, prompt *models.Prompt) error
}

type promptRepository struct {
	db *gorm.DB
}

func NewPromptRepository(db *gorm.DB) PromptRepository {
	return &promptRepository{db: db}
}

func (r *promptRepository) FindMany(ctx context.Context) ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := listQuery(r.db.WithContext(ctx)).Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

func (r *promptRepository) SearchMany(ctx context.Context, term string) ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := searchQuery(r.db.WithContext(ctx), term).Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

func (r *promptRepository) FindByID(ctx context.Context, id string) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&prompt).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (r *promptRepository) Create(ctx context.Context, prompt *models.Prompt) error {
	return r.db.WithContext(ctx).Create(prompt).Error
}

func listQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Prompt{}).Order("created_at desc")
}

// searchQuery falls back to the unfiltered list when term is blank.
func searchQuery(db *gorm.DB, term string) *gorm.DB {
	term = strings.TrimSpace(term)
	q := listQuery(db)
	if term == "" {
		return q
	}

	pattern := "%" + escapeLike(term) + "%"
	return q.Where(containsPredicate(db.Dialector.Name()), pattern, pattern)
}

// containsPredicate matches title OR content against a LIKE pattern, ignoring case.
func containsPredicate(dialect string) string {
	switch dialect {
	case "postgres":
		return `title ILIKE ? ESCAPE '\' OR content ILIKE ? ESCAPE '\'`
	case "sqlite":
		return `fold(title) LIKE fold(?) ESCAPE '\' OR fold(content) LIKE fold(?) ESCAPE '\'`
	default:
		return `LOWER(title) LIKE LOWER(?) ESCAPE '\' OR LOWER(content) LIKE LOWER(?) ESCAPE '\'`
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
