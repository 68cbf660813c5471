package repository

import (
	"context"

	"golang-monetization-engine/internal/entity"

	"gorm.io/gorm"
)

// KnowledgeRepository persists serialized artifacts addressed by category.
type KnowledgeRepository interface {
	Save(ctx context.Context, serialized, category string) error
	FindByCategory(ctx context.Context, category string, limit int) ([]entity.KnowledgeEntry, error)
}

type knowledgeRepository struct {
	db *gorm.DB
}

// NewKnowledgeRepository creates a new GORM-based knowledge repository.
func NewKnowledgeRepository(db *gorm.DB) KnowledgeRepository {
	return &knowledgeRepository{db: db}
}

// Save stores a serialized value under the given category.
func (r *knowledgeRepository) Save(ctx context.Context, serialized, category string) error {
	entry := &entity.KnowledgeEntry{
		Category: category,
		Content:  serialized,
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindByCategory returns the most recent entries for a category.
func (r *knowledgeRepository) FindByCategory(ctx context.Context, category string, limit int) ([]entity.KnowledgeEntry, error) {
	var entries []entity.KnowledgeEntry
	q := r.db.WithContext(ctx).Where("category = ?", category).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
