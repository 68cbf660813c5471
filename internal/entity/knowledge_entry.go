package entity

import "time"

// KnowledgeEntry is a serialized artifact stored in the knowledge repository,
// addressed by a category label.
type KnowledgeEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Category  string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the KnowledgeEntry model.
func (KnowledgeEntry) TableName() string {
	return "knowledge_entries"
}
