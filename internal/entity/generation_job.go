package entity

import (
	"database/sql"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GenerationStatus represents the lifecycle state of a generation run.
type GenerationStatus string

const (
	StatusRunning   GenerationStatus = "RUNNING"
	StatusCompleted GenerationStatus = "COMPLETED"
	StatusFailed    GenerationStatus = "FAILED"
)

// GenerationJob describes a recurring strategy generation task: a snapshot of
// business data plus the market trend sources to analyze against it.
type GenerationJob struct {
	ID           uint                 `gorm:"primaryKey" json:"id"`
	Name         string               `gorm:"type:varchar(100);not null" json:"name"`
	Description  string               `gorm:"type:text" json:"description"`
	BusinessData datatypes.JSON       `gorm:"type:jsonb" json:"business_data"`
	MarketTrends datatypes.JSON       `gorm:"type:jsonb" json:"market_trends"`
	FeedURLs     datatypes.JSON       `gorm:"type:jsonb" json:"feed_urls"`
	Notify       bool                 `gorm:"not null;default:false" json:"notify"`
	Timeout      int                  `gorm:"not null;default:60" json:"timeout"`
	Schedules    []GenerationSchedule `gorm:"foreignKey:JobID" json:"schedules"`
	CreatedAt    time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt       `gorm:"index" json:"deleted_at"`
}

// TableName specifies the table name for the GenerationJob model.
func (GenerationJob) TableName() string {
	return "generation_jobs"
}

// GenerationSchedule is a cron schedule attached to a generation job.
type GenerationSchedule struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	JobID          uint         `gorm:"not null;index" json:"job_id"`
	CronExpression string       `gorm:"type:varchar(100);not null" json:"cron_expression"`
	IsActive       bool         `gorm:"not null;default:true" json:"is_active"`
	NextExecution  sql.NullTime `json:"next_execution"`
	LastExecution  sql.NullTime `json:"last_execution"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the GenerationSchedule model.
func (GenerationSchedule) TableName() string {
	return "generation_schedules"
}

// GenerationHistory records a single execution of a generation job.
type GenerationHistory struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	JobID         uint             `gorm:"not null;index" json:"job_id"`
	ScheduleID    uint             `json:"schedule_id"`
	Status        GenerationStatus `gorm:"type:varchar(20);not null" json:"status"`
	StrategyCount int              `gorm:"not null;default:0" json:"strategy_count"`
	Output        sql.NullString   `gorm:"type:text" json:"output"`
	ErrorMessage  sql.NullString   `gorm:"type:text" json:"error_message"`
	StartedAt     time.Time        `gorm:"not null" json:"started_at"`
	CompletedAt   sql.NullTime     `json:"completed_at"`
}

// TableName specifies the table name for the GenerationHistory model.
func (GenerationHistory) TableName() string {
	return "generation_history"
}
