package models

import "time"

// DayProgress tracks completion state and notes for one curriculum day.
// The (week, day) pair is the natural key.
type DayProgress struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	Week          int        `gorm:"not null;uniqueIndex:idx_day_progress_key" json:"week"`
	Day           int        `gorm:"not null;uniqueIndex:idx_day_progress_key" json:"day"`
	Completed     bool       `gorm:"not null;default:false" json:"completed"`
	Notes         string     `gorm:"type:text;not null;default:''" json:"notes"`
	CompletedDate *time.Time `json:"completed_date"`
}

// TaskProgress tracks completion and score for one task of a curriculum day.
// The task name is the catalog's literal label, keyed as (week, day, task_name).
type TaskProgress struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Week      int    `gorm:"not null;uniqueIndex:idx_task_progress_key" json:"week"`
	Day       int    `gorm:"not null;uniqueIndex:idx_task_progress_key" json:"day"`
	TaskName  string `gorm:"size:200;not null;uniqueIndex:idx_task_progress_key" json:"task_name"`
	Completed bool   `gorm:"not null;default:false" json:"completed"`
	Score     *int   `json:"score"`
	Notes     string `gorm:"type:text;not null;default:''" json:"notes"`
}
