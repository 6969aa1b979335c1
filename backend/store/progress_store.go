// Package store owns persistence for day and task progress. Records are
// created lazily on first mutation and keyed by their natural keys; uniqueness
// is enforced by composite indexes and ON CONFLICT upserts, so concurrent
// mutations on one key cannot create duplicate rows or lose updates.
package store

import (
	"errors"
	"time"

	"tracker/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressStore struct {
	DB *gorm.DB
}

func NewProgressStore(db *gorm.DB) *ProgressStore {
	return &ProgressStore{DB: db}
}

var dayKey = []clause.Column{{Name: "week"}, {Name: "day"}}
var taskKey = []clause.Column{{Name: "week"}, {Name: "day"}, {Name: "task_name"}}

// GetDay returns the progress record for a (week, day) pair, or nil when none
// exists. It never creates.
func (s *ProgressStore) GetDay(week, day int) (*models.DayProgress, error) {
	var rec models.DayProgress
	err := s.DB.Where("week = ? AND day = ?", week, day).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ToggleDay flips the completed flag for a (week, day) pair, creating the
// record first if needed, and returns the new value. CompletedDate is set
// when the day becomes complete and cleared when it stops being complete.
// The flip is a single UPDATE inside a transaction.
func (s *ProgressStore) ToggleDay(week, day int) (bool, error) {
	var completed bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		rec := models.DayProgress{Week: week, Day: day}
		if err := tx.Clauses(clause.OnConflict{Columns: dayKey, DoNothing: true}).
			Create(&rec).Error; err != nil {
			return err
		}

		// Both assignments read the pre-update value of completed.
		if err := tx.Model(&models.DayProgress{}).
			Where("week = ? AND day = ?", week, day).
			UpdateColumns(map[string]interface{}{
				"completed":      gorm.Expr("NOT completed"),
				"completed_date": gorm.Expr("CASE WHEN completed THEN NULL ELSE ? END", time.Now()),
			}).Error; err != nil {
			return err
		}

		var out models.DayProgress
		if err := tx.Where("week = ? AND day = ?", week, day).First(&out).Error; err != nil {
			return err
		}
		completed = out.Completed
		return nil
	})
	return completed, err
}

// UpdateDayNotes overwrites the notes for a (week, day) pair verbatim,
// creating the record (completed=false) if it does not exist yet.
func (s *ProgressStore) UpdateDayNotes(week, day int, notes string) error {
	rec := models.DayProgress{Week: week, Day: day, Notes: notes}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   dayKey,
		DoUpdates: clause.Assignments(map[string]interface{}{"notes": notes}),
	}).Create(&rec).Error
}

// GetTasks returns all task records for a (week, day) pair.
func (s *ProgressStore) GetTasks(week, day int) ([]models.TaskProgress, error) {
	var recs []models.TaskProgress
	err := s.DB.Where("week = ? AND day = ?", week, day).Find(&recs).Error
	return recs, err
}

// ToggleTask flips the completed flag for a (week, day, taskName) triple and
// returns the new value. The task name is not checked against the catalog;
// any name can be tracked.
func (s *ProgressStore) ToggleTask(week, day int, taskName string) (bool, error) {
	var completed bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		rec := models.TaskProgress{Week: week, Day: day, TaskName: taskName}
		if err := tx.Clauses(clause.OnConflict{Columns: taskKey, DoNothing: true}).
			Create(&rec).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.TaskProgress{}).
			Where("week = ? AND day = ? AND task_name = ?", week, day, taskName).
			UpdateColumn("completed", gorm.Expr("NOT completed")).Error; err != nil {
			return err
		}

		var out models.TaskProgress
		if err := tx.Where("week = ? AND day = ? AND task_name = ?", week, day, taskName).
			First(&out).Error; err != nil {
			return err
		}
		completed = out.Completed
		return nil
	})
	return completed, err
}

// UpdateTaskScore overwrites the score for a (week, day, taskName) triple,
// creating the record (completed=false) if needed. No range validation.
func (s *ProgressStore) UpdateTaskScore(week, day int, taskName string, score int) error {
	rec := models.TaskProgress{Week: week, Day: day, TaskName: taskName, Score: &score}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   taskKey,
		DoUpdates: clause.Assignments(map[string]interface{}{"score": score}),
	}).Create(&rec).Error
}
