package store

import (
	"tracker/backend/models"
	"tracker/backend/plan"
)

// Stats summarizes overall progress. Totals come from the static catalog;
// completed counts are global row counts. The percentage is driven by day
// completion only — task completion deliberately does not influence it.
type Stats struct {
	TotalDays          int   `json:"total_days"`
	CompletedDays      int64 `json:"completed_days"`
	TotalTasks         int   `json:"total_tasks"`
	CompletedTasks     int64 `json:"completed_tasks"`
	ProgressPercentage int   `json:"progress_percentage"`
}

// Stats computes the overall completion summary.
func (s *ProgressStore) Stats() (Stats, error) {
	stats := Stats{
		TotalDays:  plan.TotalDays(),
		TotalTasks: plan.TotalTasks(),
	}

	if err := s.DB.Model(&models.DayProgress{}).
		Where("completed = ?", true).
		Count(&stats.CompletedDays).Error; err != nil {
		return Stats{}, err
	}

	if err := s.DB.Model(&models.TaskProgress{}).
		Where("completed = ?", true).
		Count(&stats.CompletedTasks).Error; err != nil {
		return Stats{}, err
	}

	if stats.TotalDays > 0 {
		stats.ProgressPercentage = int(stats.CompletedDays) * 100 / stats.TotalDays
	}

	return stats, nil
}
