package controllers

import (
	"tracker/backend/store"
	"tracker/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Store *store.ProgressStore
}

func NewProgressController(st *store.ProgressStore) *ProgressController {
	return &ProgressController{Store: st}
}

// Pointer fields distinguish absent from zero so missing keys fail fast.
type dayRequest struct {
	Week *int `json:"week"`
	Day  *int `json:"day"`
}

func (r *dayRequest) validate() error {
	if r.Week == nil || r.Day == nil {
		return fiber.NewError(fiber.StatusBadRequest, "week and day are required")
	}
	if *r.Week <= 0 || *r.Day <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "week and day must be positive")
	}
	return nil
}

// ToggleDay flips a day's completion state.
func (pc *ProgressController) ToggleDay(c *fiber.Ctx) error {
	var input dayRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := input.validate(); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	completed, err := pc.Store.ToggleDay(*input.Week, *input.Day)
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	return c.JSON(fiber.Map{"success": true, "completed": completed})
}

// UpdateNotes overwrites a day's notes. Notes default to empty when omitted.
func (pc *ProgressController) UpdateNotes(c *fiber.Ctx) error {
	var input struct {
		dayRequest
		Notes *string `json:"notes"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := input.validate(); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	notes := ""
	if input.Notes != nil {
		notes = *input.Notes
	}

	if err := pc.Store.UpdateDayNotes(*input.Week, *input.Day, notes); err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	return c.JSON(fiber.Map{"success": true})
}

// ToggleTask flips a task's completion state.
func (pc *ProgressController) ToggleTask(c *fiber.Ctx) error {
	var input struct {
		dayRequest
		TaskName *string `json:"task_name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := input.validate(); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	if input.TaskName == nil || *input.TaskName == "" {
		return utils.BadRequest(c, "task_name is required")
	}

	completed, err := pc.Store.ToggleTask(*input.Week, *input.Day, *input.TaskName)
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	return c.JSON(fiber.Map{"success": true, "completed": completed})
}

// UpdateTaskScore overwrites a task's score.
func (pc *ProgressController) UpdateTaskScore(c *fiber.Ctx) error {
	var input struct {
		dayRequest
		TaskName *string `json:"task_name"`
		Score    *int    `json:"score"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := input.validate(); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	if input.TaskName == nil || *input.TaskName == "" {
		return utils.BadRequest(c, "task_name is required")
	}
	if input.Score == nil {
		return utils.BadRequest(c, "score is required")
	}

	if err := pc.Store.UpdateTaskScore(*input.Week, *input.Day, *input.TaskName, *input.Score); err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	return c.JSON(fiber.Map{"success": true})
}
