package controllers

import (
	"strconv"

	"tracker/backend/plan"
	"tracker/backend/store"
	"tracker/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type PlanController struct {
	Store *store.ProgressStore
}

func NewPlanController(st *store.ProgressStore) *PlanController {
	return &PlanController{Store: st}
}

// Index returns the full curriculum together with the overall stats.
func (pc *PlanController) Index(c *fiber.Ctx) error {
	stats, err := pc.Store.Stats()
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"weeks": plan.Weeks,
		"stats": stats,
	})
}

// WeekView returns one week's days with the stored progress merged in. Tasks
// are re-keyed by task name for the frontend. An unknown week redirects home.
func (pc *PlanController) WeekView(c *fiber.Ctx) error {
	weekNum, err := strconv.Atoi(c.Params("week_num"))
	if err != nil {
		return c.Redirect("/")
	}

	week, ok := plan.WeekByNum(weekNum)
	if !ok {
		return c.Redirect("/")
	}

	progress := fiber.Map{}
	for _, day := range week.Days {
		rec, err := pc.Store.GetDay(week.Num, day.Num)
		if err != nil {
			return utils.InternalServerError(c, err.Error())
		}

		tasks, err := pc.Store.GetTasks(week.Num, day.Num)
		if err != nil {
			return utils.InternalServerError(c, err.Error())
		}

		taskMap := fiber.Map{}
		for _, t := range tasks {
			taskMap[t.TaskName] = fiber.Map{
				"completed": t.Completed,
				"score":     t.Score,
			}
		}

		dayCompleted := false
		notes := ""
		if rec != nil {
			dayCompleted = rec.Completed
			notes = rec.Notes
		}

		progress[strconv.Itoa(day.Num)] = fiber.Map{
			"day_completed": dayCompleted,
			"notes":         notes,
			"tasks":         taskMap,
		}
	}

	return c.JSON(fiber.Map{
		"week_num": week.Num,
		"week":     week,
		"progress": progress,
	})
}
