package controllers

import (
	"errors"

	"tracker/backend/lessons"
	"tracker/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type LessonsController struct {
	Lessons *lessons.Service
}

func NewLessonsController(svc *lessons.Service) *LessonsController {
	return &LessonsController{Lessons: svc}
}

// List returns the lesson manifest.
func (lc *LessonsController) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"lessons": lc.Lessons.List(),
	})
}

// View renders one lesson to HTML with prev/next navigation.
func (lc *LessonsController) View(c *fiber.Ctx) error {
	rendered, err := lc.Lessons.Render(c.Params("file"))
	if err != nil {
		return lessonError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"lesson":  rendered,
	})
}

// GetContent returns the raw Markdown of a lesson for the editor.
func (lc *LessonsController) GetContent(c *fiber.Ctx) error {
	content, err := lc.Lessons.Read(c.Query("lesson_file"))
	if err != nil {
		return lessonError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"content": content,
	})
}

// Save overwrites a lesson's content. Admin-gated at the route layer.
func (lc *LessonsController) Save(c *fiber.Ctx) error {
	var input struct {
		LessonFile *string `json:"lesson_file"`
		Content    *string `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.LessonFile == nil || input.Content == nil {
		return utils.BadRequest(c, "lesson_file and content are required")
	}

	if err := lc.Lessons.Write(*input.LessonFile, *input.Content); err != nil {
		if errors.Is(err, lessons.ErrInvalidName) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalServerError(c, err.Error())
	}

	return c.JSON(fiber.Map{"success": true})
}

// Playground serves the static code playground page; it keeps no backend state.
func (lc *LessonsController) Playground(c *fiber.Ctx) error {
	return c.SendFile("./static/playground.html")
}

func lessonError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, lessons.ErrInvalidName):
		return utils.BadRequest(c, err.Error())
	case errors.Is(err, lessons.ErrNotFound):
		return utils.NotFound(c, err.Error())
	default:
		return utils.InternalServerError(c, err.Error())
	}
}
