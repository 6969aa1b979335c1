package routes

import (
	"tracker/backend/config"
	"tracker/backend/controllers"
	"tracker/backend/lessons"
	"tracker/backend/middleware"
	"tracker/backend/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	progressStore := store.NewProgressStore(db)
	lessonSvc := lessons.NewService(cfg.LessonsDir)

	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// Curriculum views
	planController := controllers.NewPlanController(progressStore)
	app.Get("/", planController.Index)
	app.Get("/week/:week_num", planController.WeekView)

	// Progress mutations
	progressController := controllers.NewProgressController(progressStore)
	app.Post("/api/toggle_day", progressController.ToggleDay)
	app.Post("/api/update_notes", progressController.UpdateNotes)
	app.Post("/api/toggle_task", progressController.ToggleTask)
	app.Post("/api/update_task_score", progressController.UpdateTaskScore)

	// Sessions
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/login", authController.Login)
	app.Get("/logout", authController.Logout)
	app.Get("/api/session", authMiddleware, authController.Session)

	// Lessons
	lessonsController := controllers.NewLessonsController(lessonSvc)
	app.Get("/lessons", lessonsController.List)
	app.Get("/lessons/:file", lessonsController.View)
	app.Get("/api/get_lesson_content", lessonsController.GetContent)
	app.Post("/api/save_lesson", adminMiddleware, lessonsController.Save)
	app.Get("/playground", lessonsController.Playground)
}
