package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/controllers"
	"github.com/rafaelGenish111/leah-genish-api/controllers/admin"
	"github.com/rafaelGenish111/leah-genish-api/middleware"
)

// SetupArticleRoutes configures the public article pages and the admin CRUD
func SetupArticleRoutes(app *fiber.App) {
	article := app.Group("/api/articles")
	article.Get("/", controllers.GetPublishedArticles)
	article.Get("/:id", controllers.GetArticle)

	adminArticle := app.Group("/api/admin/articles", middleware.Protected(), middleware.RequireRole("admin"))
	adminArticle.Get("/", admin.GetAllArticles)
	adminArticle.Get("/:id", admin.GetArticle)
	adminArticle.Post("/", admin.CreateArticle)
	adminArticle.Put("/:id", admin.UpdateArticle)
	adminArticle.Post("/:id/image", admin.UploadArticleImage)
	adminArticle.Delete("/:id", admin.DeleteArticle)
}
