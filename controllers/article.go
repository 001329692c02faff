package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
)

// GetPublishedArticles returns published articles, newest first. Supports an
// optional category filter.
func GetPublishedArticles(c *fiber.Ctx) error {
	query := db.DB.Where("published = ?", true).Order("created_at DESC")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var articles []models.Article
	if err := query.Find(&articles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch articles",
		})
	}
	return c.JSON(articles)
}

func GetArticle(c *fiber.Ctx) error {
	id := c.Params("id")
	var article models.Article
	if db.DB.First(&article, id).RowsAffected == 0 || !article.Published {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article not found",
		})
	}
	return c.JSON(article)
}
