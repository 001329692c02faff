package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
	"github.com/rafaelGenish111/leah-genish-api/utils"
)

// GetAllArticles returns every article, drafts included
func GetAllArticles(c *fiber.Ctx) error {
	var articles []models.Article
	if err := db.DB.Order("created_at DESC").Find(&articles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch articles",
		})
	}
	return c.JSON(articles)
}

// GetArticle returns one article by ID, drafts included
func GetArticle(c *fiber.Ctx) error {
	id := c.Params("id")
	var article models.Article
	if err := db.DB.First(&article, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article not found",
		})
	}
	return c.JSON(article)
}

// CreateArticle creates a new article
func CreateArticle(c *fiber.Ctx) error {
	article := new(models.Article)
	if err := c.BodyParser(article); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := db.DB.Create(article).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create article",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(article)
}

// UpdateArticle updates an article by ID
func UpdateArticle(c *fiber.Ctx) error {
	id := c.Params("id")
	var article models.Article
	if err := db.DB.First(&article, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article not found",
		})
	}
	if err := c.BodyParser(&article); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := db.DB.Save(&article).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update article",
		})
	}
	return c.JSON(article)
}

// DeleteArticle deletes an article by ID
func DeleteArticle(c *fiber.Ctx) error {
	id := c.Params("id")
	var article models.Article
	if err := db.DB.First(&article, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article not found",
		})
	}
	if err := db.DB.Delete(&article).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete article",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadArticleImage uploads a cover image to Cloudinary and stores its URL
// on the article.
func UploadArticleImage(c *fiber.Ctx) error {
	id := c.Params("id")
	var article models.Article
	if err := db.DB.First(&article, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article not found",
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing image file",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadImage(file, "articles")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload image",
		})
	}

	article.ImageURL = url
	if err := db.DB.Save(&article).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update article",
		})
	}
	return c.JSON(article)
}
