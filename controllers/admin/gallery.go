package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
	"github.com/rafaelGenish111/leah-genish-api/utils"
)

// GetGalleryImages returns the full gallery for the back office
func GetGalleryImages(c *fiber.Ctx) error {
	var images []models.GalleryImage
	if err := db.DB.Order("display_order, id").Find(&images).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch gallery",
		})
	}
	return c.JSON(images)
}

// CreateGalleryImage uploads an image to Cloudinary and creates the gallery
// record. Metadata comes from multipart form fields alongside the file.
func CreateGalleryImage(c *fiber.Ctx) error {
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

	url, err := utils.UploadImage(file, "gallery")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload image",
		})
	}

	displayOrder, _ := strconv.Atoi(c.FormValue("display_order"))
	image := models.GalleryImage{
		TitleHe:      c.FormValue("title_he"),
		TitleEn:      c.FormValue("title_en"),
		Category:     c.FormValue("category"),
		DisplayOrder: displayOrder,
		ImageURL:     url,
	}
	if err := db.DB.Create(&image).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create gallery image",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

// UpdateGalleryImage updates image metadata (titles, category, order)
func UpdateGalleryImage(c *fiber.Ctx) error {
	id := c.Params("id")
	var image models.GalleryImage
	if err := db.DB.First(&image, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Gallery image not found",
		})
	}
	if err := c.BodyParser(&image); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := db.DB.Save(&image).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update gallery image",
		})
	}
	return c.JSON(image)
}

// DeleteGalleryImage removes a gallery record
func DeleteGalleryImage(c *fiber.Ctx) error {
	id := c.Params("id")
	var image models.GalleryImage
	if err := db.DB.First(&image, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Gallery image not found",
		})
	}
	if err := db.DB.Delete(&image).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete gallery image",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
