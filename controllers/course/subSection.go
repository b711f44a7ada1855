package courseController

import (
	"fmt"
	"log"

	"github.com/Tej-ashwani/StudyNotion/database"
	"github.com/Tej-ashwani/StudyNotion/middleware"
	"github.com/Tej-ashwani/StudyNotion/models"
	"github.com/Tej-ashwani/StudyNotion/utils"
	courseValidator "github.com/Tej-ashwani/StudyNotion/validators/course"

	"github.com/gofiber/fiber/v2"
)

// loadSection fetches a section with its subsections
func loadSection(sectionID uint) (*models.Section, error) {
	var section models.Section
	if err := database.Database.Db.Preload("SubSections").First(&section, sectionID).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// CreateSubSection uploads the lecture video and attaches the subsection
func CreateSubSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateSubSection").(*courseValidator.CreateSubSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var section models.Section
	if err := db.First(&section, reqData.SectionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found", nil)
	}

	fileHeader, err := c.FormFile("videoFile")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video file is required!", nil)
	}
	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read video file!", nil)
	}

	uploaded, err := utils.UploadMedia(fileHeader.Filename, data)
	if err != nil {
		log.Printf("Error uploading video: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload video!", nil)
	}

	subSection := models.SubSection{
		SectionID:    section.ID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		TimeDuration: fmt.Sprintf("%.0f", uploaded.Duration),
		VideoURL:     uploaded.SecureURL,
	}
	if err := db.Create(&subSection).Error; err != nil {
		log.Printf("Error creating sub-section: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create sub-section!", nil)
	}

	updatedSection, err := loadSection(section.ID)
	if err != nil {
		log.Printf("Error reloading section %d: %v", section.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create sub-section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-section created successfully", updatedSection)
}

// UpdateSubSection edits a subsection, optionally replacing its video
func UpdateSubSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUpdateSubSection").(*courseValidator.UpdateSubSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var subSection models.SubSection
	if err := db.Where("id = ? AND section_id = ?", reqData.SubSectionID, reqData.SectionID).
		First(&subSection).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sub-section not found", nil)
	}

	if reqData.Title != nil {
		subSection.Title = *reqData.Title
	}
	if reqData.Description != nil {
		subSection.Description = *reqData.Description
	}

	if fileHeader, err := c.FormFile("videoFile"); err == nil {
		data, err := readMultipartFile(fileHeader)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read video file!", nil)
		}
		uploaded, err := utils.UploadMedia(fileHeader.Filename, data)
		if err != nil {
			log.Printf("Error uploading video: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload video!", nil)
		}
		subSection.VideoURL = uploaded.SecureURL
		subSection.TimeDuration = fmt.Sprintf("%.0f", uploaded.Duration)
	}

	if err := db.Save(&subSection).Error; err != nil {
		log.Printf("Error updating sub-section %d: %v", subSection.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update sub-section!", nil)
	}

	updatedSection, err := loadSection(reqData.SectionID)
	if err != nil {
		log.Printf("Error reloading section %d: %v", reqData.SectionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update sub-section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-section updated successfully", updatedSection)
}

// DeleteSubSection removes a subsection from its section
func DeleteSubSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDeleteSubSection").(*courseValidator.DeleteSubSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var subSection models.SubSection
	if err := db.Where("id = ? AND section_id = ?", reqData.SubSectionID, reqData.SectionID).
		First(&subSection).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sub-section not found", nil)
	}

	if err := db.Delete(&subSection).Error; err != nil {
		log.Printf("Error deleting sub-section %d: %v", subSection.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete sub-section!", nil)
	}

	updatedSection, err := loadSection(reqData.SectionID)
	if err != nil {
		log.Printf("Error reloading section %d: %v", reqData.SectionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete sub-section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-section deleted successfully", updatedSection)
}
