// handlers/groups.go
package handlers

import (
	"errors"

	"cyberhunt/middleware"
	"cyberhunt/storage"

	"github.com/gofiber/fiber/v2"
)

type GroupPhotoRequest struct {
	PhotoData string `json:"photoData" validate:"required"`
}

// SaveGroupPhoto stores the caller's group photo payload.
func SaveGroupPhoto(c *fiber.Ctx) error {
	groupCode, err := middleware.GetGroupCode(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req GroupPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Photo data is required"})
	}

	if err := game.SaveGroupPhoto(groupCode, req.PhotoData); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Failed to save photo"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Photo saved"})
}

// GetGroupPhoto returns the caller's stored group photo.
func GetGroupPhoto(c *fiber.Ctx) error {
	groupCode, err := middleware.GetGroupCode(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	photo, err := game.GroupPhoto(groupCode)
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "No photo saved for this group"})
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch photo"})
	}

	return c.JSON(fiber.Map{"photoData": photo})
}

// GetGroupProgress returns the caller's group snapshot.
func GetGroupProgress(c *fiber.Ctx) error {
	groupCode, err := middleware.GetGroupCode(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	snapshot, err := game.Snapshot(groupCode)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch group progress"})
	}

	return c.JSON(snapshot)
}

// GetGroupMembers lists the caller's teammates with public fields only.
func GetGroupMembers(c *fiber.Ctx) error {
	groupCode, err := middleware.GetGroupCode(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	members, err := game.GroupMembers(groupCode)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch group members"})
	}

	return c.JSON(members)
}

// GetAllGroupsProgress returns the snapshot of every group, for the shared
// progress tracker screen.
func GetAllGroupsProgress(c *fiber.Ctx) error {
	snapshots, err := game.AllSnapshots()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch groups progress"})
	}

	return c.JSON(snapshots)
}
