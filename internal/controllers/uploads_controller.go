package controllers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/codebem/plataforma-backend/internal/config"
	"github.com/codebem/plataforma-backend/internal/content"
	"github.com/codebem/plataforma-backend/internal/storage"
	"github.com/codebem/plataforma-backend/internal/utils"
)

// extByMIME is the image allow-list; anything else is rejected.
var extByMIME = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type UploadsController struct {
	Storage storage.ObjectStorage
	Cfg     *config.Config
}

func NewUploadsController(s storage.ObjectStorage, cfg *config.Config) *UploadsController {
	return &UploadsController{Storage: s, Cfg: cfg}
}

// UploadImage accepts one image under the configured size ceiling,
// sniffs its content type against the allow-list and returns the public
// URL for use in avatar/banner/course-image fields.
func (uc *UploadsController) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequest(c, "Missing file field")
	}
	if fileHeader.Size > uc.Cfg.UploadMaxBytes {
		return utils.Error(c, fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("File exceeds the %d MB limit", uc.Cfg.UploadMaxBytes>>20))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return utils.InternalServerError(c, "Could not read upload")
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return utils.InternalServerError(c, "Could not read upload")
	}
	head = head[:n]

	ext, ok := extByMIME[http.DetectContentType(head)]
	if !ok {
		return utils.Error(c, fiber.StatusUnsupportedMediaType,
			"Only png, jpeg, gif and webp images are accepted")
	}

	name := content.NewID() + ext
	url, err := uc.Storage.Save(name, io.MultiReader(bytes.NewReader(head), f))
	if err != nil {
		return utils.PersistenceFailed(c, "Could not store upload, please retry")
	}

	return utils.Created(c, fiber.Map{"url": url})
}
