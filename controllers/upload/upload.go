package uploadController

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/yashsingh9651/arvan-backend/common"
	"github.com/yashsingh9651/arvan-backend/utils"
)

// Uploads above this size are rejected before hitting the image host
const maxUploadBytes = 30 * 1024 * 1024

type Controller struct {
	cloudinary *utils.CloudinaryClient
}

func New(cloudinary *utils.CloudinaryClient) *Controller {
	return &Controller{cloudinary: cloudinary}
}

func (ctrl *Controller) uploadOne(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadBytes {
		return "", common.NewValidationError(map[string]string{"file": "File exceeds the 30MB limit!"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", common.NewInternal("Failed to read uploaded file!", err)
	}
	defer file.Close()

	url, err := ctrl.cloudinary.Upload(fileHeader.Filename, file)
	if err != nil {
		return "", common.NewInternal("Failed to upload file!", err)
	}
	return url, nil
}

// UploadSingle stores one file and returns its hosted URL
func (ctrl *Controller) UploadSingle(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return common.NewNotFound("No file was uploaded")
	}

	url, err := ctrl.uploadOne(fileHeader)
	if err != nil {
		return err
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "File uploaded.", fiber.Map{"url": url})
}

// UploadMultiple stores up to ten files and returns their hosted URLs
func (ctrl *Controller) UploadMultiple(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return common.NewNotFound("No files were uploaded")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return common.NewNotFound("No files were uploaded")
	}
	if len(files) > 10 {
		return common.NewValidationError(map[string]string{"files": "At most 10 files per request!"})
	}

	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		url, err := ctrl.uploadOne(fileHeader)
		if err != nil {
			return err
		}
		urls = append(urls, url)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Files uploaded.", fiber.Map{"urls": urls})
}
