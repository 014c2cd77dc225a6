package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"printfolio/internal/dto"
	"printfolio/internal/middleware"
	"printfolio/internal/model"
	"printfolio/internal/usecase"
	"printfolio/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxUploadSize = 10 * 1024 * 1024 // 10 MiB

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// uploadFilename keeps the client's name for display but prefixes a fresh id
// so concurrent uploads with the same name never collide on disk. Directory
// components in the client name are stripped.
func uploadFilename(original string) string {
	return uuid.NewString() + "-" + filepath.Base(original)
}

type PortfolioHandler struct {
	uc *usecase.PortfolioUsecase
}

func NewPortfolioHandler(uc *usecase.PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

func (h *PortfolioHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/runs", middleware.RateLimiter(5, 1*time.Minute), h.Upload)
	app.Get("/api/runs", h.List)
	app.Get("/api/runs/:id", h.Get)
	app.Put("/api/runs/:id/cv", h.SaveCV)
	app.Get("/api/runs/:id/template-suggestion", h.SuggestTemplate)
	app.Post("/api/runs/:id/template", h.SelectTemplate)
	app.Post("/api/runs/:id/generate", middleware.RateLimiter(2, 1*time.Minute), h.Generate)
	app.Get("/api/runs/:id/preview", h.Preview)
	app.Get("/api/runs/:id/download", h.Download)
	app.Post("/api/runs/:id/deploy", h.Deploy)
	app.Get("/api/templates", h.Templates)
	app.Post("/api/templates/embeddings", h.SeedTemplateEmbeddings)
}

func (h *PortfolioHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("cv")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "cv file is required",
		}, err)
	}

	if file.Size > maxUploadSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusRequestEntityTooLarge,
			Message: "cv file size is too large (max 10MB)",
		}, nil)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnsupportedMediaType,
			Message: "unsupported cv file type (pdf, docx or txt only)",
		}, nil)
	}

	uploadDir := "./uploads/cv"
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save cv file",
		}, err)
	}
	savePath := filepath.Join(uploadDir, uploadFilename(file.Filename))
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save cv file",
		}, err)
	}

	run, err := h.uc.Upload(c.Context(), file.Filename, savePath)
	if err != nil {
		var extractionErr *util.ExtractionError
		if errors.As(err, &extractionErr) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnprocessableEntity,
				Message: "failed to extract cv text, please re-upload a readable file",
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to process cv upload",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success upload cv",
		Data:    toRunDTO(run),
	})
}

func (h *PortfolioHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	runs, pagination, err := h.uc.List(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list runs",
		}, err)
	}

	data := make([]dto.PortfolioRunDTO, 0, len(runs))
	for i := range runs {
		data = append(data, toRunDTO(&runs[i]))
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list runs",
		Data:       data,
		Pagination: pagination,
	})
}

func (h *PortfolioHandler) Get(c *fiber.Ctx) error {
	run, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return h.runError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get run",
		Data:    toRunDTO(run),
	})
}

func (h *PortfolioHandler) SaveCV(c *fiber.Ctx) error {
	var record model.CVRecord
	if err := c.BodyParser(&record); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid cv payload",
		}, err)
	}

	run, err := h.uc.SaveCV(c.Params("id"), record)
	if err != nil {
		return h.runError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success save cv",
		Data:    toRunDTO(run),
	})
}

func (h *PortfolioHandler) SelectTemplate(c *fiber.Ctx) error {
	var req dto.SelectTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid template payload",
		}, err)
	}

	run, err := h.uc.SelectTemplate(c.Params("id"), req.TemplateID)
	if err != nil {
		return h.runError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success select template",
		Data:    toRunDTO(run),
	})
}

func (h *PortfolioHandler) Generate(c *fiber.Ctx) error {
	run, err := h.uc.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return h.runError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate portfolio",
		Data:    toRunDTO(run),
	})
}

func (h *PortfolioHandler) Preview(c *fiber.Ctx) error {
	run, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return h.runError(c, err)
	}
	if run.HTML == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "portfolio has not been generated yet",
		}, nil)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(run.HTML)
}

func (h *PortfolioHandler) Download(c *fiber.Ctx) error {
	run, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return h.runError(c, err)
	}
	if run.HTML == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "portfolio has not been generated yet",
		}, nil)
	}
	filename, err := h.uc.ArtifactFilename(run)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to build download filename",
		}, err)
	}
	c.Set(fiber.HeaderContentType, "text/html")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.SendString(run.HTML)
}

func (h *PortfolioHandler) Deploy(c *fiber.Ctx) error {
	run, err := h.uc.Deploy(c.Params("id"))
	if err != nil {
		return h.runError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success deploy portfolio",
		Data:    fiber.Map{"deploy_url": run.DeployURL},
	})
}

func (h *PortfolioHandler) SuggestTemplate(c *fiber.Ctx) error {
	templateID, err := h.uc.SuggestTemplate(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNoSuggestion) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusServiceUnavailable,
				Message: "template suggestion unavailable",
			}, err)
		}
		return h.runError(c, err)
	}
	template, _ := model.TemplateByID(templateID)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success suggest template",
		Data:    template,
	})
}

func (h *PortfolioHandler) Templates(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list templates",
		Data:    model.Templates(),
	})
}

func (h *PortfolioHandler) SeedTemplateEmbeddings(c *fiber.Ctx) error {
	if err := h.uc.SeedTemplateEmbeddings(c.Context()); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to seed template embeddings",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success seed template embeddings",
	})
}

func (h *PortfolioHandler) runError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "run not found",
		}, nil)
	case errors.Is(err, usecase.ErrInvalidTransition), errors.Is(err, usecase.ErrNotDeployable):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: err.Error(),
		}, nil)
	case errors.Is(err, usecase.ErrUnknownTemplate):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		}, nil)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "request failed",
		}, err)
	}
}

func toRunDTO(run *model.PortfolioRun) dto.PortfolioRunDTO {
	return dto.PortfolioRunDTO{
		ID:         run.ID,
		Status:     run.Status,
		Filename:   run.Filename,
		CVData:     json.RawMessage(run.CVData),
		CVSource:   run.CVSource,
		TemplateID: run.TemplateID,
		HTMLSource: run.HTMLSource,
		DeployURL:  run.DeployURL,
		Error:      run.Error,
		CreatedAt:  run.CreatedAt,
		UpdatedAt:  run.UpdatedAt,
	}
}
