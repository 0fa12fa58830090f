package verification

import (
	"errors"
	"io"
	"mime/multipart"

	"invoice-verifier/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for verification runs and archived reports.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logg *zap.Logger) *Handler {
	return &Handler{service: service, logger: logg}
}

// RegisterRoutes registers the verification routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/verification")
	group.Post("/", h.HandleVerify)
	group.Get("/reports", h.HandleListReports)
	group.Get("/reports/:name", h.HandleGetReport)
	group.Delete("/reports/:name", h.HandleDeleteReport)
}

// HandleVerify runs a verification over an uploaded declaration spreadsheet
// and carrier invoice PDF. Expects multipart form fields "excel" and "pdf".
func (h *Handler) HandleVerify(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	excelFile, err := formFile(c, "excel")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer excelFile.Close()

	pdfFile, err := formFile(c, "pdf")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer pdfFile.Close()

	result, err := h.service.Verify(c.Context(), excelFile, pdfFile)
	if err != nil {
		l.Error("Verification failed", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	if h.service.ArchiveEnabled() {
		if err := h.service.ArchiveReport(c.Context(), result); err != nil {
			// Verification itself succeeded, losing the archive copy is
			// not a request failure.
			l.Warn("Report archiving failed", zap.Error(err))
		}
	}

	return c.JSON(result)
}

// HandleListReports lists the archived report names.
func (h *Handler) HandleListReports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	if !h.service.ArchiveEnabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "report storage is not configured"})
	}

	names, err := h.service.ListReports(c.Context())
	if err != nil {
		l.Error("Report listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"reports": names})
}

// HandleGetReport streams an archived report as plain text.
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	if !h.service.ArchiveEnabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "report storage is not configured"})
	}

	reader, err := h.service.GetReport(c.Context(), c.Params("name"))
	if err != nil {
		l.Error("Report fetch failed", zap.Error(err), zap.String("name", c.Params("name")))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		l.Error("Report read failed", zap.Error(err), zap.String("name", c.Params("name")))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.Send(body)
}

// HandleDeleteReport removes an archived report.
func (h *Handler) HandleDeleteReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	if !h.service.ArchiveEnabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "report storage is not configured"})
	}

	name := c.Params("name")
	if err := h.service.DeleteReport(c.Context(), name); err != nil {
		l.Error("Report deletion failed", zap.Error(err), zap.String("name", name))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "deleted", "name": name})
}

func formFile(c *fiber.Ctx, field string) (multipart.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, errors.New("missing multipart file field " + field)
	}
	file, err := header.Open()
	if err != nil {
		return nil, errors.New("unreadable multipart file field " + field)
	}
	return file, nil
}
