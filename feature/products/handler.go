package products

import (
	"errors"

	"product-builder/core/barcode"
	"product-builder/core/logger"
	"product-builder/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for products.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the product routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/products")
	group.Post("/build", h.HandleBuild)
	group.Get("/:code", h.HandleLookup)
}

// HandleBuild runs a build over the pending barcodes.
// @Summary Build Product Rows
// @Description Reconciles every pending barcode against all backends and appends the merged rows to the product sheet. Nothing is written when any backend call fails.
// @Tags products
// @Accept json
// @Produce json
// @Param dry_run query boolean false "Resolve and merge without writing"
// @Success 200 {object} products.Report "Build Report"
// @Failure 422 {object} map[string]string "No usable pending barcodes"
// @Failure 502 {object} map[string]interface{} "Backend failure"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/build [post]
func (h *Handler) HandleBuild(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	dryRun := c.QueryBool("dry_run", false)

	report, err := h.service.Build(c.Context(), BuildOptions{DryRun: dryRun})
	if err != nil {
		l.Error("Build failed", zap.Error(err))
		body := fiber.Map{"error": err.Error()}
		if report != nil && len(report.Failures) > 0 {
			body["failures"] = report.Failures
			body["run_id"] = report.RunID
		}
		return c.Status(statusFor(err)).JSON(body)
	}

	l.Info("Build finished", zap.String("run_id", report.RunID), zap.Int("written", report.Written))
	return c.JSON(report)
}

// HandleLookup reconciles a single barcode without touching any sheet.
// @Summary Lookup Product
// @Description Resolves one barcode against all backends and returns the merged record.
// @Tags products
// @Accept json
// @Produce json
// @Param code path string true "Barcode (UPC-A, EAN-13 or UPC-E)"
// @Success 200 {object} reconcile.MergedRecord "Merged Record"
// @Failure 422 {object} map[string]string "Invalid barcode"
// @Failure 502 {object} map[string]string "Backend failure"
// @Router /products/{code} [get]
func (h *Handler) HandleLookup(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	code := c.Params("code")

	records, err := h.service.Lookup(c.Context(), []string{code})
	if err != nil {
		l.Warn("Lookup failed", zap.String("code", code), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(records[0])
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrSourceEmpty), errors.Is(err, barcode.ErrNormalization):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, reconcile.ErrBackendFailure):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
