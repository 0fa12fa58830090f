package verification

import (
	"context"

	"invoice-verifier/core/storage"
	"invoice-verifier/core/verify"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	logger  *zap.Logger
}

// NewFeature creates a new Verification feature. The storage client may be
// nil, in which case report archiving is disabled.
func NewFeature(client storage.Client, bucket string, logg *zap.Logger, cfg verify.Config) *Feature {
	svc := NewService(client, bucket, logg, cfg)
	h := NewHandler(svc, logg)
	return &Feature{service: svc, handler: h, logger: logg}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "verification"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load ensures the archive bucket exists and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if f.service.ArchiveEnabled() {
		if err := f.service.EnsureBucket(context.Background()); err != nil {
			return err
		}
	} else {
		f.logger.Warn("Report storage is not configured, archiving disabled")
	}
	f.handler.RegisterRoutes(app)
	return nil
}
