package verification

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"

	"invoice-verifier/core/storage"
	"invoice-verifier/core/verify"
	"invoice-verifier/feature/verification/extract"
	"invoice-verifier/feature/verification/report"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// reportPrefix is where archived reports live inside the bucket.
const reportPrefix = "reports/"

// reportNameRe validates client-supplied report names.
var reportNameRe = regexp.MustCompile(`^[a-zA-Z0-9-]+\.txt$`)

// Result is the outcome of one verification run.
type Result struct {
	// Pass is true iff both header checks pass and every line item matched
	// perfectly on both sides.
	Pass bool `json:"pass"`

	// HeaderChecks holds the contact and purpose verdicts.
	HeaderChecks []verify.HeaderCheck `json:"header_checks"`

	// Summary is the line-item reconciliation outcome.
	Summary verify.Summary `json:"summary"`

	// GeneratedAt is the run timestamp rendered into the report.
	GeneratedAt string `json:"generated_at"`

	// ReportName is the archived report object name, "" when not archived.
	ReportName string `json:"report_name,omitempty"`

	// Report is the full plain-text report. Returned out of band, not in JSON.
	Report string `json:"-"`
}

// Service runs verifications and manages the archived report lifecycle.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	cfg    verify.Config

	// now is injected so report timestamps are controllable in tests.
	now func() time.Time
}

// NewService creates a new verification service. A nil storage client
// disables report archiving but not verification itself.
func NewService(client storage.Client, bucket string, logger *zap.Logger, cfg verify.Config) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// ArchiveEnabled reports whether archived report operations are available.
func (s *Service) ArchiveEnabled() bool {
	return s.client != nil
}

// Verify extracts both sources, checks headers, matches line items and
// renders the report. The extractors are independent, so they run
// concurrently and join before matching begins.
func (s *Service) Verify(ctx context.Context, excelSrc, pdfSrc io.Reader) (*Result, error) {
	var (
		excelHeader verify.HeaderInfo
		pdfHeader   verify.HeaderInfo
		excelItems  []verify.LineItem
		pdfItems    []verify.LineItem
		excelErr    error
		pdfErr      error
		wg          sync.WaitGroup
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		excelHeader, excelItems, excelErr = extract.FromExcel(excelSrc)
	}()

	go func() {
		defer wg.Done()
		pdfHeader, pdfItems, pdfErr = extract.FromPDF(pdfSrc)
	}()

	wg.Wait()

	if excelErr != nil {
		return nil, fmt.Errorf("excel source unreadable: %w", excelErr)
	}
	if pdfErr != nil {
		return nil, fmt.Errorf("pdf source unreadable: %w", pdfErr)
	}

	checks := verify.CheckHeaders(excelHeader, pdfHeader, s.cfg)
	summary := verify.Match(excelItems, pdfItems, s.cfg)
	generatedAt := s.now().UTC().Format("2006-01-02 15:04:05")

	s.logger.Info("Verification completed",
		zap.Int("excel_items", summary.TotalExcel),
		zap.Int("pdf_items", summary.TotalPDF),
		zap.Int("perfect_matches", summary.PerfectMatches),
		zap.Int("partial_matches", len(summary.Partials)),
		zap.Int("excel_only", len(summary.UnmatchedExcel)),
		zap.Int("pdf_only", len(summary.UnmatchedPDF)),
	)

	return &Result{
		Pass:         verify.HeadersPass(checks) && summary.Clean(),
		HeaderChecks: checks,
		Summary:      summary,
		GeneratedAt:  generatedAt,
		Report:       report.Render(checks, summary, generatedAt),
	}, nil
}

// EnsureBucket makes sure the archive bucket exists.
func (s *Service) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", s.bucket, err)
	}
	return nil
}

// ArchiveReport uploads the rendered report and records its object name on
// the result.
func (s *Service) ArchiveReport(ctx context.Context, result *Result) error {
	name := uuid.NewString() + ".txt"
	object := reportPrefix + name

	reader := strings.NewReader(result.Report)
	_, err := s.client.PutObject(ctx, s.bucket, object, reader, int64(len(result.Report)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return fmt.Errorf("failed to archive report: %w", err)
	}

	result.ReportName = name
	return nil
}

// ListReports returns the archived report names, oldest first as listed.
func (s *Service) ListReports(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    reportPrefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list reports: %w", info.Err)
		}
		names = append(names, strings.TrimPrefix(info.Key, reportPrefix))
	}
	return names, nil
}

// GetReport streams an archived report.
func (s *Service) GetReport(ctx context.Context, name string) (io.ReadCloser, error) {
	if !reportNameRe.MatchString(name) {
		return nil, fmt.Errorf("invalid report name %q", name)
	}
	return s.client.GetObject(ctx, s.bucket, reportPrefix+name, minio.GetObjectOptions{})
}

// DeleteReport removes an archived report.
func (s *Service) DeleteReport(ctx context.Context, name string) error {
	if !reportNameRe.MatchString(name) {
		return fmt.Errorf("invalid report name %q", name)
	}
	return s.client.RemoveObject(ctx, s.bucket, reportPrefix+name, minio.RemoveObjectOptions{})
}
