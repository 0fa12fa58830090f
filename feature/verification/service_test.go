package verification

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"invoice-verifier/core/storage"
	"invoice-verifier/core/storage/mocks"
	"invoice-verifier/core/verify"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func testService(client *mocks.Client) *Service {
	// A nil *mocks.Client must become a nil interface, not a typed nil.
	var sc storage.Client
	if client != nil {
		sc = client
	}
	svc := NewService(sc, "test-bucket", zap.NewNop(), verify.Config{})
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func emptyDeclaration(t *testing.T) io.Reader {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "B8", "SB-SHIPPING - PRN 5789187"))
	require.NoError(t, f.SetCellValue(sheet, "A10", "Rank"))
	require.NoError(t, f.SetCellValue(sheet, "A11", "Total"))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestVerify_ExcelUnreadable(t *testing.T) {
	svc := testService(nil)

	_, err := svc.Verify(context.Background(), strings.NewReader("not a spreadsheet"), strings.NewReader("not a pdf"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "excel source unreadable")
}

func TestVerify_PDFUnreadable(t *testing.T) {
	svc := testService(nil)

	_, err := svc.Verify(context.Background(), emptyDeclaration(t), strings.NewReader("not a pdf"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf source unreadable")
}

func TestArchiveEnabled(t *testing.T) {
	assert.False(t, testService(nil).ArchiveEnabled())
	assert.True(t, testService(new(mocks.Client)).ArchiveEnabled())
}

func TestEnsureBucket_CreatesWhenMissing(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)

	svc := testService(client)
	require.NoError(t, svc.EnsureBucket(context.Background()))
	client.AssertExpectations(t)
}

func TestEnsureBucket_SkipsWhenPresent(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

	svc := testService(client)
	require.NoError(t, svc.EnsureBucket(context.Background()))
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestArchiveReport(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "test-bucket", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "reports/") && strings.HasSuffix(name, ".txt")
	}), mock.Anything, int64(len("report body")), mock.Anything).Return(minio.UploadInfo{}, nil)

	svc := testService(client)
	result := &Result{Report: "report body"}

	require.NoError(t, svc.ArchiveReport(context.Background(), result))
	assert.NotEmpty(t, result.ReportName)
	assert.True(t, strings.HasSuffix(result.ReportName, ".txt"))
	assert.NotContains(t, result.ReportName, "/")
	client.AssertExpectations(t)
}

func TestArchiveReport_UploadFails(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	svc := testService(client)
	result := &Result{Report: "report body"}

	require.Error(t, svc.ArchiveReport(context.Background(), result))
	assert.Empty(t, result.ReportName)
}

func TestListReports(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "reports/a.txt"}
	ch <- minio.ObjectInfo{Key: "reports/b.txt"}
	close(ch)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	svc := testService(client)
	names, err := svc.ListReports(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)
}

func TestListReports_Empty(t *testing.T) {
	ch := make(chan minio.ObjectInfo)
	close(ch)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	svc := testService(client)
	names, err := svc.ListReports(context.Background())

	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NotNil(t, names)
}

func TestGetReport_RejectsBadNames(t *testing.T) {
	svc := testService(new(mocks.Client))

	for _, name := range []string{"", "../../etc/passwd", "a.txt/extra", "no-extension"} {
		_, err := svc.GetReport(context.Background(), name)
		assert.Error(t, err, "name %q should be rejected", name)
	}
}

func TestDeleteReport(t *testing.T) {
	client := new(mocks.Client)
	client.On("RemoveObject", mock.Anything, "test-bucket", "reports/a.txt", mock.Anything).Return(nil)

	svc := testService(client)
	require.NoError(t, svc.DeleteReport(context.Background(), "a.txt"))
	client.AssertExpectations(t)
}

func TestDeleteReport_RejectsBadNames(t *testing.T) {
	svc := testService(new(mocks.Client))

	err := svc.DeleteReport(context.Background(), "../a.txt")
	require.Error(t, err)
}
