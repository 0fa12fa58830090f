package verification

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"invoice-verifier/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(client *mocks.Client) *fiber.App {
	app := fiber.New()
	handler := NewHandler(testService(client), zap.NewNop())
	handler.RegisterRoutes(app)
	return app
}

func multipartBody(t *testing.T, fields map[string][]byte) (io.Reader, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for field, content := range fields {
		part, err := writer.CreateFormFile(field, field+".bin")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestHandleVerify_MissingExcelField(t *testing.T) {
	app := setupTestApp(nil)

	body, contentType := multipartBody(t, map[string][]byte{"pdf": []byte("x")})
	req := httptest.NewRequest("POST", "/verification/", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var parsed map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Contains(t, parsed["error"], "excel")
}

func TestHandleVerify_MissingPDFField(t *testing.T) {
	app := setupTestApp(nil)

	body, contentType := multipartBody(t, map[string][]byte{"excel": []byte("x")})
	req := httptest.NewRequest("POST", "/verification/", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleVerify_UnreadableSources(t *testing.T) {
	app := setupTestApp(nil)

	body, contentType := multipartBody(t, map[string][]byte{
		"excel": []byte("not a spreadsheet"),
		"pdf":   []byte("not a pdf"),
	})
	req := httptest.NewRequest("POST", "/verification/", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleListReports(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Key: "reports/a.txt"}
	close(ch)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	app := setupTestApp(client)
	resp, err := app.Test(httptest.NewRequest("GET", "/verification/reports", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, []string{"a.txt"}, parsed["reports"])
}

func TestHandleListReports_StorageNotConfigured(t *testing.T) {
	app := setupTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/verification/reports", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleGetReport(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "test-bucket", "reports/a.txt", mock.Anything).
		Return(io.NopCloser(strings.NewReader("report body")), nil)

	app := setupTestApp(client)
	resp, err := app.Test(httptest.NewRequest("GET", "/verification/reports/a.txt", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "report body", string(body))
}

func TestHandleGetReport_BadName(t *testing.T) {
	app := setupTestApp(new(mocks.Client))

	resp, err := app.Test(httptest.NewRequest("GET", "/verification/reports/no-extension", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleDeleteReport(t *testing.T) {
	client := new(mocks.Client)
	client.On("RemoveObject", mock.Anything, "test-bucket", "reports/a.txt", mock.Anything).Return(nil)

	app := setupTestApp(client)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/verification/reports/a.txt", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "deleted", parsed["status"])
	assert.Equal(t, "a.txt", parsed["name"])
	client.AssertExpectations(t)
}
