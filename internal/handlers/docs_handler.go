package handlers

import (
	"crypto/md5"
	"fmt"
	"net/http"

	apierrors "finance-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// scalarCSP lets the documentation page load the Scalar bundle and fetch the
// API document; every other response keeps the default-src 'none' policy.
const scalarCSP = "default-src 'none'; script-src https://cdn.jsdelivr.net; " +
	"style-src 'unsafe-inline' https://cdn.jsdelivr.net; font-src https://fonts.scalar.com; " +
	"img-src 'self' data:; connect-src 'self'; frame-ancestors 'none'"

// DocsHandler serves the OpenAPI document of one service and the Scalar UI
type DocsHandler struct {
	scalarHTML  []byte
	scalarETag  string
	openAPI     []byte
	openAPIETag string
}

func NewDocsHandler(scalarHTML, openAPI []byte) *DocsHandler {
	return &DocsHandler{
		scalarHTML:  scalarHTML,
		scalarETag:  generateETag(scalarHTML),
		openAPI:     openAPI,
		openAPIETag: generateETag(openAPI),
	}
}

// ServeScalarUI serves the Scalar HTML page
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	c.Response().Header().Set("Content-Security-Policy", scalarCSP)
	if notModified(c, h.scalarETag) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.HTMLBlob(http.StatusOK, h.scalarHTML)
}

// ServeOpenAPI serves the OpenAPI document loaded by the Scalar page
func (h *DocsHandler) ServeOpenAPI(c echo.Context) error {
	if len(h.openAPI) == 0 {
		return SendError(c, apierrors.ResourceNotFound, apierrors.WithMessage("API document not available"))
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	if notModified(c, h.openAPIETag) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, h.openAPI)
}

func notModified(c echo.Context, etag string) bool {
	if etag == "" {
		return false
	}
	c.Response().Header().Set("ETag", etag)
	return c.Request().Header.Get("If-None-Match") == etag
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}
