// datasheets.go handles the datasheet extraction HTTP endpoint.
//
// POST /api/v1/datasheets/extract — Upload a PDF datasheet for spec extraction
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/solarstack/datasheet-api/internal/models"
	"github.com/solarstack/datasheet-api/internal/services/extraction"
	pdfservice "github.com/solarstack/datasheet-api/internal/services/pdf"
)

// ExtractDatasheet handles PDF upload and synchronous spec extraction.
// POST /api/v1/datasheets/extract
//
// Accepts a multipart file upload with field name "file". Only .pdf files
// are accepted; input validation happens before any temporary file is
// created or any model call is made. Processing is synchronous — one
// extraction, one model call, one response.
func (h *Handler) ExtractDatasheet(c *gin.Context) {
	// Limit request body size
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "No PDF file provided. Upload a file with the field name 'file'.",
		})
		return
	}
	defer file.Close()

	if header.Filename == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "No selected file",
		})
		return
	}

	// Validate file extension before touching the contents.
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid file type. Please upload a PDF.",
		})
		return
	}

	// Go Pattern: io.ReadAll reads the entire upload into a byte slice.
	// The pdf library needs random access, and datasheets are small.
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Failed to read uploaded file",
		})
		return
	}

	// Validate PDF magic bytes — a .pdf extension on a text file is still junk.
	if !pdfservice.ValidatePDF(data) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "The uploaded file does not appear to be a valid PDF",
		})
		return
	}

	// Temp-file lifecycle is owned here, not by the pipeline: create before
	// processing, remove on every path.
	tempPath := filepath.Join(os.TempDir(), "datasheet-"+uuid.New().String()+".pdf")
	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		log.Printf("Failed to write temp file for %s: %v", header.Filename, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to store uploaded file",
		})
		return
	}
	defer os.Remove(tempPath)

	out, err := h.Processor.ProcessFile(c.Request.Context(), tempPath)
	if err != nil {
		log.Printf("Datasheet processing failed for %s: %v", header.Filename, err)

		// Surface the raw completion for operator debugging; the client
		// only gets the message.
		var parseErr *extraction.ParseError
		if errors.As(err, &parseErr) {
			log.Printf("Raw model response: %s", parseErr.RawText)
		}

		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	resultJSON, err := json.Marshal(out.Result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to serialize extraction result",
		})
		return
	}

	c.JSON(http.StatusOK, models.ExtractResponse{
		Success: true,
		Data:    resultJSON,
		Summary: out.Summary.Text,
	})
}
