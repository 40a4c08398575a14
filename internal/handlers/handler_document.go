package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/rab_realization_app/internal/core/ports/services"
	"github.com/SscSPs/rab_realization_app/internal/dto"
	"github.com/SscSPs/rab_realization_app/internal/middleware"
)

// multipartOverheadBytes allows for boundaries and form fields around the file part.
const multipartOverheadBytes = 1 << 20

// documentHandler handles evidence documents of realizations.
type documentHandler struct {
	documentService portssvc.DocumentSvc
	maxUploadBytes  int64
}

func newDocumentHandler(documentService portssvc.DocumentSvc, maxUploadBytes int64) *documentHandler {
	return &documentHandler{
		documentService: documentService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// attachDocument godoc
// @Summary Attach already-stored document metadata to a realization
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   realizationID path string true "Realization ID"
// @Param   document body dto.AttachDocumentRequest true "Document metadata"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Realization not found"
// @Failure 500 {object} map[string]string "Failed to attach document"
// @Security BearerAuth
// @Router /realizations/{realizationID}/documents [post]
func (h *documentHandler) attachDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	realizationID := c.Param("realizationID")

	var req dto.AttachDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for AttachDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	uploaderID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("uploader_id", uploaderID), slog.String("realization_id", realizationID))

	doc, err := h.documentService.AttachDocument(c.Request.Context(), realizationID, req, uploaderID)
	if err != nil {
		respondError(c, logger, err, "Failed to attach document")
		return
	}

	logger.Info("Document attached", slog.String("document_id", doc.DocumentID))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// uploadDocument godoc
// @Summary Upload a document file for a realization
// @Description Stores the file and records its metadata. The content type is sniffed from the bytes.
// @Tags documents
// @Accept  multipart/form-data
// @Produce  json
// @Param   realizationID path string true "Realization ID"
// @Param   file formData file true "Document file"
// @Param   documentType formData string false "Document type" Enums(invoice, receipt, photo, contract, delivery_note, other)
// @Param   description formData string false "Description"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Missing file or unsupported type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Realization not found"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 500 {object} map[string]string "Failed to upload document"
// @Security BearerAuth
// @Router /realizations/{realizationID}/documents/upload [post]
func (h *documentHandler) uploadDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	realizationID := c.Param("realizationID")

	uploaderID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("uploader_id", uploaderID), slog.String("realization_id", realizationID))

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverheadBytes)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("Upload exceeds size limit", slog.Int64("limit_bytes", h.maxUploadBytes))
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			return
		}
		logger.Warn("Missing file part in upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required in the 'file' form field"})
		return
	}

	var form dto.UploadDocumentForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("Invalid upload form fields", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload document"})
		return
	}
	defer file.Close()

	doc, err := h.documentService.UploadDocument(c.Request.Context(), realizationID, portssvc.UploadedFile{
		FileName: fileHeader.Filename,
		Size:     fileHeader.Size,
		Content:  file,
	}, form, uploaderID)
	if err != nil {
		respondError(c, logger, err, "Failed to upload document")
		return
	}

	logger.Info("Document uploaded", slog.String("document_id", doc.DocumentID), slog.Int64("size_bytes", doc.SizeBytes))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// listDocuments godoc
// @Summary List the documents of a realization
// @Tags documents
// @Produce  json
// @Param   realizationID path string true "Realization ID"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Realization not found"
// @Failure 500 {object} map[string]string "Failed to list documents"
// @Security BearerAuth
// @Router /realizations/{realizationID}/documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	realizationID := c.Param("realizationID")

	docs, err := h.documentService.ListDocuments(c.Request.Context(), realizationID)
	if err != nil {
		respondError(c, logger.With(slog.String("realization_id", realizationID)), err, "Failed to list documents")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(docs))
}

// deleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Param   documentID path string true "Document ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to delete document"
// @Security BearerAuth
// @Router /documents/{documentID} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID), slog.String("document_id", documentID))

	if err := h.documentService.DeleteDocument(c.Request.Context(), documentID, userID); err != nil {
		respondError(c, logger, err, "Failed to delete document")
		return
	}

	logger.Info("Document deleted")
	c.Status(http.StatusNoContent)
}

func registerDocumentRoutes(group *gin.RouterGroup, documentService portssvc.DocumentSvc, maxUploadBytes int64) {
	h := newDocumentHandler(documentService, maxUploadBytes)

	docs := group.Group("/realizations/:realizationID/documents")
	{
		docs.POST("", h.attachDocument)
		docs.POST("/upload", h.uploadDocument)
		docs.GET("", h.listDocuments)
	}
	group.DELETE("/documents/:documentID", h.deleteDocument)
}
