package handler

import (
	"errors"
	"net/http"

	"practice-site/internal/delivery/dto"
	"practice-site/internal/usecase"
	"practice-site/pkg/response"

	"github.com/gorilla/mux"
)

const (
	maxUploadFiles  = 10
	multipartMemory = 32 << 20
)

type UploadHandler struct {
	uploadUsecase usecase.UploadUsecase
	maxFileSize   int64
}

func NewUploadHandler(uploadUsecase usecase.UploadUsecase, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		uploadUsecase: uploadUsecase,
		maxFileSize:   maxFileSize,
	}
}

// UploadSingle handles a single image upload in field "file"
// @Summary Upload an image
// @Tags Upload
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Param type formData string false "general, services, team, blog or gallery"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /upload/single [post]
func (h *UploadHandler) UploadSingle(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r, 1) {
		return
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		response.BadRequest(w, "No file uploaded")
		return
	}

	uploaded, err := h.uploadUsecase.Save(r.Context(), r.FormValue("type"), files[0])
	if err != nil {
		writeUploadError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "File uploaded successfully", uploaded)
}

// UploadMultiple handles up to 10 images in field "files"
// @Summary Upload several images
// @Tags Upload
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /upload/multiple [post]
func (h *UploadHandler) UploadMultiple(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r, maxUploadFiles) {
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		response.BadRequest(w, "No files uploaded")
		return
	}
	if len(files) > maxUploadFiles {
		response.BadRequest(w, "Too many files, maximum is 10")
		return
	}

	kind := r.FormValue("type")
	uploaded := make([]*dto.UploadResponse, 0, len(files))
	for _, file := range files {
		result, err := h.uploadUsecase.Save(r.Context(), kind, file)
		if err != nil {
			writeUploadError(w, err)
			return
		}
		uploaded = append(uploaded, result)
	}

	response.Success(w, http.StatusCreated, "Files uploaded successfully", uploaded)
}

func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.uploadUsecase.Delete(r.Context(), vars["type"], vars["filename"]); err != nil {
		writeUploadError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "File deleted successfully", nil)
}

// parseForm caps the request body at maxFiles uploads of the configured size.
func (h *UploadHandler) parseForm(w http.ResponseWriter, r *http.Request, maxFiles int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize*maxFiles+multipartMemory)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			response.Error(w, http.StatusRequestEntityTooLarge, "File too large", nil)
		} else {
			response.BadRequest(w, "Invalid multipart form")
		}
		return false
	}
	return true
}

func writeUploadError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrInvalidUploadType:
		response.BadRequest(w, "Invalid upload type")
	case usecase.ErrUnsupportedFileType:
		response.BadRequest(w, "Only image files are allowed")
	case usecase.ErrInvalidFilename:
		response.BadRequest(w, "Invalid filename")
	case usecase.ErrFileTooLarge:
		response.Error(w, http.StatusRequestEntityTooLarge, "File too large", nil)
	case usecase.ErrUploadNotFound:
		response.NotFound(w, "File not found")
	default:
		response.ServerError(w, "Failed to process upload", err)
	}
}
