package handler

import (
	"encoding/json"
	"net/http"

	"practice-site/internal/delivery/dto"
	"practice-site/internal/usecase"
	"practice-site/pkg/response"
	"practice-site/pkg/validator"

	"github.com/gorilla/mux"
)

type ServiceHandler struct {
	serviceUsecase usecase.ServiceUsecase
	validator      *validator.CustomValidator
}

func NewServiceHandler(serviceUsecase usecase.ServiceUsecase, validator *validator.CustomValidator) *ServiceHandler {
	return &ServiceHandler{
		serviceUsecase: serviceUsecase,
		validator:      validator,
	}
}

// GetAll handles listing services
// @Summary List services
// @Tags Services
// @Produce json
// @Param active query bool false "Only active services"
// @Success 200 {object} response.Response
// @Router /services [get]
func (h *ServiceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceUsecase.List(r.Context(), dto.ServiceListQuery{
		ActiveOnly: queryTrue(r, "active"),
	})
	if err != nil {
		response.ServerError(w, "Failed to get services", err)
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

// GetByID handles getting a service by ID
// @Summary Get service by ID
// @Tags Services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /services/{id} [get]
func (h *ServiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	service, err := h.serviceUsecase.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.ServerError(w, "Failed to get service", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", service)
}

// Create handles service creation
// @Summary Create a new service
// @Tags Services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Create Service Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /services [post]
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.serviceUsecase.Create(r.Context(), &req)
	if err != nil {
		response.ServerError(w, "Failed to create service", err)
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", service)
}

// Update handles service update
// @Summary Update a service
// @Tags Services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Update Service Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /services/{id} [put]
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.serviceUsecase.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.ServerError(w, "Failed to update service", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", service)
}

// Delete handles service deletion
// @Summary Delete a service
// @Tags Services
// @Security BearerAuth
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Response
// @Router /services/{id} [delete]
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.serviceUsecase.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		response.ServerError(w, "Failed to delete service", err)
		return
	}

	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}
