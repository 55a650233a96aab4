package converter

import (
	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/entity"
)

func CreateServiceRequestToEntity(id string, req *dto.CreateServiceRequest) entity.Service {
	return entity.Service{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Price:       req.Price,
		Duration:    req.Duration,
		Image:       req.Image,
		Features:    nonNilStrings(req.Features),
		IsActive:    boolOrDefault(req.IsActive, true),
	}
}

func ApplyServiceUpdate(service *entity.Service, req *dto.UpdateServiceRequest) {
	apply(&service.Title, req.Title)
	apply(&service.Description, req.Description)
	apply(&service.Icon, req.Icon)
	apply(&service.Price, req.Price)
	apply(&service.Duration, req.Duration)
	apply(&service.Image, req.Image)
	apply(&service.Features, req.Features)
	apply(&service.IsActive, req.IsActive)
	service.Features = nonNilStrings(service.Features)
}
