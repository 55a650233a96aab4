package converter

import (
	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/entity"
)

func AddFacilityImageRequestToEntity(req *dto.AddFacilityImageRequest) entity.FacilityImage {
	return entity.FacilityImage{
		URL:         req.URL,
		Caption:     req.Caption,
		Description: req.Description,
	}
}

func AddBeforeAfterCaseRequestToEntity(req *dto.AddBeforeAfterCaseRequest) entity.BeforeAfterCase {
	return entity.BeforeAfterCase{
		Title:       req.Title,
		Treatment:   req.Treatment,
		Duration:    req.Duration,
		Description: req.Description,
		BeforeImage: req.BeforeImage,
		AfterImage:  req.AfterImage,
	}
}
