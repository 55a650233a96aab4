package usecase

import (
	"context"
	"strconv"

	"practice-site/internal/converter"
	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/entity"
	"practice-site/internal/service"

	"github.com/sirupsen/logrus"
)

type GalleryUsecase interface {
	Get(ctx context.Context) (*entity.Gallery, error)
	Replace(ctx context.Context, gallery *entity.Gallery) (*entity.Gallery, error)
	AddFacilityImage(ctx context.Context, req *dto.AddFacilityImageRequest) (*entity.Gallery, error)
	RemoveFacilityImage(ctx context.Context, index int) (*entity.Gallery, error)
	AddCase(ctx context.Context, req *dto.AddBeforeAfterCaseRequest) (*entity.Gallery, error)
	RemoveCase(ctx context.Context, index int) (*entity.Gallery, error)
}

type galleryUsecase struct {
	data         *DataAccess
	log          *logrus.Logger
	auditService service.AuditService
}

func NewGalleryUsecase(data *DataAccess, log *logrus.Logger, auditService service.AuditService) GalleryUsecase {
	return &galleryUsecase{
		data:         data,
		log:          log,
		auditService: auditService,
	}
}

func (u *galleryUsecase) Get(ctx context.Context) (*entity.Gallery, error) {
	doc, err := u.data.readOrEmpty(ctx)
	if err != nil {
		u.log.Warnf("Failed to read gallery: %+v", err)
		return nil, err
	}

	return &doc.Gallery, nil
}

func (u *galleryUsecase) Replace(ctx context.Context, gallery *entity.Gallery) (*entity.Gallery, error) {
	return u.update(ctx, "replace", func(g *entity.Gallery) bool {
		*g = *gallery
		return true
	})
}

func (u *galleryUsecase) AddFacilityImage(ctx context.Context, req *dto.AddFacilityImageRequest) (*entity.Gallery, error) {
	return u.update(ctx, "add_facility_image", func(g *entity.Gallery) bool {
		g.FacilityImages = append(g.FacilityImages, converter.AddFacilityImageRequestToEntity(req))
		return true
	})
}

// RemoveFacilityImage drops the image at index. An out of range index leaves
// the gallery unchanged.
func (u *galleryUsecase) RemoveFacilityImage(ctx context.Context, index int) (*entity.Gallery, error) {
	return u.update(ctx, "remove_facility_image:"+strconv.Itoa(index), func(g *entity.Gallery) bool {
		if index < 0 || index >= len(g.FacilityImages) {
			return false
		}
		g.FacilityImages = append(g.FacilityImages[:index], g.FacilityImages[index+1:]...)
		return true
	})
}

func (u *galleryUsecase) AddCase(ctx context.Context, req *dto.AddBeforeAfterCaseRequest) (*entity.Gallery, error) {
	return u.update(ctx, "add_case", func(g *entity.Gallery) bool {
		g.BeforeAfterCases = append(g.BeforeAfterCases, converter.AddBeforeAfterCaseRequestToEntity(req))
		return true
	})
}

// RemoveCase drops the before/after case at index. An out of range index
// leaves the gallery unchanged.
func (u *galleryUsecase) RemoveCase(ctx context.Context, index int) (*entity.Gallery, error) {
	return u.update(ctx, "remove_case:"+strconv.Itoa(index), func(g *entity.Gallery) bool {
		if index < 0 || index >= len(g.BeforeAfterCases) {
			return false
		}
		g.BeforeAfterCases = append(g.BeforeAfterCases[:index], g.BeforeAfterCases[index+1:]...)
		return true
	})
}

// update applies fn to the stored gallery and returns the resulting gallery.
// fn reports whether it changed anything.
func (u *galleryUsecase) update(ctx context.Context, op string, fn func(g *entity.Gallery) bool) (*entity.Gallery, error) {
	var result entity.Gallery
	changed := false
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		changed = fn(&doc.Gallery)
		doc.Normalize()
		result = doc.Gallery
		if !changed {
			return errNoChange
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to update gallery: %+v", err)
		return nil, err
	}

	if changed {
		u.auditService.LogUpdate(ctx, service.AuditActionGalleryUpdate, entity.SectionGallery, op, nil, result)
	}

	return &result, nil
}
