package converter

import (
	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/entity"
)

// DocumentToPracticeResponse assembles the practice view from the document sections.
func DocumentToPracticeResponse(doc *entity.SiteDocument) *dto.PracticeResponse {
	if doc == nil {
		return nil
	}

	return &dto.PracticeResponse{
		Name:          doc.Practice.Name,
		Tagline:       doc.Practice.Tagline,
		Description:   doc.Practice.Description,
		Established:   doc.Practice.Established,
		LicenseNumber: doc.Practice.LicenseNumber,
		Contact:       doc.Contact,
		Hours:         doc.Hours,
		Stats:         doc.Stats,
		SocialMedia:   doc.Practice.SocialMedia,
		SEO:           doc.SEO,
	}
}

// ApplyPracticeUpdate shallow-merges the request into the document.
func ApplyPracticeUpdate(doc *entity.SiteDocument, req *dto.UpdatePracticeRequest) {
	apply(&doc.Practice.Name, req.Name)
	apply(&doc.Practice.Tagline, req.Tagline)
	apply(&doc.Practice.Description, req.Description)
	apply(&doc.Practice.Established, req.Established)
	apply(&doc.Practice.LicenseNumber, req.LicenseNumber)
	apply(&doc.Practice.SocialMedia, req.SocialMedia)
	apply(&doc.Contact, req.Contact)
	apply(&doc.Hours, req.Hours)
	apply(&doc.Stats, req.Stats)
	apply(&doc.SEO, req.SEO)
	if doc.SEO.Keywords == nil {
		doc.SEO.Keywords = []string{}
	}
}
