package dto

type AddFacilityImageRequest struct {
	URL         string `json:"url" validate:"required"`
	Caption     string `json:"caption"`
	Description string `json:"description"`
}

type AddBeforeAfterCaseRequest struct {
	Title       string `json:"title" validate:"required"`
	Treatment   string `json:"treatment"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	BeforeImage string `json:"beforeImage" validate:"required"`
	AfterImage  string `json:"afterImage" validate:"required"`
}
