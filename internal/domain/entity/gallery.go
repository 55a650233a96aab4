package entity

type Gallery struct {
	FacilityImages   []FacilityImage   `json:"facilityImages"`
	BeforeAfterCases []BeforeAfterCase `json:"beforeAfterCases"`
}

type FacilityImage struct {
	URL         string `json:"url"`
	Caption     string `json:"caption"`
	Description string `json:"description"`
}

type BeforeAfterCase struct {
	Title       string `json:"title"`
	Treatment   string `json:"treatment"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	BeforeImage string `json:"beforeImage"`
	AfterImage  string `json:"afterImage"`
}
