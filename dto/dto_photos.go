package dto

// PhotosForm upserts the singleton site-imagery document. The images
// themselves are uploaded through the relay first; only the resulting
// URLs are written here.
type PhotosForm struct {
	ProfileImageURL    string `json:"profileImageUrl"`
	BannerImageURL     string `json:"bannerImageUrl"`
	ResearchBanner1URL string `json:"researchBanner1Url"`
	ResearchBanner2URL string `json:"researchBanner2Url"`
	ResearchBanner3URL string `json:"researchBanner3Url"`
}
