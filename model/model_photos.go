package model

// Photos is the singleton site-imagery document (collection "photos",
// fixed id "main"). Absent URLs stay empty strings; the frontend keeps
// its own placeholders.
type Photos struct {
	ProfileImageURL    string `json:"profileImageUrl"`
	BannerImageURL     string `json:"bannerImageUrl"`
	ResearchBanner1URL string `json:"researchBanner1Url"`
	ResearchBanner2URL string `json:"researchBanner2Url"`
	ResearchBanner3URL string `json:"researchBanner3Url"`
}

// PhotosDocID is the fixed identifier of the singleton document.
const PhotosDocID = "main"
