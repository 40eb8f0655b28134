package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"labsite/dto"
	"labsite/internal/imagehost"
	"labsite/internal/repository"
	"labsite/internal/utils"
	"labsite/model"
)

// ImageFile is a form-attached image pending upload.
type ImageFile struct {
	Name string
	Data []byte
}

// Submission reconciles an admin form into a persisted document. The
// ordering invariant: when a new image accompanies the form, the upload
// happens first, and any upload failure aborts the whole submission
// before a single document field is written.
type Submission struct {
	Teams        repository.TeamRepository
	Publications repository.PublicationRepository
	Research     repository.ResearchRepository
	Photos       repository.PhotosRepository
	Host         imagehost.Host
}

// SubmitTeam creates (id == "") or updates a team member.
func (s *Submission) SubmitTeam(ctx context.Context, id string, form dto.TeamForm, image *ImageFile) (model.TeamMember, error) {
	imageURL, err := s.resolveImage(ctx, form.ImageURL, image)
	if err != nil {
		return model.TeamMember{}, err
	}

	m := memberFromForm(form, imageURL)
	if id == "" {
		return s.Teams.Add(ctx, m)
	}
	if err := s.Teams.Update(ctx, id, teamPatch(m)); err != nil {
		return model.TeamMember{}, err
	}
	m.ID = id
	return m, nil
}

// SubmitPublication creates (id == "") or updates a publication.
func (s *Submission) SubmitPublication(ctx context.Context, id string, form dto.PublicationForm) (model.Publication, error) {
	p := publicationFromForm(form)
	if id == "" {
		return s.Publications.Add(ctx, p)
	}
	if err := s.Publications.Update(ctx, id, publicationPatch(p)); err != nil {
		return model.Publication{}, err
	}
	p.ID = id
	return p, nil
}

// SubmitResearch creates (id == "") or updates a research project.
func (s *Submission) SubmitResearch(ctx context.Context, id string, form dto.ResearchForm, image *ImageFile) (model.ResearchProject, error) {
	imageURL, err := s.resolveImage(ctx, form.ImageURL, image)
	if err != nil {
		return model.ResearchProject{}, err
	}

	p := researchFromForm(form, imageURL)
	if id == "" {
		return s.Research.Add(ctx, p)
	}
	if err := s.Research.Update(ctx, id, researchPatch(p)); err != nil {
		return model.ResearchProject{}, err
	}
	p.ID = id
	return p, nil
}

// SavePhotos upserts the singleton imagery document. Images were already
// pushed through the relay by the caller, so upload-before-write holds.
func (s *Submission) SavePhotos(ctx context.Context, form dto.PhotosForm) (model.Photos, error) {
	p := model.Photos{
		ProfileImageURL:    form.ProfileImageURL,
		BannerImageURL:     form.BannerImageURL,
		ResearchBanner1URL: form.ResearchBanner1URL,
		ResearchBanner2URL: form.ResearchBanner2URL,
		ResearchBanner3URL: form.ResearchBanner3URL,
	}
	if err := s.Photos.Save(ctx, p); err != nil {
		return model.Photos{}, err
	}
	return p, nil
}

// resolveImage returns the URL the document should reference: the
// freshly uploaded one when a file is attached, otherwise whatever the
// form already carried (possibly empty, never persisted as null).
func (s *Submission) resolveImage(ctx context.Context, current string, image *ImageFile) (string, error) {
	if image == nil {
		return current, nil
	}
	img, err := s.Host.Upload(ctx, image.Name, image.Data)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return img.URL, nil
}

// ----- canonical payload builders -----

func memberFromForm(form dto.TeamForm, imageURL string) model.TeamMember {
	roleOrder := utils.RoleRank(form.Role)
	if n, err := strconv.Atoi(strings.TrimSpace(form.RoleOrder)); err == nil && n > 0 {
		roleOrder = n
	}
	return model.TeamMember{
		Name:              strings.TrimSpace(form.Name),
		Role:              strings.TrimSpace(form.Role),
		RoleOrder:         roleOrder,
		Bio:               form.Bio,
		ImageURL:          imageURL,
		Email:             strings.TrimSpace(form.Email),
		Linkedin:          strings.TrimSpace(form.Linkedin),
		Twitter:           strings.TrimSpace(form.Twitter),
		Education:         repository.SplitList(form.Education),
		ResearchInterests: repository.SplitList(form.ResearchInterests),
		Awards:            repository.SplitList(form.Awards),
		CurrentPosition:   strings.TrimSpace(form.CurrentPosition),
		Achievements:      form.Achievements,
		IsAlumni:          utils.IsAlumniRole(form.Role),
	}
}

func publicationFromForm(form dto.PublicationForm) model.Publication {
	year := 0
	if n, err := strconv.Atoi(strings.TrimSpace(form.Year.String())); err == nil {
		year = n
	}

	// each element may itself be comma-joined
	authors := make([]string, 0, len(form.Authors))
	for _, a := range form.Authors {
		authors = append(authors, repository.SplitList(a)...)
	}

	return model.Publication{
		Title:   strings.TrimSpace(form.Title),
		Authors: authors,
		Journal: strings.TrimSpace(form.Journal),
		Volume:  strings.TrimSpace(form.Volume),
		Year:    year,
		DOI:     strings.TrimSpace(form.DOI),
	}
}

func researchFromForm(form dto.ResearchForm, imageURL string) model.ResearchProject {
	status := form.Status
	if !model.ValidStatus(status) {
		status = model.StatusActive
	}
	category := form.Category
	if !model.ValidCategory(category) {
		category = model.CategoryAnalytical
	}
	endDate := strings.TrimSpace(form.EndDate)
	if endDate == "" {
		endDate = model.EndDateOngoing
	}
	return model.ResearchProject{
		Title:           strings.TrimSpace(form.Title),
		Description:     form.Description,
		LongDescription: form.LongDescription,
		ImageURL:        imageURL,
		Team:            repository.SplitList(form.Team),
		Funding:         strings.TrimSpace(form.Funding),
		Status:          status,
		Category:        category,
		StartDate:       strings.TrimSpace(form.StartDate),
		EndDate:         endDate,
	}
}

// The form edits every field, so an update patches all of them. Partial
// patches remain available at the repository API for callers that need
// them (the relay's image blanking, for one).

func teamPatch(m model.TeamMember) dto.TeamPatch {
	return dto.TeamPatch{
		Name:              &m.Name,
		Role:              &m.Role,
		RoleOrder:         &m.RoleOrder,
		Bio:               &m.Bio,
		ImageURL:          &m.ImageURL,
		Email:             &m.Email,
		Linkedin:          &m.Linkedin,
		Twitter:           &m.Twitter,
		Education:         &m.Education,
		ResearchInterests: &m.ResearchInterests,
		Awards:            &m.Awards,
		CurrentPosition:   &m.CurrentPosition,
		Achievements:      &m.Achievements,
	}
}

func publicationPatch(p model.Publication) dto.PublicationPatch {
	return dto.PublicationPatch{
		Title:   &p.Title,
		Authors: &p.Authors,
		Journal: &p.Journal,
		Volume:  &p.Volume,
		Year:    &p.Year,
		DOI:     &p.DOI,
	}
}

func researchPatch(p model.ResearchProject) dto.ResearchPatch {
	return dto.ResearchPatch{
		Title:           &p.Title,
		Description:     &p.Description,
		LongDescription: &p.LongDescription,
		ImageURL:        &p.ImageURL,
		Team:            &p.Team,
		Funding:         &p.Funding,
		Status:          &p.Status,
		Category:        &p.Category,
		StartDate:       &p.StartDate,
		EndDate:         &p.EndDate,
	}
}
