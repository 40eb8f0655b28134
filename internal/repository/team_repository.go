package repository

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"labsite/dto"
	"labsite/internal/utils"
	"labsite/model"
)

type TeamRepository interface {
	GetAll(ctx context.Context) ([]model.TeamMember, error)
	Add(ctx context.Context, m model.TeamMember) (model.TeamMember, error)
	Update(ctx context.Context, id string, patch dto.TeamPatch) error
	Delete(ctx context.Context, id string) error
}

type mongoTeamRepo struct {
	col *mongo.Collection
}

func NewTeamRepo(db *mongo.Database) TeamRepository {
	return &mongoTeamRepo{col: db.Collection("teams")}
}

func (r *mongoTeamRepo) GetAll(ctx context.Context) ([]model.TeamMember, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}

	members := make([]model.TeamMember, 0, len(raw))
	for _, doc := range raw {
		members = append(members, memberFromDoc(doc))
	}
	sortMembers(members)
	return members, nil
}

func (r *mongoTeamRepo) Add(ctx context.Context, m model.TeamMember) (model.TeamMember, error) {
	res, err := r.col.InsertOne(ctx, memberDoc(m))
	if err != nil {
		return model.TeamMember{}, fmt.Errorf("add team member: %w", err)
	}
	m.ID = docID(res.InsertedID)
	if m.RoleOrder == 0 {
		m.RoleOrder = model.DefaultRoleOrder
	}
	m.IsAlumni = utils.IsAlumniRole(m.Role)
	return m, nil
}

func (r *mongoTeamRepo) Update(ctx context.Context, id string, patch dto.TeamPatch) error {
	set := teamSetDoc(patch)
	if len(set) == 0 {
		return nil
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid team id %q: %w", id, err)
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update team member: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoTeamRepo) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid team id %q: %w", id, err)
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// memberFromDoc defaults every field so callers never observe a missing
// value, and re-shapes list fields that were stored as scalars.
func memberFromDoc(doc bson.M) model.TeamMember {
	role := asString(doc["role"])
	return model.TeamMember{
		ID:                docID(doc["_id"]),
		Name:              asString(doc["name"]),
		Role:              role,
		RoleOrder:         asInt(doc["roleOrder"], model.DefaultRoleOrder),
		Bio:               asString(doc["bio"]),
		ImageURL:          asString(doc["imageUrl"]),
		Email:             asString(doc["email"]),
		Linkedin:          asString(doc["linkedin"]),
		Twitter:           asString(doc["twitter"]),
		Education:         NormalizeList(doc["education"]),
		ResearchInterests: NormalizeList(doc["researchInterests"]),
		Awards:            NormalizeList(doc["awards"]),
		CurrentPosition:   asString(doc["currentPosition"]),
		Achievements:      asString(doc["achievements"]),
		IsAlumni:          utils.IsAlumniRole(role),
	}
}

func memberDoc(m model.TeamMember) bson.M {
	roleOrder := m.RoleOrder
	if roleOrder == 0 {
		roleOrder = model.DefaultRoleOrder
	}
	return bson.M{
		"name":              m.Name,
		"role":              m.Role,
		"roleOrder":         roleOrder,
		"bio":               m.Bio,
		"imageUrl":          m.ImageURL,
		"email":             m.Email,
		"linkedin":          m.Linkedin,
		"twitter":           m.Twitter,
		"education":         NormalizeList(m.Education),
		"researchInterests": NormalizeList(m.ResearchInterests),
		"awards":            NormalizeList(m.Awards),
		"currentPosition":   m.CurrentPosition,
		"achievements":      m.Achievements,
	}
}

func teamSetDoc(p dto.TeamPatch) bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Role != nil {
		set["role"] = *p.Role
	}
	if p.RoleOrder != nil {
		ro := *p.RoleOrder
		if ro == 0 {
			ro = model.DefaultRoleOrder
		}
		set["roleOrder"] = ro
	}
	if p.Bio != nil {
		set["bio"] = *p.Bio
	}
	if p.ImageURL != nil {
		set["imageUrl"] = *p.ImageURL
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.Linkedin != nil {
		set["linkedin"] = *p.Linkedin
	}
	if p.Twitter != nil {
		set["twitter"] = *p.Twitter
	}
	if p.Education != nil {
		set["education"] = NormalizeList(*p.Education)
	}
	if p.ResearchInterests != nil {
		set["researchInterests"] = NormalizeList(*p.ResearchInterests)
	}
	if p.Awards != nil {
		set["awards"] = NormalizeList(*p.Awards)
	}
	if p.CurrentPosition != nil {
		set["currentPosition"] = *p.CurrentPosition
	}
	if p.Achievements != nil {
		set["achievements"] = *p.Achievements
	}
	return set
}

// sortMembers orders by roleOrder ascending, ties broken by name. Done
// in memory because the composite ordering also has to hold for legacy
// documents with no roleOrder field at all.
func sortMembers(members []model.TeamMember) {
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].RoleOrder != members[j].RoleOrder {
			return members[i].RoleOrder < members[j].RoleOrder
		}
		return members[i].Name < members[j].Name
	})
}
