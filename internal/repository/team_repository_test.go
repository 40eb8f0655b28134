package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"labsite/dto"
	"labsite/model"
)

func TestMemberFromDocDefaults(t *testing.T) {
	m := memberFromDoc(bson.M{"_id": bson.NewObjectID()})

	assert.Equal(t, "", m.Name)
	assert.Equal(t, "", m.ImageURL)
	assert.Equal(t, model.DefaultRoleOrder, m.RoleOrder)
	assert.Equal(t, []string{}, m.Education)
	assert.Equal(t, []string{}, m.ResearchInterests)
	assert.Equal(t, []string{}, m.Awards)
	assert.False(t, m.IsAlumni)
}

func TestMemberFromDocScalarListField(t *testing.T) {
	m := memberFromDoc(bson.M{
		"name":      "Ann",
		"education": "PhD in Chemistry",
		"roleOrder": int32(2),
	})

	assert.Equal(t, []string{"PhD in Chemistry"}, m.Education)
	assert.Equal(t, 2, m.RoleOrder)
}

func TestMemberFromDocAlumniRole(t *testing.T) {
	m := memberFromDoc(bson.M{"role": "Former PhD Student"})
	assert.True(t, m.IsAlumni)
}

func TestSortMembers(t *testing.T) {
	members := []model.TeamMember{
		{Name: "Ann", RoleOrder: model.DefaultRoleOrder},
		{Name: "Zed", RoleOrder: 1},
		{Name: "Bob", RoleOrder: 2},
	}
	sortMembers(members)

	assert.Equal(t, "Zed", members[0].Name)
	assert.Equal(t, "Bob", members[1].Name)
	assert.Equal(t, "Ann", members[2].Name)
}

func TestSortMembersNameTiebreak(t *testing.T) {
	members := []model.TeamMember{
		{Name: "Carol", RoleOrder: 3},
		{Name: "Alice", RoleOrder: 3},
	}
	sortMembers(members)
	assert.Equal(t, "Alice", members[0].Name)
}

func TestTeamSetDocEmptyPatch(t *testing.T) {
	assert.Empty(t, teamSetDoc(dto.TeamPatch{}))
}

func TestTeamSetDocNormalizesLists(t *testing.T) {
	edu := []string{" a ", "", "b"}
	set := teamSetDoc(dto.TeamPatch{Education: &edu})
	assert.Equal(t, []string{"a", "b"}, set["education"])
}

func TestTeamSetDocRoleOrderZeroDefaults(t *testing.T) {
	zero := 0
	set := teamSetDoc(dto.TeamPatch{RoleOrder: &zero})
	assert.Equal(t, model.DefaultRoleOrder, set["roleOrder"])
}

func TestMemberDocRoleOrderDefault(t *testing.T) {
	doc := memberDoc(model.TeamMember{Name: "Ann"})
	assert.Equal(t, model.DefaultRoleOrder, doc["roleOrder"])
	assert.Equal(t, []string{}, doc["education"])
}
