package utils

import "strings"

// roleRanks is the explicit ordering for the role names the admin form
// offers. Unknown roles fall back to the default rank and sort last.
var roleRanks = map[string]struct {
	Rank   int
	Alumni bool
}{
	"Principal Investigator":    {Rank: 1},
	"Senior Research Scientist": {Rank: 2},
	"Postdoctoral Researcher":   {Rank: 3},
	"PhD Student":               {Rank: 4},
	"Research Assistant":        {Rank: 5},
	"Former Postdoc":            {Rank: 100, Alumni: true},
	"Former PhD Student":        {Rank: 101, Alumni: true},
	"Former Research Assistant": {Rank: 102, Alumni: true},
}

const defaultRoleRank = 999

// RoleRank returns the sort rank for a role name, defaultRoleRank when
// the role is not in the table.
func RoleRank(role string) int {
	if r, ok := roleRanks[role]; ok {
		return r.Rank
	}
	return defaultRoleRank
}

// IsAlumniRole reports whether a role designates a former member. For
// roles outside the table it falls back to a "former" prefix check so
// free-text roles entered before the table existed still classify.
func IsAlumniRole(role string) bool {
	if r, ok := roleRanks[role]; ok {
		return r.Alumni
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(role)), "former")
}
