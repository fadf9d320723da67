package entity

// MatchScore is the composite score breakdown computed by the backend.
type MatchScore struct {
	Overall         float64 `json:"overall"`
	SkillMatch      float64 `json:"skill_match"`
	CultureMatch    float64 `json:"culture_match"`
	LocationMatch   float64 `json:"location_match"`
	ExperienceMatch float64 `json:"experience_match,omitempty"`
	SalaryScore     float64 `json:"salary_score,omitempty"`
}

// MatchedCompany is a directory entry enriched with its match against the submitted profile.
type MatchedCompany struct {
	Company

	MatchScore        MatchScore `json:"match_score"`
	MatchExplanations []string   `json:"match_explanations"`
	MatchingSkills    []string   `json:"matching_skills"`
	RecommendedRoles  []string   `json:"recommended_roles"`
}

// ProfileSummary echoes what the backend extracted from the submitted profile.
type ProfileSummary struct {
	Skills          []string `json:"skills"`
	Location        string   `json:"location"`
	ExperienceCount int      `json:"experience_count"`
	Interests       []string `json:"interests"`
}

// MatchResults is the ranked output of server-side matching. Read-only on the client.
type MatchResults struct {
	UserProfileSummary *ProfileSummary   `json:"user_profile_summary,omitempty"`
	MatchedCompanies   []*MatchedCompany `json:"matched_companies"`
	TotalMatches       int               `json:"total_matches"`
	TopMatches         []*MatchedCompany `json:"top_matches,omitempty"`
}

// ScoreBand buckets a 0-100 score for display.
type ScoreBand string

const (
	ScoreBandExcellent ScoreBand = "excellent"
	ScoreBandGood      ScoreBand = "good"
	ScoreBandFair      ScoreBand = "fair"
)

// BandFor returns the display band of a score.
func BandFor(score float64) ScoreBand {
	switch {
	case score >= 80:
		return ScoreBandExcellent
	case score >= 60:
		return ScoreBandGood
	default:
		return ScoreBandFair
	}
}

// MatchLabel returns the label shown next to an overall match score.
func (b ScoreBand) MatchLabel() string {
	switch b {
	case ScoreBandExcellent:
		return "Excellent Match"
	case ScoreBandGood:
		return "Good Match"
	default:
		return "Fair Match"
	}
}
