package entity

// ProfileUpdate is the editable personal information sent to PUT /profile.
type ProfileUpdate struct {
	Name       string `json:"name"`
	College    string `json:"college"`
	Branch     string `json:"branch"`
	Year       string `json:"year"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Projects   string `json:"projects"`
}

// ProfileProject is a project listed on a synthetic or imported profile.
type ProfileProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
}

// ProfileExperience is a work or society entry on a synthetic profile.
type ProfileExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ProfileEducation is an education entry on a synthetic or imported profile.
type ProfileEducation struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
	Activities  string `json:"activities,omitempty"`
}

// MatchingProfile is the synthetic candidate profile submitted for company matching.
type MatchingProfile struct {
	Name           string               `json:"name"`
	Location       string               `json:"location"`
	Headline       string               `json:"headline"`
	Summary        string               `json:"summary"`
	Skills         []string             `json:"skills"`
	Experience     []*ProfileExperience `json:"experience"`
	Education      []*ProfileEducation  `json:"education"`
	Projects       []*ProfileProject    `json:"projects"`
	Certifications []string             `json:"certifications"`
	Interests      []string             `json:"interests"`
	Languages      []string             `json:"languages"`
	Achievements   []string             `json:"achievements"`
}

// LinkedInData is the sample LinkedIn import generated from the profile form.
type LinkedInData struct {
	Headline  string              `json:"headline"`
	Summary   string              `json:"summary"`
	Skills    []string            `json:"skills"`
	Education []*ProfileEducation `json:"education"`
	Projects  []*ProfileProject   `json:"projects"`
}
