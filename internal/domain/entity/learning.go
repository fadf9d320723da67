package entity

// LearningResource is one recommended video or course.
type LearningResource struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Channel  string `json:"channel,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// LearningCategory groups resources under a topic.
type LearningCategory struct {
	Category    string              `json:"category"`
	Description string              `json:"description,omitempty"`
	Resources   []*LearningResource `json:"resources"`
}

// LearnerProfile is what the backend inferred about the user.
type LearnerProfile struct {
	Skills              []string `json:"skills"`
	Branch              string   `json:"branch"`
	IdentifiedWeakAreas []string `json:"identified_weak_areas"`
}

// LearningRecommendations is the learning-resources panel payload.
type LearningRecommendations struct {
	UserProfile     *LearnerProfile     `json:"user_profile"`
	Recommendations []*LearningCategory `json:"recommendations"`
}
