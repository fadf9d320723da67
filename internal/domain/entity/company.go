package entity

// JobPlatform names an external job board a company links to.
type JobPlatform string

const (
	JobPlatformLinkedIn JobPlatform = "LinkedIn"
	JobPlatformIndeed   JobPlatform = "Indeed"
	JobPlatformNaukri   JobPlatform = "Naukri"
	JobPlatformCareers  JobPlatform = "Careers"
)

// JobPlatforms lists the platforms offered on a matched company, in display order.
var JobPlatforms = []JobPlatform{JobPlatformLinkedIn, JobPlatformIndeed, JobPlatformNaukri, JobPlatformCareers}

// JobLinks holds the external job-posting URLs of a company.
type JobLinks struct {
	LinkedIn       string `json:"linkedin,omitempty"`
	Indeed         string `json:"indeed,omitempty"`
	Naukri         string `json:"naukri,omitempty"`
	CompanyCareers string `json:"company_careers,omitempty"`
}

// For returns the link for a platform, or "" when the company has none.
func (l *JobLinks) For(platform JobPlatform) string {
	if l == nil {
		return ""
	}

	switch platform {
	case JobPlatformLinkedIn:
		return l.LinkedIn
	case JobPlatformIndeed:
		return l.Indeed
	case JobPlatformNaukri:
		return l.Naukri
	case JobPlatformCareers:
		return l.CompanyCareers
	default:
		return ""
	}
}

// JobOpening is a currently advertised position.
type JobOpening struct {
	Title      string `json:"title"`
	Experience string `json:"experience"`
	ApplyLink  string `json:"apply_link"`
	Posted     string `json:"posted"`
}

// Company is a directory entry served by the backend.
type Company struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Industry            string        `json:"industry"`
	Type                string        `json:"type"`
	Size                string        `json:"size"`
	SalaryRange         string        `json:"salary_range"`
	Locations           []string      `json:"locations"`
	RemoteFriendly      bool          `json:"remote_friendly"`
	HiringProcess       []string      `json:"hiring_process"`
	Requirements        []string      `json:"requirements"`
	TechStack           []string      `json:"tech_stack"`
	Culture             []string      `json:"culture"`
	Benefits            []string      `json:"benefits"`
	GrowthOpportunities []string      `json:"growth_opportunities"`
	CompanyValues       []string      `json:"company_values,omitempty"`
	WorkEnvironment     string        `json:"work_environment,omitempty"`
	FoundedYear         int           `json:"founded_year,omitempty"`
	FundingStage        string        `json:"funding_stage,omitempty"`
	Description         string        `json:"description"`
	JobLinks            *JobLinks     `json:"job_links,omitempty"`
	ActiveOpenings      []*JobOpening `json:"active_openings,omitempty"`
}
