package entity

const (
	MIMETypePDF  = "application/pdf"
	MIMETypeDOC  = "application/msword"
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// AllowedResumeTypes lists the MIME types accepted for resume evaluation.
var AllowedResumeTypes = []string{MIMETypePDF, MIMETypeDOC, MIMETypeDOCX}

// ResumeUpload is a file picked for evaluation.
// ContentType is the declared type; when empty it is sniffed from Data.
type ResumeUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Size returns the payload size in bytes.
func (u *ResumeUpload) Size() int64 {
	return int64(len(u.Data))
}

// ResumeEvaluation is the backend's analysis of an uploaded resume.
// It lives only in memory while displayed.
type ResumeEvaluation struct {
	OverallScore         float64            `json:"overall_score"`
	SectionScores        map[string]float64 `json:"section_scores"`
	Strengths            []string           `json:"strengths"`
	Improvements         []string           `json:"improvements"`
	MissingSections      []string           `json:"missing_sections"`
	RecommendedAdditions []string           `json:"recommended_additions"`
	ATSScore             float64            `json:"ats_score"`
}

// ATSVerdict returns the compatibility sentence for the ATS score.
func (e *ResumeEvaluation) ATSVerdict() string {
	switch BandFor(e.ATSScore) {
	case ScoreBandExcellent:
		return "Excellent! Your resume is highly compatible with Applicant Tracking Systems."
	case ScoreBandGood:
		return "Good ATS compatibility. Minor improvements recommended."
	default:
		return "Needs improvement for better ATS compatibility."
	}
}
