package resume

import "strings"

// Resume is the generate request body. The flat fields and the nested ones are both accepted;
// nested values win when both are set.
type Resume struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Summary      string `json:"summary,omitempty"`
	Experience   string `json:"experience,omitempty"`
	Education    string `json:"education,omitempty"`
	Skills       string `json:"skills,omitempty"`
	Achievements string `json:"achievements,omitempty"`

	PersonalInformation *PersonalInformation `json:"personalInformation,omitempty"`
	Experiences         []Experience         `json:"experiences,omitempty"`
	Educations          []Education          `json:"educations,omitempty"`
	SkillsList          []string             `json:"skillsList,omitempty"`
	AchievementsList    []string             `json:"achievementsList,omitempty"`
}

// PersonalInformation is the contact block of a resume.
type PersonalInformation struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

type Experience struct {
	Company          string   `json:"company,omitempty"`
	Position         string   `json:"position,omitempty"`
	Duration         string   `json:"duration,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

type Education struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// FullName returns the nested name, falling back to the flat one.
func (r Resume) FullName() string {
	if r.PersonalInformation != nil && r.PersonalInformation.Name != "" {
		return r.PersonalInformation.Name
	}
	return r.Name
}

// ContactEmail returns the nested email, falling back to the flat one.
func (r Resume) ContactEmail() string {
	if r.PersonalInformation != nil && r.PersonalInformation.Email != "" {
		return r.PersonalInformation.Email
	}
	return r.Email
}

// ContactPhone returns the nested phone, falling back to the flat one.
func (r Resume) ContactPhone() string {
	if r.PersonalInformation != nil && r.PersonalInformation.Phone != "" {
		return r.PersonalInformation.Phone
	}
	return r.Phone
}

// HasSummary reports whether the request carries a free-text summary.
func (r Resume) HasSummary() bool {
	return r.Summary != ""
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
