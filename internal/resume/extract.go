package resume

import (
	"regexp"
	"strings"
)

const (
	DefaultCandidateName  = "Professional Candidate"
	DefaultCandidateEmail = "candidate@example.com"
)

var (
	selfIntroPattern = regexp.MustCompile(`I'm ([A-Za-z ]+)|My name is ([A-Za-z ]+)|I am ([A-Za-z ]+)`)
	emailPattern     = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

// ExtractPersonalInfo pulls a name and email out of a free-text summary, using placeholders
// for anything it cannot find.
func ExtractPersonalInfo(summary string) PersonalInformation {
	info := PersonalInformation{
		Name:  DefaultCandidateName,
		Email: DefaultCandidateEmail,
	}

	if m := selfIntroPattern.FindStringSubmatch(summary); m != nil {
		for _, group := range m[1:] {
			if group != "" {
				info.Name = strings.TrimSpace(group)
				break
			}
		}
	}
	if email := emailPattern.FindString(summary); email != "" {
		info.Email = email
	}
	return info
}
