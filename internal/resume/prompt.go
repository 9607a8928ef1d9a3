package resume

import "strings"

const (
	summaryPromptIntro = "You are a professional resume writer. Create a detailed, professional resume based on the following summary. " +
		"Extract key information and create appropriate sections. " +
		"Make reasonable assumptions where information is missing.\n\n"

	detailedPromptIntro = "You are a professional resume writer. Create a detailed, professional resume based on the following information. " +
		"Format the resume with proper sections, bullet points, and professional language. " +
		"Make the resume compelling and highlight achievements and skills.\n\n"

	promptInstructions = "Please create a professional resume with the following sections:\n" +
		"1. Contact Information (at the top, starting with a line \"Name: <full name>\")\n" +
		"2. Professional Summary\n" +
		"3. Skills (as bullet points)\n" +
		"4. Work Experience (with dates, company names, and achievements)\n" +
		"5. Education\n" +
		"6. Achievements and Certifications\n\n" +
		"Format the resume professionally with proper spacing, bullet points, and section headers. " +
		"Use action verbs and quantify achievements where possible. " +
		"Make the resume compelling and highlight the most relevant information for the job market."
)

// BuildSummaryPrompt asks the model to write a resume from the free-text summary alone.
func BuildSummaryPrompt(r Resume) string {
	var b strings.Builder
	b.WriteString(summaryPromptIntro)
	if name := r.FullName(); name != "" {
		b.WriteString("CANDIDATE NAME: ")
		b.WriteString(name)
		b.WriteString("\n\n")
	}
	b.WriteString("SUMMARY:\n")
	b.WriteString(r.Summary)
	b.WriteString("\n\n")
	b.WriteString(promptInstructions)
	return b.String()
}

// BuildPrompt asks the model to write a resume from the structured request.
func BuildPrompt(r Resume) string {
	var b strings.Builder
	b.WriteString(detailedPromptIntro)
	writeSections(&b, r)
	b.WriteString(promptInstructions)
	return b.String()
}

// RenderMock formats the request as a plain-text resume without calling a model.
func RenderMock(r Resume) string {
	var b strings.Builder
	writeSections(&b, r)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeSections(b *strings.Builder, r Resume) {
	b.WriteString("PERSONAL INFORMATION\n")
	writeField(b, "Name", r.FullName())
	writeField(b, "Email", r.ContactEmail())
	writeField(b, "Phone", r.ContactPhone())
	if pi := r.PersonalInformation; pi != nil {
		writeField(b, "Address", pi.Address)
		writeField(b, "LinkedIn", pi.LinkedIn)
		writeField(b, "GitHub", pi.GitHub)
	}
	b.WriteString("\n")

	b.WriteString("SUMMARY\n")
	if r.HasSummary() {
		b.WriteString(r.Summary)
		b.WriteString("\n\n")
	} else {
		b.WriteString("Experienced professional with strong skills in various domains. " +
			"Looking for opportunities to contribute and grow in a dynamic environment.\n\n")
	}

	b.WriteString("SKILLS\n")
	switch {
	case len(r.SkillsList) > 0:
		writeBullets(b, r.SkillsList)
		b.WriteString("\n")
	case r.Skills != "":
		b.WriteString(r.Skills)
		b.WriteString("\n\n")
	default:
		writeBullets(b, []string{
			"Strong communication and interpersonal skills",
			"Problem-solving and analytical abilities",
			"Team collaboration and leadership",
		})
		b.WriteString("\n")
	}

	b.WriteString("EXPERIENCE\n")
	switch {
	case len(r.Experiences) > 0:
		for _, exp := range r.Experiences {
			b.WriteString(exp.Company)
			b.WriteString(" - ")
			b.WriteString(exp.Position)
			b.WriteString("\n")
			if exp.Duration != "" {
				b.WriteString(exp.Duration)
				b.WriteString("\n")
			}
			writeBullets(b, exp.Responsibilities)
			b.WriteString("\n")
		}
	case r.Experience != "":
		b.WriteString(r.Experience)
		b.WriteString("\n\n")
	default:
		b.WriteString("Professional Experience\n" +
			"Various roles demonstrating strong work ethic and ability to adapt to different environments.\n\n")
	}

	b.WriteString("EDUCATION\n")
	switch {
	case len(r.Educations) > 0:
		for _, edu := range r.Educations {
			b.WriteString(edu.Institution)
			b.WriteString("\n")
			b.WriteString(edu.Degree)
			if edu.Field != "" {
				b.WriteString(" in ")
				b.WriteString(edu.Field)
			}
			b.WriteString("\n")
			if edu.Duration != "" {
				b.WriteString(edu.Duration)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	case r.Education != "":
		b.WriteString(r.Education)
		b.WriteString("\n\n")
	default:
		b.WriteString("Relevant educational background with focus on professional development.\n\n")
	}

	b.WriteString("ACHIEVEMENTS\n")
	switch {
	case len(r.AchievementsList) > 0:
		writeBullets(b, r.AchievementsList)
		b.WriteString("\n")
	case r.Achievements != "":
		b.WriteString(r.Achievements)
		b.WriteString("\n\n")
	default:
		writeBullets(b, []string{
			"Consistently recognized for outstanding performance",
			"Successfully completed multiple challenging projects",
		})
		b.WriteString("\n")
	}
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}
