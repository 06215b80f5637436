package resumecheck

import "strings"

// Section names scored by ScoreResume.
const (
	SectionObjective    = "Objective"
	SectionDeclaration  = "Declaration"
	SectionHobbies      = "Hobbies"
	SectionAchievements = "Achievements"
	SectionProjects     = "Projects"
)

const sectionPoints = 20

type sectionRule struct {
	name    string
	markers []string
	present string
	missing string
}

var sectionRules = []sectionRule{
	{
		name:    SectionObjective,
		markers: []string{"Objective"},
		present: "[+] Awesome! You have added Objective",
		missing: "[-] Please add your career objective, it will give your career intention to the Recruiters.",
	},
	{
		name:    SectionDeclaration,
		markers: []string{"Declaration"},
		present: "[+] Awesome! You have added Declaration",
		missing: "[-] Please add Declaration. It will give the assurance that everything written on your resume is true and fully acknowledged by you",
	},
	{
		name:    SectionHobbies,
		markers: []string{"Hobbies", "Interests"},
		present: "[+] Awesome! You have added your Hobbies",
		missing: "[-] Please add Hobbies. It will show your personality to the Recruiters and give the assurance that you are fit for this role or not.",
	},
	{
		name:    SectionAchievements,
		markers: []string{"Achievements"},
		present: "[+] Awesome! You have added your Achievements",
		missing: "[-] Please add Achievements. It will show that you are capable for the required position.",
	},
	{
		name:    SectionProjects,
		markers: []string{"Projects"},
		present: "[+] Awesome! You have added your Projects",
		missing: "[-] Please add Projects. It will show that you have done work related to the required position or not.",
	},
}

// Tip is per-section feedback.
type Tip struct {
	Section string `json:"section"`
	Present bool   `json:"present"`
	Message string `json:"message"`
}

// ResumeScore is the section-completeness score.
type ResumeScore struct {
	Total    int             `json:"total"`
	Sections map[string]bool `json:"sections"`
	Tips     []Tip           `json:"tips"`
}

// ScoreResume adds 20 points per section whose marker appears in text.
// Matching is a case-sensitive substring search.
func ScoreResume(text string) ResumeScore {
	score := ResumeScore{
		Sections: make(map[string]bool, len(sectionRules)),
		Tips:     make([]Tip, 0, len(sectionRules)),
	}
	for _, rule := range sectionRules {
		present := false
		for _, marker := range rule.markers {
			if strings.Contains(text, marker) {
				present = true
				break
			}
		}
		score.Sections[rule.name] = present
		tip := Tip{Section: rule.name, Present: present, Message: rule.missing}
		if present {
			score.Total += sectionPoints
			tip.Message = rule.present
		}
		score.Tips = append(score.Tips, tip)
	}
	return score
}
