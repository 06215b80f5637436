package jobs

import (
	"strings"
	"time"
)

// Contact methods a parent may prefer.
const (
	ContactEmail     = "Email"
	ContactPhone     = "Phone"
	ContactMessaging = "Platform Messaging"
)

// Search types accepted by Search.
const (
	SearchLocation = "location"
	SearchTitle    = "job_title"
	SearchSubject  = "job_subject"
)

const dateLayout = "2006-01-02"

// Posting is a tutoring job listed by a parent.
type Posting struct {
	ID                    string    `json:"id"`
	ParentID              string    `json:"parentId"`
	ParentEmail           string    `json:"parentEmail"`
	FullName              string    `json:"fullName"`
	PhoneNumber           string    `json:"phoneNumber"`
	City                  string    `json:"city"`
	State                 string    `json:"state"`
	DetailedAddress       string    `json:"detailedAddress"`
	PreferredContact      string    `json:"preferredContact"`
	Title                 string    `json:"jobTitle"`
	Description           string    `json:"jobDescription"`
	PreferredStartDate    string    `json:"preferredStartDate,omitempty"`
	Frequency             string    `json:"jobFrequency"`
	RequiredSkills        string    `json:"requiredSkills"`
	EducationalBackground string    `json:"educationalBackground"`
	AgeRange              string    `json:"ageRange"`
	HourlyRate            float64   `json:"hourlyRate"`
	RateNegotiable        bool      `json:"rateNegotiable"`
	Subject               string    `json:"jobSubject"`
	SpecialConditions     string    `json:"specialConditions"`
	IsActive              bool      `json:"isActive"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// SubjectTags returns the lowercased, trimmed subject tags.
func (p Posting) SubjectTags() []string {
	return splitTags(p.Subject)
}

// SkillTags returns the lowercased, trimmed required-skill tags.
func (p Posting) SkillTags() []string {
	return splitTags(p.RequiredSkills)
}

func splitTags(raw string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, part := range strings.Split(raw, ",") {
		tag := strings.ToLower(strings.Join(strings.Fields(part), " "))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// SearchQuery is a public search over listings.
type SearchQuery struct {
	Type  string
	Term  string
	Limit int
}
