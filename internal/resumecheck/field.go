package resumecheck

import "fmt"

// CareerField is the field a candidate is classified into.
type CareerField string

const (
	FieldInformationTechnology CareerField = "Information Technology"
	FieldSoftwareEngineering   CareerField = "Software Engineering"
	FieldMultimedia            CareerField = "Multimedia"
	FieldScience               CareerField = "Science"
	FieldMathematics           CareerField = "Mathematics"
	FieldUnclassified          CareerField = "Unclassified"
)

// FieldClassification is the classifier output.
type FieldClassification struct {
	Field             CareerField `json:"field"`
	RecommendedSkills []string    `json:"recommendedSkills"`
	Advice            string      `json:"advice,omitempty"`
}

type fieldRule struct {
	field       CareerField
	keywords    KeywordSet
	recommended []string
}

// fieldRules is evaluated in order; the first rule containing a skill wins.
var fieldRules = []fieldRule{
	{
		field:       FieldInformationTechnology,
		keywords:    NewKeywordSet(itKeywords...),
		recommended: []string{"Database Management", "Digital Pedagogy", "System Administration"},
	},
	{
		field:       FieldSoftwareEngineering,
		keywords:    NewKeywordSet(softwareKeywords...),
		recommended: []string{"React", "Usability Testing", "Node JS"},
	},
	{
		field:       FieldMultimedia,
		keywords:    NewKeywordSet(multimediaKeywords...),
		recommended: []string{"Motion Graphics", "Blender", "User Interface Design"},
	},
	{
		field:       FieldScience,
		keywords:    NewKeywordSet(scienceKeywords...),
		recommended: []string{"Electrochemistry", "Biodiversity", "Science Experiments"},
	},
	{
		field:       FieldMathematics,
		keywords:    NewKeywordSet(mathKeywords...),
		recommended: []string{"Visual Learning in Math", "Hands-on Math Activities", "Inquiry-based Learning in Math"},
	},
}

// ClassifyField scans skills in order and returns the field of the first
// skill found in any reference set. Later skills are not examined.
func ClassifyField(skills []string) FieldClassification {
	for _, skill := range skills {
		for _, rule := range fieldRules {
			if rule.keywords.Has(skill) {
				return FieldClassification{
					Field:             rule.field,
					RecommendedSkills: append([]string(nil), rule.recommended...),
					Advice:            fmt.Sprintf("Our analysis suggests you are looking for %s Jobs.", rule.field),
				}
			}
		}
	}
	return FieldClassification{Field: FieldUnclassified, RecommendedSkills: []string{}}
}
