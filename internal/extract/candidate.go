package extract

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"
)

// Unknown marks a field that could not be located in the document.
const Unknown = "unknown"

// Field is a best-effort extracted value. Absent values are never guessed.
type Field struct {
	Value string
	Found bool
}

func found(v string) Field {
	v = strings.TrimSpace(v)
	if v == "" {
		return Field{}
	}
	return Field{Value: v, Found: true}
}

// String returns the value or the unknown marker.
func (f Field) String() string {
	if !f.Found {
		return Unknown
	}
	return f.Value
}

// MarshalJSON renders absent fields as null.
func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Found {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// UnmarshalJSON accepts a string or null.
func (f *Field) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Field{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = found(s)
	return nil
}

// Candidate is the structured view of a resume.
type Candidate struct {
	Name      Field    `json:"name"`
	Email     Field    `json:"email"`
	Phone     Field    `json:"phone"`
	PageCount int      `json:"pageCount"`
	Skills    []string `json:"skills"`
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`[+(]?\d[\d\s\-().]{7,18}\d`)
)

// headings that can never be a person's name.
var nonNameWords = map[string]struct{}{
	"resume": {}, "curriculum": {}, "vitae": {}, "cv": {}, "objective": {},
	"profile": {}, "summary": {}, "education": {}, "experience": {}, "skills": {},
	"contact": {}, "declaration": {}, "projects": {}, "achievements": {},
	"hobbies": {}, "interests": {}, "personal": {}, "details": {},
}

// ParseCandidate builds a Candidate from extracted text.
func ParseCandidate(text Text) Candidate {
	pages := text.PageCount
	if pages < 1 {
		pages = 1
	}
	return Candidate{
		Name:      found(findName(text.Content)),
		Email:     found(emailPattern.FindString(text.Content)),
		Phone:     found(findPhone(text.Content)),
		PageCount: pages,
		Skills:    FindSkills(text.Content),
	}
}

func findName(content string) string {
	checked := 0
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		checked++
		if checked > 5 {
			break
		}
		if looksLikeName(line) {
			return line
		}
	}
	return ""
}

func looksLikeName(line string) bool {
	if len(line) > 40 {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if _, ok := nonNameWords[strings.ToLower(strings.Trim(w, ":"))]; ok {
			return false
		}
		for _, r := range w {
			if !unicode.IsLetter(r) && r != '.' && r != '-' && r != '\'' {
				return false
			}
		}
		if !unicode.IsUpper([]rune(w)[0]) {
			return false
		}
	}
	return true
}

func findPhone(content string) string {
	for _, m := range phonePattern.FindAllString(content, -1) {
		m = strings.TrimSpace(m)
		if m[0] != '+' && m[0] != '0' && m[0] != '(' {
			continue
		}
		digits := 0
		for _, r := range m {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		if digits >= 9 && digits <= 15 {
			return m
		}
	}
	return ""
}
