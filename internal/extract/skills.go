package extract

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// vocabulary lists the skill terms recognised in resumes.
var vocabulary = []string{
	// information technology
	"Information Technology", "SQL", "MySQL", "Database", "Networking", "Cybersecurity",
	"Linux", "System Administration", "Cloud Computing", "IT Support", "Computer Hardware",
	"Microsoft Office", "Excel", "ICT", "Troubleshooting",
	// software
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "PHP", "HTML", "CSS",
	"React", "Node JS", "Django", "Flutter", "Kotlin", "Swift", "Git",
	"Software Development", "Programming", "Coding",
	// multimedia
	"Blender", "Photoshop", "Illustrator", "Premiere Pro", "After Effects", "Video Editing",
	"Graphic Design", "Animation", "UI Design", "UX Design", "Figma", "Canva",
	"Photography", "Motion Graphics", "3D Modeling",
	// science
	"Science", "Biology", "Chemistry", "Physics", "Laboratory", "Biotechnology", "Ecology",
	"Microbiology", "Environmental Science", "Astronomy", "Genetics", "Anatomy",
	// mathematics
	"Math", "Mathematics", "Additional Mathematics", "Algebra", "Calculus", "Geometry",
	"Statistics", "Trigonometry", "Arithmetic", "Mental Arithmetic", "Probability",
	// general
	"Teaching", "Tutoring", "Communication", "Leadership", "Public Speaking", "Teamwork",
	"Problem Solving", "Time Management", "Critical Thinking", "Lesson Planning",
	"Classroom Management", "Creativity", "English", "Bahasa Melayu", "Mandarin", "Tamil",
}

type skillPattern struct {
	term string
	re   *regexp.Regexp
}

var (
	skillPatternsOnce sync.Once
	skillPatterns     []skillPattern
)

func compiledSkills() []skillPattern {
	skillPatternsOnce.Do(func() {
		terms := append([]string(nil), vocabulary...)
		// longest first so "Additional Mathematics" claims its span before "Mathematics"
		sort.SliceStable(terms, func(i, j int) bool { return len(terms[i]) > len(terms[j]) })
		for _, term := range terms {
			quoted := strings.ReplaceAll(regexp.QuoteMeta(term), " ", `\s+`)
			skillPatterns = append(skillPatterns, skillPattern{
				term: term,
				re:   regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}+#])(` + quoted + `)(?:[^\p{L}\p{N}+#]|$)`),
			})
		}
	})
	return skillPatterns
}

// Vocabulary returns a copy of the recognised skill terms.
func Vocabulary() []string {
	return append([]string(nil), vocabulary...)
}

type span struct{ start, end int }

// spans holds disjoint spans ordered by start.
type spans []span

func (c spans) overlaps(s span) bool {
	i := sort.Search(len(c), func(i int) bool { return c[i].end > s.start })
	return i < len(c) && c[i].start < s.end
}

// merge returns the union of two ordered, mutually disjoint span lists.
func (c spans) merge(add spans) spans {
	if len(add) == 0 {
		return c
	}
	out := make(spans, 0, len(c)+len(add))
	i, j := 0, 0
	for i < len(c) && j < len(add) {
		if c[i].start < add[j].start {
			out = append(out, c[i])
			i++
		} else {
			out = append(out, add[j])
			j++
		}
	}
	out = append(out, c[i:]...)
	return append(out, add[j:]...)
}

type skillHit struct {
	pos  int
	text string
}

// FindSkills returns vocabulary terms present in content, ordered by first
// appearance, using the casing found in the document. A term is not reported
// when it only occurs inside a longer recognised term.
func FindSkills(content string) []string {
	var (
		claimed spans
		hits    []skillHit
	)

	for _, p := range compiledSkills() {
		var found spans
		for _, loc := range p.re.FindAllStringSubmatchIndex(content, -1) {
			s := span{start: loc[2], end: loc[3]}
			if claimed.overlaps(s) {
				continue
			}
			found = append(found, s)
		}
		if len(found) == 0 {
			continue
		}
		first := found[0]
		hits = append(hits, skillHit{
			pos:  first.start,
			text: strings.Join(strings.Fields(content[first.start:first.end]), " "),
		})
		claimed = claimed.merge(found)
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.text)
	}
	return out
}
