package resumecheck

// Level is a coarse seniority label.
type Level string

const (
	LevelFresher        Level = "Fresher"
	LevelIntermediate   Level = "Intermediate"
	LevelExperienced    Level = "Experienced"
	LevelUnclassifiable Level = "Unclassifiable"
)

// ClassifyLevel applies the page/skill decision table in order.
func ClassifyLevel(pageCount, skillCount int) Level {
	switch {
	case pageCount == 1 && skillCount < 3:
		return LevelFresher
	case pageCount == 2, pageCount == 1 && skillCount >= 3:
		return LevelIntermediate
	case pageCount >= 3:
		return LevelExperienced
	default:
		return LevelUnclassifiable
	}
}
