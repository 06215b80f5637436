package resumecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreResumeDeclarationAndProjects(t *testing.T) {
	got := ScoreResume("Declaration: all true.\nProjects: science fair")
	assert.Equal(t, 40, got.Total)
	assert.Equal(t, map[string]bool{
		SectionObjective:    false,
		SectionDeclaration:  true,
		SectionHobbies:      false,
		SectionAchievements: false,
		SectionProjects:     true,
	}, got.Sections)
	assert.Len(t, got.Tips, 5)
	assert.Equal(t, "[-] Please add your career objective, it will give your career intention to the Recruiters.", got.Tips[0].Message)
	assert.True(t, got.Tips[1].Present)
}

func TestScoreResumeIsCaseSensitive(t *testing.T) {
	got := ScoreResume("objective declaration hobbies achievements projects")
	assert.Equal(t, 0, got.Total)
}

func TestScoreResumeInterestsCountsAsHobbies(t *testing.T) {
	got := ScoreResume("Interests: chess")
	assert.Equal(t, 20, got.Total)
	assert.True(t, got.Sections[SectionHobbies])
}

func TestScoreResumeIsTwentyPerMarker(t *testing.T) {
	texts := []string{
		"",
		"Objective",
		"Objective Declaration",
		"Objective Declaration Hobbies",
		"Objective Declaration Hobbies Achievements",
		"Objective Declaration Hobbies Achievements Projects",
		"Objective Objective Hobbies Interests",
	}
	for _, text := range texts {
		got := ScoreResume(text)
		present := 0
		for _, ok := range got.Sections {
			if ok {
				present++
			}
		}
		assert.Equal(t, 20*present, got.Total, "text %q", text)
		assert.Zero(t, got.Total%20)
		assert.LessOrEqual(t, got.Total, 100)
	}
}
