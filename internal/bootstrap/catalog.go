package bootstrap

import (
	"context"

	"github.com/Ayuniiieee02/Resume/internal/jobs"
	"github.com/Ayuniiieee02/Resume/internal/resumecheck"
)

// catalogAdapter exposes job listings as the resume matcher's catalog.
type catalogAdapter struct {
	jobs *jobs.Service
}

func (a catalogAdapter) ListCatalog(ctx context.Context) ([]resumecheck.JobPosting, error) {
	postings, err := a.jobs.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]resumecheck.JobPosting, 0, len(postings))
	for _, p := range postings {
		out = append(out, resumecheck.JobPosting{
			ID:             p.ID,
			Title:          p.Title,
			Subject:        p.Subject,
			RequiredSkills: p.RequiredSkills,
			Description:    p.Description,
			HourlyRate:     p.HourlyRate,
			City:           p.City,
			State:          p.State,
		})
	}
	return out, nil
}
