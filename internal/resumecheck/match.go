package resumecheck

import (
	"context"
	"fmt"
	"strings"
)

// JobPosting is the catalog view of a job listing used for matching.
type JobPosting struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Subject        string  `json:"subject"`
	RequiredSkills string  `json:"requiredSkills"`
	Description    string  `json:"description"`
	HourlyRate     float64 `json:"hourlyRate"`
	City           string  `json:"city,omitempty"`
	State          string  `json:"state,omitempty"`
}

// SubjectTags returns the normalized comma-separated subject tags.
func (p JobPosting) SubjectTags() KeywordSet {
	return SplitTags(p.Subject)
}

// SkillTags returns the normalized comma-separated required-skill tags.
func (p JobPosting) SkillTags() KeywordSet {
	return SplitTags(p.RequiredSkills)
}

// SplitTags splits a comma-separated field into a KeywordSet.
func SplitTags(raw string) KeywordSet {
	return NewKeywordSet(strings.Split(raw, ",")...)
}

// CatalogSource supplies the job catalog in fetch order.
type CatalogSource interface {
	ListCatalog(ctx context.Context) ([]JobPosting, error)
}

// Matcher filters the catalog against candidate keywords.
type Matcher struct {
	Catalog CatalogSource
}

// Match returns postings whose subject or skill tags intersect keywords,
// in catalog order. A catalog failure returns an empty slice together with
// an error wrapping ErrCatalogUnavailable.
func (m Matcher) Match(ctx context.Context, keywords KeywordSet) ([]JobPosting, error) {
	if m.Catalog == nil {
		return []JobPosting{}, fmt.Errorf("%w: no catalog configured", ErrCatalogUnavailable)
	}
	catalog, err := m.Catalog.ListCatalog(ctx)
	if err != nil {
		return []JobPosting{}, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return FilterPostings(catalog, keywords), nil
}

// FilterPostings is the pure matching predicate applied over a catalog.
func FilterPostings(catalog []JobPosting, keywords KeywordSet) []JobPosting {
	out := make([]JobPosting, 0)
	if len(keywords) == 0 {
		return out
	}
	for _, p := range catalog {
		if p.SubjectTags().Intersects(keywords) || p.SkillTags().Intersects(keywords) {
			out = append(out, p)
		}
	}
	return out
}
