package resumecheck

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	postings []JobPosting
	err      error
}

func (s stubCatalog) ListCatalog(context.Context) ([]JobPosting, error) {
	return s.postings, s.err
}

func TestMatchSubjectTags(t *testing.T) {
	catalog := stubCatalog{postings: []JobPosting{
		{ID: "1", Title: "Math tutor", Subject: "Math, Science"},
	}}
	got, err := Matcher{Catalog: catalog}.Match(context.Background(), NewKeywordSet("math"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestMatchPreservesCatalogOrder(t *testing.T) {
	catalog := stubCatalog{postings: []JobPosting{
		{ID: "a", Subject: "English", RequiredSkills: "Teaching, Communication"},
		{ID: "b", Subject: "Art"},
		{ID: "c", Subject: " python ,Coding"},
		{ID: "d", RequiredSkills: "Leadership"},
	}}
	got, err := Matcher{Catalog: catalog}.Match(context.Background(), NewKeywordSet("python", "teaching"))
	require.NoError(t, err)
	ids := make([]string, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	catalog := stubCatalog{postings: []JobPosting{{ID: "1", Subject: "SQL"}}}
	for _, kw := range []string{"sql", "SQL", "Sql", " sQl "} {
		got, err := Matcher{Catalog: catalog}.Match(context.Background(), NewKeywordSet(kw))
		require.NoError(t, err)
		assert.Len(t, got, 1, "keyword %q", kw)
	}
}

func TestMatchEmptyResultIsNotAnError(t *testing.T) {
	catalog := stubCatalog{postings: []JobPosting{{ID: "1", Subject: "Music"}}}
	got, err := Matcher{Catalog: catalog}.Match(context.Background(), NewKeywordSet("python"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatchCatalogFailureDegradesToEmpty(t *testing.T) {
	catalog := stubCatalog{err: errors.New("connection refused")}
	got, err := Matcher{Catalog: catalog}.Match(context.Background(), NewKeywordSet("python"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.True(t, strings.Contains(err.Error(), "connection refused"))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatchWithoutCatalog(t *testing.T) {
	got, err := Matcher{}.Match(context.Background(), NewKeywordSet("python"))
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.Empty(t, got)
}

func TestSplitTagsDropsEmptyTokens(t *testing.T) {
	tags := SplitTags("Math,, Science ,")
	assert.Equal(t, []string{"math", "science"}, tags.Sorted())
}
