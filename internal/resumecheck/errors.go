package resumecheck

import (
	"errors"

	"github.com/Ayuniiieee02/Resume/internal/extract"
)

var (
	// ErrDocumentUnreadable aborts a check.
	ErrDocumentUnreadable = extract.ErrDocumentUnreadable
	// ErrCatalogUnavailable degrades a check to zero job matches.
	ErrCatalogUnavailable = errors.New("job catalog unavailable")
	// ErrStorageWriteFailed is reported on the result; the analysis is still returned.
	ErrStorageWriteFailed = errors.New("storage write failed")
	ErrInvalidInput       = errors.New("invalid input")
)
