package md2rst

import (
	"errors"

	"github.com/alnah/go-md2rst/internal/fileutil"
	"github.com/alnah/go-md2rst/internal/pipeline"
)

// Sentinel errors for library operations. The first four surface sentinels
// from internal packages so callers can match them with errors.Is.
var (
	ErrFilesystem        = fileutil.ErrFilesystem
	ErrMalformedDocument = pipeline.ErrMalformedDocument
	ErrConversion        = pipeline.ErrConversion
	ErrEmptyMarkdown     = pipeline.ErrEmptyContent

	// ErrSourceNotFound means none of the candidate README files could be read.
	ErrSourceNotFound = errors.New("no readable README source found")
)
