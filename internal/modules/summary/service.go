package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rohit273848/travel-notes-app/internal/modules/note"
)

// ErrSummaryUnavailable means the external summarizer failed. It is distinct from the
// empty-result case, which is not an error at all.
var ErrSummaryUnavailable = errors.New("summary provider unavailable")

// NoNotesMessage is returned verbatim when no public notes match the place query.
const NoNotesMessage = "No notes available for this place."

type Service struct {
	notes      *note.Service
	summarizer Summarizer
}

func NewService(notes *note.Service, summarizer Summarizer) *Service {
	return &Service{notes: notes, summarizer: summarizer}
}

// Summarize gathers public notes matching the place query and asks the provider for a
// summary of their combined text. With zero matches it returns NoNotesMessage without
// touching the provider at all.
func (s *Service) Summarize(ctx context.Context, placeQuery string) (string, error) {
	matched, err := s.notes.SearchPublicByPlace(placeQuery)
	if err != nil {
		return "", err
	}
	if len(matched) == 0 {
		return NoNotesMessage, nil
	}

	// Stable order = the repository's newest-first order.
	texts := make([]string, 0, len(matched))
	for _, n := range matched {
		texts = append(texts, n.NoteText)
	}

	out, err := s.summarizer.Summarize(ctx, strings.Join(texts, "\n"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummaryUnavailable, err)
	}
	return out, nil
}
