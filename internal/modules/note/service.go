package note

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Rohit273848/travel-notes-app/internal/models"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// publicOnly is the single predicate both schema generations funnel through: canonical
// rows match on visibility, legacy rows on the old is_public flag.
func publicOnly(tx *gorm.DB) *gorm.DB {
	return tx.Where("visibility = ? OR (visibility = '' AND is_public = ?)", models.VisibilityPublic, true)
}

// Create validates and persists a note for the given owner.
func (s *Service) Create(ownerID string, in *NoteInput) (*models.NoteModel, error) {
	note, verr := buildNote(ownerID, in)
	if verr != nil {
		return nil, verr
	}
	if err := s.db.Create(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

// ListByOwner returns all of one user's notes, newest first, public and personal alike.
func (s *Service) ListByOwner(ownerID string) ([]models.NoteModel, error) {
	notes := make([]models.NoteModel, 0)
	err := s.db.Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

// ListPublic returns every publicly visible note, newest first.
func (s *Service) ListPublic() ([]models.NoteModel, error) {
	notes := make([]models.NoteModel, 0)
	err := s.db.Scopes(publicOnly).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

// likeEscaper neutralizes LIKE metacharacters so the query substring matches
// literally. '!' is the escape char because backslash quoting differs per dialect.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// SearchPublicByPlace returns public notes whose place name contains substr,
// case-insensitively, newest first.
func (s *Service) SearchPublicByPlace(substr string) ([]models.NoteModel, error) {
	notes := make([]models.NoteModel, 0)
	pattern := "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(substr))) + "%"
	err := s.db.Scopes(publicOnly).
		Where("LOWER(place_name) LIKE ? ESCAPE '!'", pattern).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

// GetVisible returns a note by id if it is public or owned by viewerID.
// Returns nil when absent or not visible. An anonymous viewer never matches
// ownership, so legacy ownerless rows stay hidden unless they are public.
func (s *Service) GetVisible(id, viewerID string) (*models.NoteModel, error) {
	var note models.NoteModel
	if err := s.db.First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !note.IsPublic() && (viewerID == "" || note.UserID != viewerID) {
		return nil, nil
	}
	return &note, nil
}

// UpdateOwned patches a note only if it belongs to ownerID. A note owned by someone
// else is reported exactly like a missing note so existence never leaks.
func (s *Service) UpdateOwned(id, ownerID string, in *NoteInput) (*models.NoteModel, error) {
	var note models.NoteModel
	if err := s.db.Where("id = ? AND user_id = ?", id, ownerID).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if verr := applyPatch(&note, in); verr != nil {
		return nil, verr
	}
	if err := s.db.Save(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteOwned removes a note only if it belongs to ownerID, with the same
// ownership-blind not-found rule as UpdateOwned.
func (s *Service) DeleteOwned(id, ownerID string) (bool, error) {
	result := s.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.NoteModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
