package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/timeutil"
)

// AddStickyNote appends a sticky note to the goal.
func (s *Service) AddStickyNote(userID, goalID, text, color string) (models.StickyNote, error) {
	if text == "" {
		return models.StickyNote{}, apperr.InvalidInput("note text is required")
	}

	now := time.Now().UTC()
	note := models.StickyNote{
		ID:        uuid.New().String(),
		Text:      text,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		goal.StickyNotes = append(goal.StickyNotes, note)
		return nil
	})
	if err != nil {
		return models.StickyNote{}, err
	}
	return note, nil
}

// UpdateStickyNote replaces a note's text and color.
func (s *Service) UpdateStickyNote(userID, goalID, noteID, text, color string) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		for i := range goal.StickyNotes {
			if goal.StickyNotes[i].ID == noteID {
				if text != "" {
					goal.StickyNotes[i].Text = text
				}
				if color != "" {
					goal.StickyNotes[i].Color = color
				}
				goal.StickyNotes[i].UpdatedAt = time.Now().UTC()
				return nil
			}
		}
		return apperr.NotFound("note not found: %s", noteID)
	})
}

// DeleteStickyNote removes a sticky note.
func (s *Service) DeleteStickyNote(userID, goalID, noteID string) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		filtered := goal.StickyNotes[:0:0]
		found := false
		for _, n := range goal.StickyNotes {
			if n.ID == noteID {
				found = true
				continue
			}
			filtered = append(filtered, n)
		}
		if !found {
			return apperr.NotFound("note not found: %s", noteID)
		}
		goal.StickyNotes = filtered
		return nil
	})
}

// AddResource attaches a learning resource to the goal.
func (s *Service) AddResource(userID, goalID, title, url string, kind models.ResourceKind) (models.Resource, error) {
	if title == "" {
		return models.Resource{}, apperr.InvalidInput("resource title is required")
	}
	if kind == "" {
		kind = models.ResourceKindOther
	}

	now := time.Now().UTC()
	res := models.Resource{
		ID:        uuid.New().String(),
		Title:     title,
		URL:       url,
		Kind:      kind,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		goal.Resources = append(goal.Resources, res)
		return nil
	})
	if err != nil {
		return models.Resource{}, err
	}
	return res, nil
}

// ToggleResource flips a resource's done flag.
func (s *Service) ToggleResource(userID, goalID, resourceID string) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		for i := range goal.Resources {
			if goal.Resources[i].ID == resourceID {
				goal.Resources[i].Done = !goal.Resources[i].Done
				goal.Resources[i].UpdatedAt = time.Now().UTC()
				return nil
			}
		}
		return apperr.NotFound("resource not found: %s", resourceID)
	})
}

// DeleteResource removes a resource.
func (s *Service) DeleteResource(userID, goalID, resourceID string) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		filtered := goal.Resources[:0:0]
		found := false
		for _, r := range goal.Resources {
			if r.ID == resourceID {
				found = true
				continue
			}
			filtered = append(filtered, r)
		}
		if !found {
			return apperr.NotFound("resource not found: %s", resourceID)
		}
		goal.Resources = filtered
		return nil
	})
}

// AddQuote saves a quote on the goal.
func (s *Service) AddQuote(userID, goalID, text, author string) (models.Quote, error) {
	if text == "" {
		return models.Quote{}, apperr.InvalidInput("quote text is required")
	}

	now := time.Now().UTC()
	quote := models.Quote{
		ID:        uuid.New().String(),
		Text:      text,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		goal.Quotes = append(goal.Quotes, quote)
		return nil
	})
	if err != nil {
		return models.Quote{}, err
	}
	return quote, nil
}

// ToggleQuoteStar stars or unstars a quote.
func (s *Service) ToggleQuoteStar(userID, goalID, quoteID string) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		for i := range goal.Quotes {
			if goal.Quotes[i].ID == quoteID {
				goal.Quotes[i].Starred = !goal.Quotes[i].Starred
				goal.Quotes[i].UpdatedAt = time.Now().UTC()
				return nil
			}
		}
		return apperr.NotFound("quote not found: %s", quoteID)
	})
}

// DeleteQuote removes a quote.
func (s *Service) DeleteQuote(userID, goalID, quoteID string) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		filtered := goal.Quotes[:0:0]
		found := false
		for _, q := range goal.Quotes {
			if q.ID == quoteID {
				found = true
				continue
			}
			filtered = append(filtered, q)
		}
		if !found {
			return apperr.NotFound("quote not found: %s", quoteID)
		}
		goal.Quotes = filtered
		return nil
	})
}

// AddTimeBlock reserves a labelled block of the day on the goal.
func (s *Service) AddTimeBlock(userID, goalID, label, start, end string) (models.TimeBlock, error) {
	if label == "" {
		return models.TimeBlock{}, apperr.InvalidInput("time block label is required")
	}
	if !timeutil.ValidateTimeFormat(start) || !timeutil.ValidateTimeFormat(end) {
		return models.TimeBlock{}, apperr.InvalidInput("time block times must be HH:MM")
	}
	if start >= end {
		return models.TimeBlock{}, apperr.InvalidInput("time block start must be before end")
	}

	now := time.Now().UTC()
	block := models.TimeBlock{
		ID:        uuid.New().String(),
		Label:     label,
		Start:     start,
		End:       end,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		goal.TimeBlocks = append(goal.TimeBlocks, block)
		return nil
	})
	if err != nil {
		return models.TimeBlock{}, err
	}
	return block, nil
}

// DeleteTimeBlock removes a time block.
func (s *Service) DeleteTimeBlock(userID, goalID, blockID string) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		filtered := goal.TimeBlocks[:0:0]
		found := false
		for _, b := range goal.TimeBlocks {
			if b.ID == blockID {
				found = true
				continue
			}
			filtered = append(filtered, b)
		}
		if !found {
			return apperr.NotFound("time block not found: %s", blockID)
		}
		goal.TimeBlocks = filtered
		return nil
	})
}
