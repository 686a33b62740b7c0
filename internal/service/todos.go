package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/models"
)

// AddTodo inserts a new to-do at order 0 and shifts every existing item down
// by one.
func (s *Service) AddTodo(userID, goalID, text string) (models.TodoItem, error) {
	if text == "" {
		return models.TodoItem{}, apperr.InvalidInput("todo text is required")
	}

	now := time.Now().UTC()
	item := models.TodoItem{
		ID:        uuid.New().String(),
		Text:      text,
		Completed: false,
		Order:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		for i := range goal.Todos {
			goal.Todos[i].Order++
		}
		goal.Todos = append([]models.TodoItem{item}, goal.Todos...)
		return nil
	})
	if err != nil {
		return models.TodoItem{}, err
	}

	return item, nil
}

// UpdateTodo replaces the text of a to-do.
func (s *Service) UpdateTodo(userID, goalID, itemID, text string) error {
	if text == "" {
		return apperr.InvalidInput("todo text is required")
	}

	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		for i := range goal.Todos {
			if goal.Todos[i].ID == itemID {
				goal.Todos[i].Text = text
				goal.Todos[i].UpdatedAt = time.Now().UTC()
				return nil
			}
		}
		return apperr.NotFound("todo not found: %s", itemID)
	})
}

// ToggleTodo flips a to-do's completion state, stamping or clearing
// CompletedAt to match.
func (s *Service) ToggleTodo(userID, goalID, itemID string) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		for i := range goal.Todos {
			if goal.Todos[i].ID == itemID {
				now := time.Now().UTC()
				goal.Todos[i].Completed = !goal.Todos[i].Completed
				if goal.Todos[i].Completed {
					goal.Todos[i].CompletedAt = &now
				} else {
					goal.Todos[i].CompletedAt = nil
				}
				goal.Todos[i].UpdatedAt = now
				return nil
			}
		}
		return apperr.NotFound("todo not found: %s", itemID)
	})
}

// DeleteTodo removes a to-do and closes the order gap it leaves.
func (s *Service) DeleteTodo(userID, goalID, itemID string) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		removedOrder := -1
		filtered := goal.Todos[:0:0]
		for _, item := range goal.Todos {
			if item.ID == itemID {
				removedOrder = item.Order
				continue
			}
			filtered = append(filtered, item)
		}
		if removedOrder == -1 {
			return apperr.NotFound("todo not found: %s", itemID)
		}
		for i := range filtered {
			if filtered[i].Order > removedOrder {
				filtered[i].Order--
			}
		}
		goal.Todos = filtered
		return nil
	})
}

// AddDistraction appends an item to the goal's not-to-do list, inserted at
// order 0 like to-dos.
func (s *Service) AddDistraction(userID, goalID, text string) (models.DistractionItem, error) {
	if text == "" {
		return models.DistractionItem{}, apperr.InvalidInput("distraction text is required")
	}

	now := time.Now().UTC()
	item := models.DistractionItem{
		ID:        uuid.New().String(),
		Text:      text,
		Order:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		for i := range goal.Distractions {
			goal.Distractions[i].Order++
		}
		goal.Distractions = append([]models.DistractionItem{item}, goal.Distractions...)
		return nil
	})
	if err != nil {
		return models.DistractionItem{}, err
	}

	return item, nil
}

// DeleteDistraction removes an item from the not-to-do list.
func (s *Service) DeleteDistraction(userID, goalID, itemID string) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		filtered := goal.Distractions[:0:0]
		found := false
		for _, item := range goal.Distractions {
			if item.ID == itemID {
				found = true
				continue
			}
			filtered = append(filtered, item)
		}
		if !found {
			return apperr.NotFound("distraction not found: %s", itemID)
		}
		goal.Distractions = filtered
		return nil
	})
}
