package service

import (
	"testing"

	"github.com/goalpost/goalpost/internal/apperr"
)

func TestAddTodo_InsertsAtTop(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	first, err := svc.AddTodo(testUser, goal.ID, "first")
	if err != nil {
		t.Fatalf("AddTodo failed: %v", err)
	}
	second, err := svc.AddTodo(testUser, goal.ID, "second")
	if err != nil {
		t.Fatalf("AddTodo failed: %v", err)
	}

	got, err := svc.Goal(testUser, goal.ID)
	if err != nil {
		t.Fatalf("Goal failed: %v", err)
	}
	if len(got.Todos) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(got.Todos))
	}
	if got.Todos[0].ID != second.ID || got.Todos[0].Order != 0 {
		t.Errorf("expected newest todo at order 0, got %+v", got.Todos[0])
	}
	if got.Todos[1].ID != first.ID || got.Todos[1].Order != 1 {
		t.Errorf("expected older todo shifted to order 1, got %+v", got.Todos[1])
	}
}

func TestDeleteTodo_ClosesOrderGap(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	a, _ := svc.AddTodo(testUser, goal.ID, "a")
	b, _ := svc.AddTodo(testUser, goal.ID, "b")
	c, _ := svc.AddTodo(testUser, goal.ID, "c")
	// Current order: c=0, b=1, a=2

	if err := svc.DeleteTodo(testUser, goal.ID, b.ID); err != nil {
		t.Fatalf("DeleteTodo failed: %v", err)
	}

	got, err := svc.Goal(testUser, goal.ID)
	if err != nil {
		t.Fatalf("Goal failed: %v", err)
	}
	orders := map[string]int{}
	for _, item := range got.Todos {
		orders[item.ID] = item.Order
	}
	if orders[c.ID] != 0 {
		t.Errorf("expected %s at order 0, got %d", c.ID, orders[c.ID])
	}
	if orders[a.ID] != 1 {
		t.Errorf("expected gap closed, %s at order 1, got %d", a.ID, orders[a.ID])
	}
}

func TestToggleTodo_StampsAndClearsCompletedAt(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	item, err := svc.AddTodo(testUser, goal.ID, "task")
	if err != nil {
		t.Fatalf("AddTodo failed: %v", err)
	}

	if err := svc.ToggleTodo(testUser, goal.ID, item.ID); err != nil {
		t.Fatalf("ToggleTodo failed: %v", err)
	}
	got, _ := svc.Goal(testUser, goal.ID)
	if !got.Todos[0].Completed || got.Todos[0].CompletedAt == nil {
		t.Errorf("expected completed with timestamp, got %+v", got.Todos[0])
	}

	if err := svc.ToggleTodo(testUser, goal.ID, item.ID); err != nil {
		t.Fatalf("second ToggleTodo failed: %v", err)
	}
	got, _ = svc.Goal(testUser, goal.ID)
	if got.Todos[0].Completed || got.Todos[0].CompletedAt != nil {
		t.Errorf("expected timestamp cleared on un-complete, got %+v", got.Todos[0])
	}
}

func TestDeleteTodo_NotFound(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	if err := svc.DeleteTodo(testUser, goal.ID, "missing"); !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestDistractions_AddAndDelete(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	item, err := svc.AddDistraction(testUser, goal.ID, "social media")
	if err != nil {
		t.Fatalf("AddDistraction failed: %v", err)
	}
	if err := svc.DeleteDistraction(testUser, goal.ID, item.ID); err != nil {
		t.Fatalf("DeleteDistraction failed: %v", err)
	}

	got, _ := svc.Goal(testUser, goal.ID)
	if len(got.Distractions) != 0 {
		t.Errorf("expected empty distraction list, got %d entries", len(got.Distractions))
	}
}
