package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/models"
)

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAddTransaction_UpdatesBudgetSpent(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	budget, err := svc.AddBudget(testUser, goal.ID, "Groceries", money("500"), models.BudgetMonthly)
	if err != nil {
		t.Fatalf("AddBudget failed: %v", err)
	}

	_, err = svc.AddTransaction(testUser, goal.ID, AddTransactionInput{
		Amount: money("42.75"), Type: models.TransactionExpense, BudgetID: budget.ID,
	})
	if err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}
	_, err = svc.AddTransaction(testUser, goal.ID, AddTransactionInput{
		Amount: money("0.10"), Type: models.TransactionExpense, BudgetID: budget.ID,
	})
	if err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}
	// Income never counts against a budget
	_, err = svc.AddTransaction(testUser, goal.ID, AddTransactionInput{
		Amount: money("1000"), Type: models.TransactionIncome,
	})
	if err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}

	got, _ := svc.Goal(testUser, goal.ID)
	want := money("42.85")
	if !got.Finance.Budgets[0].Spent.Equal(want) {
		t.Errorf("expected spent %s, got %s", want, got.Finance.Budgets[0].Spent)
	}
}

func TestAddTransaction_UnknownBudgetRejected(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	_, err := svc.AddTransaction(testUser, goal.ID, AddTransactionInput{
		Amount: money("10"), Type: models.TransactionExpense, BudgetID: "missing",
	})
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not found for unknown budget, got %v", err)
	}
}

func TestDeleteTransaction_RefreshesSpent(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	budget, _ := svc.AddBudget(testUser, goal.ID, "Dining", money("200"), models.BudgetMonthly)
	tx, _ := svc.AddTransaction(testUser, goal.ID, AddTransactionInput{
		Amount: money("30"), Type: models.TransactionExpense, BudgetID: budget.ID,
	})

	if err := svc.DeleteTransaction(testUser, goal.ID, tx.ID); err != nil {
		t.Fatalf("DeleteTransaction failed: %v", err)
	}

	got, _ := svc.Goal(testUser, goal.ID)
	if !got.Finance.Budgets[0].Spent.IsZero() {
		t.Errorf("expected spent zeroed, got %s", got.Finance.Budgets[0].Spent)
	}
}

func TestDeleteBudget_CascadesToOwnedEntries(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	doomed, _ := svc.AddBudget(testUser, goal.ID, "Doomed", money("100"), models.BudgetMonthly)
	kept, _ := svc.AddBudget(testUser, goal.ID, "Kept", money("100"), models.BudgetMonthly)

	svc.AddTransaction(testUser, goal.ID, AddTransactionInput{
		Amount: money("10"), Type: models.TransactionExpense, BudgetID: doomed.ID,
	})
	keptTx, _ := svc.AddTransaction(testUser, goal.ID, AddTransactionInput{
		Amount: money("20"), Type: models.TransactionExpense, BudgetID: kept.ID,
	})
	svc.AddSubscription(testUser, goal.ID, AddSubscriptionInput{
		Name: "Doomed sub", Amount: money("5"), BudgetID: doomed.ID,
	})
	keptSub, _ := svc.AddSubscription(testUser, goal.ID, AddSubscriptionInput{
		Name: "Kept sub", Amount: money("7"), BudgetID: kept.ID,
	})

	if err := svc.DeleteBudget(testUser, goal.ID, doomed.ID); err != nil {
		t.Fatalf("DeleteBudget failed: %v", err)
	}

	got, _ := svc.Goal(testUser, goal.ID)
	if len(got.Finance.Budgets) != 1 || got.Finance.Budgets[0].ID != kept.ID {
		t.Fatalf("expected only the kept budget to remain, got %d budgets", len(got.Finance.Budgets))
	}
	if len(got.Finance.Transactions) != 1 || got.Finance.Transactions[0].ID != keptTx.ID {
		t.Errorf("expected only the kept transaction to survive, got %d", len(got.Finance.Transactions))
	}
	if len(got.Finance.Subscriptions) != 1 || got.Finance.Subscriptions[0].ID != keptSub.ID {
		t.Errorf("expected only the kept subscription to survive, got %d", len(got.Finance.Subscriptions))
	}
	if !got.Finance.Budgets[0].Spent.Equal(money("20")) {
		t.Errorf("expected kept budget spent 20, got %s", got.Finance.Budgets[0].Spent)
	}
}

func TestSnapshotNetWorth_SameDayReplaces(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	svc.AddAsset(testUser, goal.ID, "Savings", money("1500"))
	svc.AddLiability(testUser, goal.ID, "Loan", money("400"))

	first, err := svc.SnapshotNetWorth(testUser, goal.ID)
	if err != nil {
		t.Fatalf("SnapshotNetWorth failed: %v", err)
	}
	if !first.Net.Equal(money("1100")) {
		t.Errorf("expected net 1100, got %s", first.Net)
	}

	svc.AddAsset(testUser, goal.ID, "Cash", money("100"))
	second, err := svc.SnapshotNetWorth(testUser, goal.ID)
	if err != nil {
		t.Fatalf("second SnapshotNetWorth failed: %v", err)
	}
	if !second.Net.Equal(money("1200")) {
		t.Errorf("expected net 1200, got %s", second.Net)
	}

	got, _ := svc.Goal(testUser, goal.ID)
	if len(got.Finance.NetWorth) != 1 {
		t.Fatalf("expected same-day snapshot to replace, got %d entries", len(got.Finance.NetWorth))
	}
	if !got.Finance.NetWorth[0].Net.Equal(money("1200")) {
		t.Errorf("expected stored net 1200, got %s", got.Finance.NetWorth[0].Net)
	}
}

func TestDeleteAsset_ShiftsNetWorth(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	doomed, _ := svc.AddAsset(testUser, goal.ID, "Old car", money("3000"))
	kept, _ := svc.AddAsset(testUser, goal.ID, "Savings", money("1000"))

	if err := svc.DeleteAsset(testUser, goal.ID, doomed.ID); err != nil {
		t.Fatalf("DeleteAsset failed: %v", err)
	}

	got, _ := svc.Goal(testUser, goal.ID)
	if len(got.Finance.Assets) != 1 || got.Finance.Assets[0].ID != kept.ID {
		t.Fatalf("expected only the kept asset to remain, got %d assets", len(got.Finance.Assets))
	}

	snap, err := svc.SnapshotNetWorth(testUser, goal.ID)
	if err != nil {
		t.Fatalf("SnapshotNetWorth failed: %v", err)
	}
	if !snap.Net.Equal(money("1000")) {
		t.Errorf("expected net 1000 after delete, got %s", snap.Net)
	}
}

func TestDeleteAsset_NotFound(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	if err := svc.DeleteAsset(testUser, goal.ID, "missing"); !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestDeleteLiability_ShiftsNetWorth(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	svc.AddAsset(testUser, goal.ID, "Savings", money("1000"))
	loan, _ := svc.AddLiability(testUser, goal.ID, "Loan", money("400"))

	if err := svc.DeleteLiability(testUser, goal.ID, loan.ID); err != nil {
		t.Fatalf("DeleteLiability failed: %v", err)
	}

	got, _ := svc.Goal(testUser, goal.ID)
	if len(got.Finance.Liabilities) != 0 {
		t.Fatalf("expected no liabilities, got %d", len(got.Finance.Liabilities))
	}

	snap, err := svc.SnapshotNetWorth(testUser, goal.ID)
	if err != nil {
		t.Fatalf("SnapshotNetWorth failed: %v", err)
	}
	if !snap.Net.Equal(money("1000")) {
		t.Errorf("expected net 1000 after delete, got %s", snap.Net)
	}
}

func TestDeleteLiability_NotFound(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	if err := svc.DeleteLiability(testUser, goal.ID, "missing"); !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestAddTransaction_RejectsNonPositiveAmount(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	_, err := svc.AddTransaction(testUser, goal.ID, AddTransactionInput{
		Amount: decimal.Zero, Type: models.TransactionExpense,
	})
	if err == nil {
		t.Error("expected zero amount to be rejected")
	}
}
