package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/timeutil"
)

// recomputeBudgetSpent refreshes every budget's denormalized Spent total
// from the expense transactions attributed to it.
func recomputeBudgetSpent(fin *models.FinanceData) {
	totals := make(map[string]decimal.Decimal, len(fin.Budgets))
	for _, tx := range fin.Transactions {
		if tx.Type != models.TransactionExpense || tx.BudgetID == "" {
			continue
		}
		totals[tx.BudgetID] = totals[tx.BudgetID].Add(tx.Amount)
	}
	for i := range fin.Budgets {
		fin.Budgets[i].Spent = totals[fin.Budgets[i].ID]
	}
}

// AddTransactionInput carries the fields for a new transaction.
type AddTransactionInput struct {
	Amount   decimal.Decimal
	Type     models.TransactionType
	Category string
	BudgetID string
	Note     string
	Date     string // YYYY-MM-DD, defaults to today
}

// AddTransaction records a money movement, optionally against a budget.
func (s *Service) AddTransaction(userID, goalID string, in AddTransactionInput) (models.Transaction, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return models.Transaction{}, apperr.InvalidInput("transaction amount must be positive")
	}
	if in.Type != models.TransactionIncome && in.Type != models.TransactionExpense {
		return models.Transaction{}, apperr.InvalidInput("transaction type must be income or expense")
	}
	if in.Date == "" {
		today, err := timeutil.Today(s.timezone)
		if err != nil {
			return models.Transaction{}, apperr.InvalidInput("invalid timezone: %v", err)
		}
		in.Date = today
	} else if !timeutil.ValidateDateFormat(in.Date) {
		return models.Transaction{}, apperr.InvalidInput("invalid transaction date: %s", in.Date)
	}

	now := time.Now().UTC()
	tx := models.Transaction{
		ID:        uuid.New().String(),
		Amount:    in.Amount,
		Type:      in.Type,
		Category:  in.Category,
		BudgetID:  in.BudgetID,
		Note:      in.Note,
		Date:      in.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		if tx.BudgetID != "" && !budgetExists(goal.Finance.Budgets, tx.BudgetID) {
			return apperr.NotFound("budget not found: %s", tx.BudgetID)
		}
		goal.Finance.Transactions = append(goal.Finance.Transactions, tx)
		recomputeBudgetSpent(&goal.Finance)
		return nil
	})
	if err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

// DeleteTransaction removes a transaction and refreshes budget totals.
func (s *Service) DeleteTransaction(userID, goalID, txID string) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		filtered := goal.Finance.Transactions[:0:0]
		found := false
		for _, tx := range goal.Finance.Transactions {
			if tx.ID == txID {
				found = true
				continue
			}
			filtered = append(filtered, tx)
		}
		if !found {
			return apperr.NotFound("transaction not found: %s", txID)
		}
		goal.Finance.Transactions = filtered
		recomputeBudgetSpent(&goal.Finance)
		return nil
	})
}

func budgetExists(budgets []models.Budget, id string) bool {
	for _, b := range budgets {
		if b.ID == id {
			return true
		}
	}
	return false
}

// AddBudget creates a spending cap.
func (s *Service) AddBudget(userID, goalID, name string, limit decimal.Decimal, period models.BudgetPeriod) (models.Budget, error) {
	if name == "" {
		return models.Budget{}, apperr.InvalidInput("budget name is required")
	}
	if limit.LessThanOrEqual(decimal.Zero) {
		return models.Budget{}, apperr.InvalidInput("budget limit must be positive")
	}
	if period == "" {
		period = models.BudgetMonthly
	}

	now := time.Now().UTC()
	budget := models.Budget{
		ID:        uuid.New().String(),
		Name:      name,
		Limit:     limit,
		Spent:     decimal.Zero,
		Period:    period,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		goal.Finance.Budgets = append(goal.Finance.Budgets, budget)
		return nil
	})
	if err != nil {
		return models.Budget{}, err
	}
	return budget, nil
}

// DeleteBudget removes a budget and cascades: transactions and
// subscriptions referencing it are removed in the same write, leaving
// unrelated entries untouched.
func (s *Service) DeleteBudget(userID, goalID, budgetID string) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		if !budgetExists(goal.Finance.Budgets, budgetID) {
			return apperr.NotFound("budget not found: %s", budgetID)
		}

		budgets := goal.Finance.Budgets[:0:0]
		for _, b := range goal.Finance.Budgets {
			if b.ID != budgetID {
				budgets = append(budgets, b)
			}
		}
		goal.Finance.Budgets = budgets

		txs := goal.Finance.Transactions[:0:0]
		for _, tx := range goal.Finance.Transactions {
			if tx.BudgetID != budgetID {
				txs = append(txs, tx)
			}
		}
		goal.Finance.Transactions = txs

		subs := goal.Finance.Subscriptions[:0:0]
		for _, sub := range goal.Finance.Subscriptions {
			if sub.BudgetID != budgetID {
				subs = append(subs, sub)
			}
		}
		goal.Finance.Subscriptions = subs

		recomputeBudgetSpent(&goal.Finance)
		return nil
	})
}

// AddSubscriptionInput carries the fields for a new subscription.
type AddSubscriptionInput struct {
	Name            string
	Amount          decimal.Decimal
	BudgetID        string
	BillingCycle    models.BillingCycle
	NextBillingDate string // YYYY-MM-DD, optional
}

// AddSubscription records a recurring charge.
func (s *Service) AddSubscription(userID, goalID string, in AddSubscriptionInput) (models.Subscription, error) {
	if in.Name == "" {
		return models.Subscription{}, apperr.InvalidInput("subscription name is required")
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return models.Subscription{}, apperr.InvalidInput("subscription amount must be positive")
	}
	if in.BillingCycle == "" {
		in.BillingCycle = models.BillingMonthly
	}
	if in.NextBillingDate != "" && !timeutil.ValidateDateFormat(in.NextBillingDate) {
		return models.Subscription{}, apperr.InvalidInput("invalid next billing date: %s", in.NextBillingDate)
	}

	now := time.Now().UTC()
	sub := models.Subscription{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Amount:          in.Amount,
		BudgetID:        in.BudgetID,
		BillingCycle:    in.BillingCycle,
		NextBillingDate: in.NextBillingDate,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		if sub.BudgetID != "" && !budgetExists(goal.Finance.Budgets, sub.BudgetID) {
			return apperr.NotFound("budget not found: %s", sub.BudgetID)
		}
		goal.Finance.Subscriptions = append(goal.Finance.Subscriptions, sub)
		return nil
	})
	if err != nil {
		return models.Subscription{}, err
	}
	return sub, nil
}

// DeleteSubscription removes a subscription.
func (s *Service) DeleteSubscription(userID, goalID, subID string) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		filtered := goal.Finance.Subscriptions[:0:0]
		found := false
		for _, sub := range goal.Finance.Subscriptions {
			if sub.ID == subID {
				found = true
				continue
			}
			filtered = append(filtered, sub)
		}
		if !found {
			return apperr.NotFound("subscription not found: %s", subID)
		}
		goal.Finance.Subscriptions = filtered
		return nil
	})
}

// AddAsset records something owned.
func (s *Service) AddAsset(userID, goalID, name string, value decimal.Decimal) (models.Asset, error) {
	if name == "" {
		return models.Asset{}, apperr.InvalidInput("asset name is required")
	}
	if value.IsNegative() {
		return models.Asset{}, apperr.InvalidInput("asset value cannot be negative")
	}

	now := time.Now().UTC()
	asset := models.Asset{
		ID:        uuid.New().String(),
		Name:      name,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		goal.Finance.Assets = append(goal.Finance.Assets, asset)
		return nil
	})
	if err != nil {
		return models.Asset{}, err
	}
	return asset, nil
}

// DeleteAsset removes an asset.
func (s *Service) DeleteAsset(userID, goalID, assetID string) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		filtered := goal.Finance.Assets[:0:0]
		found := false
		for _, a := range goal.Finance.Assets {
			if a.ID == assetID {
				found = true
				continue
			}
			filtered = append(filtered, a)
		}
		if !found {
			return apperr.NotFound("asset not found: %s", assetID)
		}
		goal.Finance.Assets = filtered
		return nil
	})
}

// AddLiability records something owed.
func (s *Service) AddLiability(userID, goalID, name string, value decimal.Decimal) (models.Liability, error) {
	if name == "" {
		return models.Liability{}, apperr.InvalidInput("liability name is required")
	}
	if value.IsNegative() {
		return models.Liability{}, apperr.InvalidInput("liability value cannot be negative")
	}

	now := time.Now().UTC()
	liability := models.Liability{
		ID:        uuid.New().String(),
		Name:      name,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		goal.Finance.Liabilities = append(goal.Finance.Liabilities, liability)
		return nil
	})
	if err != nil {
		return models.Liability{}, err
	}
	return liability, nil
}

// DeleteLiability removes a liability.
func (s *Service) DeleteLiability(userID, goalID, liabilityID string) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		filtered := goal.Finance.Liabilities[:0:0]
		found := false
		for _, l := range goal.Finance.Liabilities {
			if l.ID == liabilityID {
				found = true
				continue
			}
			filtered = append(filtered, l)
		}
		if !found {
			return apperr.NotFound("liability not found: %s", liabilityID)
		}
		goal.Finance.Liabilities = filtered
		return nil
	})
}

// SnapshotNetWorth sums current assets and liabilities and appends a dated
// snapshot to the net-worth history. A second snapshot on the same day
// replaces the first.
func (s *Service) SnapshotNetWorth(userID, goalID string) (models.NetWorthSnapshot, error) {
	today, err := timeutil.Today(s.timezone)
	if err != nil {
		return models.NetWorthSnapshot{}, apperr.InvalidInput("invalid timezone: %v", err)
	}

	var snapshot models.NetWorthSnapshot
	err = s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		assets := decimal.Zero
		for _, a := range goal.Finance.Assets {
			assets = assets.Add(a.Value)
		}
		liabilities := decimal.Zero
		for _, l := range goal.Finance.Liabilities {
			liabilities = liabilities.Add(l.Value)
		}

		snapshot = models.NetWorthSnapshot{
			Date:        today,
			Assets:      assets,
			Liabilities: liabilities,
			Net:         assets.Sub(liabilities),
			CreatedAt:   time.Now().UTC(),
		}

		history := goal.Finance.NetWorth[:0:0]
		for _, snap := range goal.Finance.NetWorth {
			if snap.Date != today {
				history = append(history, snap)
			}
		}
		goal.Finance.NetWorth = append(history, snapshot)
		return nil
	})
	if err != nil {
		return models.NetWorthSnapshot{}, err
	}
	return snapshot, nil
}
