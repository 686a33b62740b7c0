package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/goalpost/goalpost/internal/cli"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/service"
)

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}

type TxAddCmd struct {
	Amount   string `arg:"" help:"Amount, e.g. 12.50."`
	Type     string `short:"t" help:"Transaction type (income|expense)." default:"expense"`
	Category string `short:"c" help:"Category label."`
	Budget   string `short:"b" help:"Budget ID to attribute the expense to."`
	Note     string `short:"n" help:"Free-text note."`
	Date     string `help:"Transaction date (YYYY-MM-DD), defaults to today."`
	Goal     string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *TxAddCmd) Validate() error {
	if _, err := parseAmount(c.Amount); err != nil {
		return err
	}
	if c.Type != "income" && c.Type != "expense" {
		return fmt.Errorf("type must be income or expense")
	}
	return nil
}

func (c *TxAddCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	amount, _ := parseAmount(c.Amount)

	tx, err := ctx.Svc.AddTransaction(ctx.UserID(), goal.ID, service.AddTransactionInput{
		Amount:   amount,
		Type:     models.TransactionType(c.Type),
		Category: c.Category,
		BudgetID: c.Budget,
		Note:     c.Note,
		Date:     c.Date,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Recorded %s of %s on %s (ID: %s)\n", tx.Type, tx.Amount.StringFixed(2), tx.Date, tx.ID)
	return nil
}

type TxListCmd struct {
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *TxListCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if len(goal.Finance.Transactions) == 0 {
		fmt.Println("No transactions recorded.")
		return nil
	}
	for _, tx := range goal.Finance.Transactions {
		sign := "-"
		if tx.Type == models.TransactionIncome {
			sign = "+"
		}
		fmt.Printf("%s  %s  %s%s  %s\n", tx.ID, tx.Date, sign, tx.Amount.StringFixed(2), tx.Note)
	}
	return nil
}

type TxRmCmd struct {
	ID   string `arg:"" help:"Transaction ID."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *TxRmCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	if err := ctx.Svc.DeleteTransaction(ctx.UserID(), goal.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed transaction %s\n", c.ID)
	return nil
}

type BudgetAddCmd struct {
	Name   string `arg:"" help:"Budget name."`
	Limit  string `arg:"" help:"Spending limit, e.g. 300."`
	Period string `short:"p" help:"Budget period (monthly|weekly|yearly)." default:"monthly"`
	Goal   string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *BudgetAddCmd) Validate() error {
	if _, err := parseAmount(c.Limit); err != nil {
		return err
	}
	switch models.BudgetPeriod(c.Period) {
	case models.BudgetMonthly, models.BudgetWeekly, models.BudgetYearly:
		return nil
	}
	return fmt.Errorf("period must be monthly, weekly, or yearly")
}

func (c *BudgetAddCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	limit, _ := parseAmount(c.Limit)

	budget, err := ctx.Svc.AddBudget(ctx.UserID(), goal.ID, c.Name, limit, models.BudgetPeriod(c.Period))
	if err != nil {
		return err
	}
	fmt.Printf("Created %s budget %q capped at %s (ID: %s)\n", budget.Period, budget.Name, budget.Limit.StringFixed(2), budget.ID)
	return nil
}

type BudgetListCmd struct {
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *BudgetListCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if len(goal.Finance.Budgets) == 0 {
		fmt.Println("No budgets.")
		return nil
	}
	for _, b := range goal.Finance.Budgets {
		fmt.Printf("%s  %-20s %s / %s (%s)\n", b.ID, b.Name, b.Spent.StringFixed(2), b.Limit.StringFixed(2), b.Period)
	}
	return nil
}

type BudgetRmCmd struct {
	ID   string `arg:"" help:"Budget ID."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt (still enforces the delay)."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *BudgetRmCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	ok, err := cli.ConfirmDestructive("Deleting a budget also removes its transactions and subscriptions.", c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := ctx.Svc.DeleteBudget(ctx.UserID(), goal.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed budget %s and its attributed entries\n", c.ID)
	return nil
}

type SubAddCmd struct {
	Name    string `arg:"" help:"Subscription name."`
	Amount  string `arg:"" help:"Amount per billing cycle."`
	Cycle   string `short:"c" help:"Billing cycle (monthly|yearly|weekly)." default:"monthly"`
	Budget  string `short:"b" help:"Budget ID to attribute the charge to."`
	NextDue string `help:"Next billing date (YYYY-MM-DD)."`
	Goal    string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *SubAddCmd) Validate() error {
	if _, err := parseAmount(c.Amount); err != nil {
		return err
	}
	switch models.BillingCycle(c.Cycle) {
	case models.BillingMonthly, models.BillingYearly, models.BillingWeekly:
		return nil
	}
	return fmt.Errorf("cycle must be monthly, yearly, or weekly")
}

func (c *SubAddCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	amount, _ := parseAmount(c.Amount)

	sub, err := ctx.Svc.AddSubscription(ctx.UserID(), goal.ID, service.AddSubscriptionInput{
		Name:            c.Name,
		Amount:          amount,
		BudgetID:        c.Budget,
		BillingCycle:    models.BillingCycle(c.Cycle),
		NextBillingDate: c.NextDue,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added subscription %q at %s/%s (ID: %s)\n", sub.Name, sub.Amount.StringFixed(2), sub.BillingCycle, sub.ID)
	return nil
}

type SubListCmd struct {
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *SubListCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if len(goal.Finance.Subscriptions) == 0 {
		fmt.Println("No subscriptions.")
		return nil
	}
	for _, sub := range goal.Finance.Subscriptions {
		due := sub.NextBillingDate
		if due == "" {
			due = "-"
		}
		fmt.Printf("%s  %-20s %s/%s (next: %s)\n", sub.ID, sub.Name, sub.Amount.StringFixed(2), sub.BillingCycle, due)
	}
	return nil
}

type SubRmCmd struct {
	ID   string `arg:"" help:"Subscription ID."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *SubRmCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	if err := ctx.Svc.DeleteSubscription(ctx.UserID(), goal.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed subscription %s\n", c.ID)
	return nil
}

type AssetAddCmd struct {
	Name  string `arg:"" help:"Asset name."`
	Value string `arg:"" help:"Current value."`
	Goal  string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *AssetAddCmd) Validate() error {
	_, err := parseAmount(c.Value)
	return err
}

func (c *AssetAddCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	value, _ := parseAmount(c.Value)

	asset, err := ctx.Svc.AddAsset(ctx.UserID(), goal.ID, c.Name, value)
	if err != nil {
		return err
	}
	fmt.Printf("Added asset %q worth %s (ID: %s)\n", asset.Name, asset.Value.StringFixed(2), asset.ID)
	return nil
}

type LiabilityAddCmd struct {
	Name  string `arg:"" help:"Liability name."`
	Value string `arg:"" help:"Amount owed."`
	Goal  string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *LiabilityAddCmd) Validate() error {
	_, err := parseAmount(c.Value)
	return err
}

func (c *LiabilityAddCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	value, _ := parseAmount(c.Value)

	liability, err := ctx.Svc.AddLiability(ctx.UserID(), goal.ID, c.Name, value)
	if err != nil {
		return err
	}
	fmt.Printf("Added liability %q of %s (ID: %s)\n", liability.Name, liability.Value.StringFixed(2), liability.ID)
	return nil
}

type AssetListCmd struct {
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *AssetListCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if len(goal.Finance.Assets) == 0 {
		fmt.Println("No assets.")
		return nil
	}
	for _, a := range goal.Finance.Assets {
		fmt.Printf("%s  %-20s %s\n", a.ID, a.Name, a.Value.StringFixed(2))
	}
	return nil
}

type AssetRmCmd struct {
	ID   string `arg:"" help:"Asset ID."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *AssetRmCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	if err := ctx.Svc.DeleteAsset(ctx.UserID(), goal.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed asset %s\n", c.ID)
	return nil
}

type LiabilityListCmd struct {
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *LiabilityListCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if len(goal.Finance.Liabilities) == 0 {
		fmt.Println("No liabilities.")
		return nil
	}
	for _, l := range goal.Finance.Liabilities {
		fmt.Printf("%s  %-20s %s\n", l.ID, l.Name, l.Value.StringFixed(2))
	}
	return nil
}

type LiabilityRmCmd struct {
	ID   string `arg:"" help:"Liability ID."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *LiabilityRmCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	if err := ctx.Svc.DeleteLiability(ctx.UserID(), goal.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed liability %s\n", c.ID)
	return nil
}

type NetWorthCmd struct {
	Snapshot bool   `short:"s" help:"Record a snapshot of the current position."`
	Goal     string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *NetWorthCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if c.Snapshot {
		snap, err := ctx.Svc.SnapshotNetWorth(ctx.UserID(), goal.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Snapshot %s: assets %s - liabilities %s = net %s\n",
			snap.Date, snap.Assets.StringFixed(2), snap.Liabilities.StringFixed(2), snap.Net.StringFixed(2))
		return nil
	}

	if len(goal.Finance.NetWorth) == 0 {
		fmt.Println("No net worth history. Record one with 'goalpost networth -s'.")
		return nil
	}
	for _, snap := range goal.Finance.NetWorth {
		fmt.Printf("%s  net %s (assets %s, liabilities %s)\n",
			snap.Date, snap.Net.StringFixed(2), snap.Assets.StringFixed(2), snap.Liabilities.StringFixed(2))
	}
	return nil
}
