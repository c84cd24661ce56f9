// Large Budget File Generator
//
// This tool generates a large budget JSON document for performance testing
// and profiling the command reducer and balance-derivation methods.
//
// Usage:
//
//	go run main.go > large.json
//	go run main.go 50000 > large.json  # specify transaction count
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/wrenlabs/budget/budgetfile"
	"github.com/wrenlabs/budget/model"
	"github.com/wrenlabs/budget/pdate"
)

const defaultTransactionCount = 50_000

var (
	accountNames = []string{
		"Checking", "Savings", "Brokerage Cash", "Credit Card", "Cash Wallet",
	}

	groupNames = map[string][]string{
		"Food":          {"Groceries", "Restaurants", "Coffee"},
		"Housing":       {"Rent", "Utilities", "Internet"},
		"Transport":     {"Gas", "Transit", "Parking"},
		"Entertainment": {"Streaming", "Movies", "Concerts"},
	}

	who = []string{"Alice", "Bob", "Charlie", ""}
)

func main() {
	count := defaultTransactionCount
	if len(os.Args) > 1 {
		if n, err := strconv.Atoi(os.Args[1]); err == nil {
			count = n
		}
	}

	start := pdate.MustNew(2024, 1, 1)
	end := pdate.MustNew(2025, 12, 31)

	budget, err := model.NewBudget("USD", model.WithBudgetName("Large Synthetic Budget"), model.WithBudgetPeriod(start, end))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var nextID int64 = 1
	newID := func() *int64 {
		id := nextID
		nextID++
		return &id
	}

	var accountIDs []int64
	for _, name := range accountNames {
		id := newID()
		budget, err = budget.UpdateAccount(model.Account{
			ID:             id,
			Name:           name,
			CurrencyCode:   "USD",
			InitialBalance: decimal.NewFromFloat(rand.Float64() * 1000),
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		accountIDs = append(accountIDs, *id)
	}

	var categoryIDs []int64
	for groupName, categories := range groupNames {
		groupIDv := newID()
		budget, err = budget.UpdateCategoryGroup(model.CategoryGroup{ID: groupIDv, Name: groupName})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, catName := range categories {
			catID := newID()
			budget, err = budget.UpdateCategory(model.Category{
				ID:           catID,
				Name:         catName,
				CurrencyCode: "USD",
				GroupID:      groupIDv,
			})
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			categoryIDs = append(categoryIDs, *catID)
		}
	}

	totalDays := end.Value() - start.Value()
	for i := 0; i < count; i++ {
		date, err := start.AddDays(rand.Intn(totalDays + 1))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		acct := accountIDs[rand.Intn(len(accountIDs))]
		cat := categoryIDs[rand.Intn(len(categoryIDs))]
		amount := decimal.NewFromFloat(-(rand.Float64()*200 + 1)).Round(2)

		txn := model.Transaction{
			ID:        newID(),
			Date:      &date,
			AccountID: &acct,
			Who:       who[rand.Intn(len(who))],
			Detail: []model.TransactionDetail{
				{Amount: amount, Description: "synthetic", CategoryID: &cat},
			},
		}
		budget, err = budget.UpdateTransaction(txn)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if err := budgetfile.Save(os.Stdout, budget); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
