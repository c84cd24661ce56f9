package command

import (
	"fmt"

	"github.com/wrenlabs/budget/model"
	"github.com/wrenlabs/budget/pdate"
)

// Reduce folds one command into state, returning the resulting Budget.
// A command outside the engine's vocabulary, or one whose budgetId is set
// and does not match state.ID, passes through unchanged (spec §4.7/§5).
func Reduce(state model.Budget, cmd Command) (model.Budget, error) {
	if !inVocabulary(cmd.Type) {
		return state, nil
	}
	if cmd.BudgetID != nil && (state.ID == nil || *cmd.BudgetID != *state.ID) {
		return state, nil
	}
	if !recognized(cmd.Type) {
		return state, nil
	}

	switch cmd.Type {
	case NOOP:
		return state, nil

	case SetCurrency:
		if cmd.CurrencyCode == nil {
			return state, nil
		}
		return state.SetCurrencyCode(*cmd.CurrencyCode)

	case SetName:
		if cmd.Name == nil {
			return state, nil
		}
		return state.SetName(*cmd.Name)

	case SetDate:
		return reduceSetDate(state, cmd)

	case DeleteAccount:
		if cmd.ID == nil {
			return state, nil
		}
		return state.DeleteAccount(*cmd.ID)

	case UpdateAccount:
		return reduceUpdateAccount(state, cmd)

	case DeleteCategory:
		if cmd.ID == nil {
			return state, nil
		}
		return state.DeleteCategory(*cmd.ID)

	case UpdateCategory:
		return reduceUpdateCategory(state, cmd)

	case DeleteCategoryGroup:
		if cmd.ID == nil {
			return state, nil
		}
		return state.DeleteCategoryGroup(*cmd.ID)

	case UpdateCategoryGroup:
		return reduceUpdateCategoryGroup(state, cmd)

	case DeleteTransaction:
		if cmd.ID == nil {
			return state, nil
		}
		return state.DeleteTransaction(*cmd.ID)

	case UpdateTransaction:
		return reduceUpdateTransaction(state, cmd)

	case UpdateMultipleTransactions:
		return reduceUpdateMultipleTransactions(state, cmd)

	default:
		return state, nil
	}
}

func reduceSetDate(state model.Budget, cmd Command) (model.Budget, error) {
	next := state
	var err error
	if cmd.StartDate != nil {
		d, derr := pdate.FromValue(*cmd.StartDate)
		if derr != nil {
			return state, derr
		}
		if next, err = next.SetStartDate(d); err != nil {
			return state, err
		}
	}
	if cmd.EndDate != nil {
		d, derr := pdate.FromValue(*cmd.EndDate)
		if derr != nil {
			return state, derr
		}
		if next, err = next.SetEndDate(d); err != nil {
			return state, err
		}
	}
	return next, nil
}

func reduceUpdateAccount(state model.Budget, cmd Command) (model.Budget, error) {
	if cmd.ID == nil {
		return state, fmt.Errorf("command: %s requires an id", UpdateAccount)
	}
	next := state
	prior, existed := state.Account(*cmd.ID)

	if cmd.Data != nil {
		data := cmd.Data
		if existed {
			merged, err := toData(prior)
			if err != nil {
				return state, err
			}
			for k, v := range cmd.Data {
				merged[k] = v
			}
			data = merged
		}
		acct, err := fromData[model.Account](data)
		if err != nil {
			return state, err
		}
		acct.ID = cmd.ID
		if next, err = next.UpdateAccount(acct); err != nil {
			return state, err
		}
	}

	if !existed {
		for _, txnID := range cmd.LinkNullTransactions {
			txn, ok := next.Transaction(txnID)
			if !ok || txn.AccountID != nil {
				continue
			}
			txn.AccountID = cmd.ID
			var err error
			if next, err = next.UpdateTransaction(txn); err != nil {
				return state, err
			}
		}
	}

	if cmd.Index != nil {
		var err error
		if next, err = next.PositionAccount(*cmd.ID, *cmd.Index); err != nil {
			return state, err
		}
	}

	return next, nil
}

func reduceUpdateCategory(state model.Budget, cmd Command) (model.Budget, error) {
	if cmd.ID == nil {
		return state, fmt.Errorf("command: %s requires an id", UpdateCategory)
	}
	next := state
	prior, existed := state.Category(*cmd.ID)

	if cmd.Data != nil {
		data := cmd.Data
		if existed {
			merged, err := toData(prior)
			if err != nil {
				return state, err
			}
			for k, v := range cmd.Data {
				merged[k] = v
			}
			data = merged
		}
		cat, err := fromData[model.Category](data)
		if err != nil {
			return state, err
		}
		cat.ID = cmd.ID
		if next, err = next.UpdateCategory(cat); err != nil {
			return state, err
		}
	}

	if !existed {
		for _, link := range cmd.LinkTransactionDetails {
			txn, ok := next.Transaction(link.TransactionID)
			if !ok || link.DetailIndex < 0 || link.DetailIndex >= len(txn.Detail) {
				continue
			}
			if txn.Detail[link.DetailIndex].CategoryID != nil {
				continue
			}
			detail := append([]model.TransactionDetail{}, txn.Detail...)
			detail[link.DetailIndex].CategoryID = cmd.ID
			txn.Detail = detail
			var err error
			if next, err = next.UpdateTransaction(txn); err != nil {
				return state, err
			}
		}
	}

	if cmd.Index != nil {
		var err error
		if next, err = next.PositionCategory(*cmd.ID, *cmd.Index); err != nil {
			return state, err
		}
	}

	return next, nil
}

func reduceUpdateCategoryGroup(state model.Budget, cmd Command) (model.Budget, error) {
	if cmd.ID == nil {
		return state, fmt.Errorf("command: %s requires an id", UpdateCategoryGroup)
	}
	next := state

	if cmd.Data != nil {
		data := cmd.Data
		if prior, existed := state.CategoryGroup(*cmd.ID); existed {
			merged, err := toData(prior)
			if err != nil {
				return state, err
			}
			for k, v := range cmd.Data {
				merged[k] = v
			}
			data = merged
		}
		g, err := fromData[model.CategoryGroup](data)
		if err != nil {
			return state, err
		}
		g.ID = cmd.ID
		if next, err = next.UpdateCategoryGroup(g); err != nil {
			return state, err
		}
	}

	if cmd.Index != nil {
		var err error
		if next, err = next.PositionCategoryGroup(*cmd.ID, *cmd.Index); err != nil {
			return state, err
		}
	}

	return next, nil
}

func reduceUpdateTransaction(state model.Budget, cmd Command) (model.Budget, error) {
	if cmd.ID == nil {
		return state, fmt.Errorf("command: %s requires an id", UpdateTransaction)
	}
	data := cmd.Data
	if prior, existed := state.Transaction(*cmd.ID); existed {
		merged, err := toData(prior)
		if err != nil {
			return state, err
		}
		for k, v := range cmd.Data {
			merged[k] = v
		}
		data = merged
	}
	txn, err := fromData[model.Transaction](data)
	if err != nil {
		return state, err
	}
	txn.ID = cmd.ID
	return state.UpdateTransaction(txn)
}

func reduceUpdateMultipleTransactions(state model.Budget, cmd Command) (model.Budget, error) {
	next := state
	for _, sub := range cmd.SubActions {
		if sub.Type != UpdateTransaction && sub.Type != DeleteTransaction {
			return state, fmt.Errorf("command: %s sub-action must be UPDATE_TRANSACTION or DELETE_TRANSACTION, got %s", UpdateMultipleTransactions, sub.Type)
		}
		var err error
		if next, err = Reduce(next, sub); err != nil {
			return state, err
		}
	}
	return next, nil
}
