package command

import "github.com/wrenlabs/budget/model"

// Invert produces the undo command for cmd, given the state cmd is about
// to be applied to, such that
//
//	Reduce(Reduce(state, cmd), Invert(state, cmd)) == state
//
// structurally (spec §4.8). The inverse always carries state.ID as its
// budgetId, and defaults to cmd's own Type if the per-case logic below
// didn't set one (every case below sets a Type explicitly, so the default
// is only a fallback).
func Invert(state model.Budget, cmd Command) (Command, error) {
	out, err := invertDispatch(state, cmd)
	if err != nil {
		return Command{}, err
	}
	if out.Type == "" {
		out.Type = cmd.Type
	}
	if state.ID != nil {
		id := *state.ID
		out.BudgetID = &id
	}
	return out, nil
}

func invertDispatch(state model.Budget, cmd Command) (Command, error) {
	if !inVocabulary(cmd.Type) || !recognized(cmd.Type) {
		return Command{Type: cmd.Type}, nil
	}

	switch cmd.Type {
	case NOOP:
		return Command{Type: NOOP}, nil

	case SetCurrency:
		code := state.CurrencyCode
		return Command{Type: SetCurrency, CurrencyCode: &code}, nil

	case SetName:
		name := state.Name
		return Command{Type: SetName, Name: &name}, nil

	case SetDate:
		out := Command{Type: SetDate}
		if cmd.StartDate != nil {
			v := state.StartDate.Value()
			out.StartDate = &v
		}
		if cmd.EndDate != nil {
			v := state.EndDate.Value()
			out.EndDate = &v
		}
		return out, nil

	case DeleteAccount:
		return invertDeleteAccount(state, cmd)
	case UpdateAccount:
		return invertUpdateAccount(state, cmd)

	case DeleteCategory:
		return invertDeleteCategory(state, cmd)
	case UpdateCategory:
		return invertUpdateCategory(state, cmd)

	case DeleteCategoryGroup:
		return invertDeleteCategoryGroup(state, cmd)
	case UpdateCategoryGroup:
		return invertUpdateCategoryGroup(state, cmd)

	case DeleteTransaction:
		return invertDeleteTransaction(state, cmd)
	case UpdateTransaction:
		return invertUpdateTransaction(state, cmd)

	case UpdateMultipleTransactions:
		return invertUpdateMultipleTransactions(state, cmd)

	default:
		return Command{Type: NOOP}, nil
	}
}

// --- Deletes: Delete -> Update + restoration metadata -----------------

func invertDeleteAccount(state model.Budget, cmd Command) (Command, error) {
	if cmd.ID == nil {
		return Command{Type: NOOP}, nil
	}
	acct, ok := state.Account(*cmd.ID)
	if !ok {
		// Deletion-invert id recovery: nothing to restore (spec §4.8).
		return Command{Type: NOOP}, nil
	}
	data, err := toData(acct)
	if err != nil {
		return Command{}, err
	}
	idx := state.AccountIndex(*cmd.ID)

	var linkNull []int64
	for _, t := range state.Transactions {
		if t.ID != nil && t.AccountID != nil && *t.AccountID == *cmd.ID {
			linkNull = append(linkNull, *t.ID)
		}
	}

	return Command{
		Type:                 UpdateAccount,
		ID:                   cmd.ID,
		Data:                 data,
		Index:                &idx,
		LinkNullTransactions: linkNull,
	}, nil
}

func invertDeleteCategory(state model.Budget, cmd Command) (Command, error) {
	if cmd.ID == nil {
		return Command{Type: NOOP}, nil
	}
	cat, ok := state.Category(*cmd.ID)
	if !ok {
		return Command{Type: NOOP}, nil
	}
	data, err := toData(cat)
	if err != nil {
		return Command{}, err
	}
	idx := state.CategoryIndexWithinGroup(*cmd.ID)

	var links []DetailLink
	for _, t := range state.Transactions {
		if t.ID == nil {
			continue
		}
		for di, d := range t.Detail {
			if d.CategoryID != nil && *d.CategoryID == *cmd.ID {
				links = append(links, DetailLink{TransactionID: *t.ID, DetailIndex: di})
			}
		}
	}

	return Command{
		Type:                   UpdateCategory,
		ID:                     cmd.ID,
		Data:                   data,
		Index:                  &idx,
		LinkTransactionDetails: links,
	}, nil
}

func invertDeleteCategoryGroup(state model.Budget, cmd Command) (Command, error) {
	if cmd.ID == nil {
		return Command{Type: NOOP}, nil
	}
	g, ok := state.CategoryGroup(*cmd.ID)
	if !ok {
		return Command{Type: NOOP}, nil
	}
	data, err := toData(g)
	if err != nil {
		return Command{}, err
	}
	// No index field: spec §4.8 states this one restores without position.
	return Command{Type: UpdateCategoryGroup, ID: cmd.ID, Data: data}, nil
}

func invertDeleteTransaction(state model.Budget, cmd Command) (Command, error) {
	if cmd.ID == nil {
		return Command{Type: NOOP}, nil
	}
	t, ok := state.Transaction(*cmd.ID)
	if !ok {
		return Command{Type: NOOP}, nil
	}
	data, err := toData(t)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: UpdateTransaction, ID: cmd.ID, Data: data}, nil
}

// --- Updates: Update -> Update diff, or Update -> Delete for inserts ----

func invertUpdateAccount(state model.Budget, cmd Command) (Command, error) {
	if cmd.ID == nil {
		return Command{Type: NOOP}, nil
	}
	prior, existed := state.Account(*cmd.ID)
	if !existed {
		return Command{Type: DeleteAccount, ID: cmd.ID}, nil
	}

	out := Command{Type: UpdateAccount, ID: cmd.ID}
	if cmd.Data != nil {
		priorData, err := toData(prior)
		if err != nil {
			return Command{}, err
		}
		newData, err := newRecordData(cmd.Data, cmd.ID, func(a *model.Account, id *int64) { a.ID = id })
		if err != nil {
			return Command{}, err
		}
		out.Data = diffData(priorData, newData)
	}
	if cmd.Index != nil {
		if priorIdx := state.AccountIndex(*cmd.ID); priorIdx != *cmd.Index {
			out.Index = &priorIdx
		}
	}
	return out, nil
}

func invertUpdateCategory(state model.Budget, cmd Command) (Command, error) {
	if cmd.ID == nil {
		return Command{Type: NOOP}, nil
	}
	prior, existed := state.Category(*cmd.ID)
	if !existed {
		return Command{Type: DeleteCategory, ID: cmd.ID}, nil
	}

	out := Command{Type: UpdateCategory, ID: cmd.ID}
	if cmd.Data != nil {
		priorData, err := toData(prior)
		if err != nil {
			return Command{}, err
		}
		newData, err := newRecordData(cmd.Data, cmd.ID, func(c *model.Category, id *int64) { c.ID = id })
		if err != nil {
			return Command{}, err
		}
		out.Data = diffData(priorData, newData)
	}
	if cmd.Index != nil {
		if priorIdx := state.CategoryIndexWithinGroup(*cmd.ID); priorIdx != *cmd.Index {
			out.Index = &priorIdx
		}
	}
	return out, nil
}

func invertUpdateCategoryGroup(state model.Budget, cmd Command) (Command, error) {
	if cmd.ID == nil {
		return Command{Type: NOOP}, nil
	}
	prior, existed := state.CategoryGroup(*cmd.ID)
	if !existed {
		return Command{Type: DeleteCategoryGroup, ID: cmd.ID}, nil
	}

	out := Command{Type: UpdateCategoryGroup, ID: cmd.ID}
	if cmd.Data != nil {
		priorData, err := toData(prior)
		if err != nil {
			return Command{}, err
		}
		newData, err := newRecordData(cmd.Data, cmd.ID, func(g *model.CategoryGroup, id *int64) { g.ID = id })
		if err != nil {
			return Command{}, err
		}
		out.Data = diffData(priorData, newData)
	}
	if cmd.Index != nil {
		if priorIdx := state.CategoryGroupIndex(*cmd.ID); priorIdx != *cmd.Index {
			out.Index = &priorIdx
		}
	}
	return out, nil
}

func invertUpdateTransaction(state model.Budget, cmd Command) (Command, error) {
	if cmd.ID == nil {
		return Command{Type: NOOP}, nil
	}
	prior, existed := state.Transaction(*cmd.ID)
	if !existed {
		return Command{Type: DeleteTransaction, ID: cmd.ID}, nil
	}

	out := Command{Type: UpdateTransaction, ID: cmd.ID}
	if cmd.Data != nil {
		priorData, err := toData(prior)
		if err != nil {
			return Command{}, err
		}
		newData, err := newRecordData(cmd.Data, cmd.ID, func(t *model.Transaction, id *int64) { t.ID = id })
		if err != nil {
			return Command{}, err
		}
		out.Data = diffData(priorData, newData)
	}
	return out, nil
}

// invertUpdateMultipleTransactions inverts by applying each sub-action
// forward against a running state, inverting it against that state just
// before applying it, then reversing the collected inverses (spec §4.8).
func invertUpdateMultipleTransactions(state model.Budget, cmd Command) (Command, error) {
	running := state
	inverses := make([]Command, 0, len(cmd.SubActions))
	for _, sub := range cmd.SubActions {
		inv, err := Invert(running, sub)
		if err != nil {
			return Command{}, err
		}
		inverses = append(inverses, inv)

		running, err = Reduce(running, sub)
		if err != nil {
			return Command{}, err
		}
	}
	for i, j := 0, len(inverses)-1; i < j; i, j = i+1, j-1 {
		inverses[i], inverses[j] = inverses[j], inverses[i]
	}
	return Command{Type: UpdateMultipleTransactions, SubActions: inverses}, nil
}
