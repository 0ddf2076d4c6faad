package cwplus

import "context"

// Cw1 is a typed client bound to one deployed proxy contract instance.
//
// Every method maps 1:1 to a query or execute variant of the contract.
// Preconditions such as admin rights, mutability of the admin set, and
// allowance coverage are enforced on chain, not here: the client submits
// the call as given and surfaces the remote verdict. Mutating methods
// return only the transaction hash; re-query to observe the effect.
//
// Cw1 holds no mutable state and is safe to share across goroutines.
// Two callers mutating the same contract still race at the chain's
// transaction ordering, as they would with any other client.
type Cw1 struct {
	client *Client
	addr   string
}

// Address returns the bound contract address.
func (c *Cw1) Address() string {
	return c.addr
}

// Admins returns the contract's current admin set and whether it can
// still be changed.
func (c *Cw1) Admins(ctx context.Context) (*AdminListResponse, error) {
	var resp AdminListResponse
	if err := c.query(ctx, queryMsg{AdminList: &adminListQuery{}}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Allowance returns the current balance set and expiration granted to
// spender. An empty spender defaults to the client's own address. A
// spender with no grant yields an empty balance, not an error.
func (c *Cw1) Allowance(ctx context.Context, spender string) (*AllowanceResponse, error) {
	if spender == "" {
		spender = c.client.Sender()
	}

	var resp AllowanceResponse
	if err := c.query(ctx, queryMsg{Allowance: &allowanceQuery{Spender: spender}}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Freeze makes the admin set permanently immutable. The transition is
// one way: the contract rejects the call if the caller is not an admin
// or the set is already frozen, and nothing can undo it afterwards.
func (c *Cw1) Freeze(ctx context.Context) (string, error) {
	return c.execute(ctx, "freeze", executeMsg{Freeze: &freezeMsg{}})
}

// UpdateAdmins replaces the entire admin set with admins; the new list
// is not merged with the old one. The contract rejects the call if the
// caller is not an admin or the set is frozen.
//
// The list is passed through as given. Submitting a list that drops
// every admin permanently locks the contract's admin capability, and the
// client cannot reverse that once the chain accepts it.
func (c *Cw1) UpdateAdmins(ctx context.Context, admins []string) (string, error) {
	return c.execute(ctx, "update_admins", executeMsg{
		UpdateAdmins: &updateAdminsMsg{Admins: admins},
	})
}

// IncreaseAllowance adds amount to spender's balance for that denom,
// creating the grant if absent. expires, when non-nil, updates the
// grant's expiration; whether the contract merges or overwrites an
// existing expiration is contract policy and the value is passed through
// verbatim.
func (c *Cw1) IncreaseAllowance(ctx context.Context, spender string, amount Coin, expires *Expiration) (string, error) {
	return c.execute(ctx, "increase_allowance", executeMsg{
		IncreaseAllowance: &changeAllowanceMsg{Spender: spender, Amount: amount, Expires: expires},
	})
}

// DecreaseAllowance subtracts amount from spender's balance for that
// denom. The contract rejects the call if the balance would go negative.
// expires behaves as in IncreaseAllowance.
func (c *Cw1) DecreaseAllowance(ctx context.Context, spender string, amount Coin, expires *Expiration) (string, error) {
	return c.execute(ctx, "decrease_allowance", executeMsg{
		DecreaseAllowance: &changeAllowanceMsg{Spender: spender, Amount: amount, Expires: expires},
	})
}

// Execute runs msgs through the proxy contract. The caller must be an
// admin or hold an unexpired allowance covering the aggregate amount per
// denom across all messages. The batch is applied atomically in one
// transaction: on rejection no message takes effect.
func (c *Cw1) Execute(ctx context.Context, msgs []CosmosMsg) (string, error) {
	return c.execute(ctx, "execute", executeMsg{
		Execute: &executeProxyMsg{Msgs: msgs},
	})
}

func (c *Cw1) query(ctx context.Context, msg queryMsg, result any) error {
	c.client.log.Debug().Str("contract", c.addr).Msg("contract query")

	if err := c.client.transport.SmartQuery(ctx, c.addr, msg, result); err != nil {
		return &QueryError{Contract: c.addr, Err: err}
	}
	return nil
}

func (c *Cw1) execute(ctx context.Context, action string, msg executeMsg) (string, error) {
	c.client.log.Debug().Str("contract", c.addr).Str("action", action).Msg("contract execute")

	txHash, err := c.client.transport.ExecuteContract(ctx, c.client.Sender(), c.addr, msg, nil)
	if err != nil {
		return "", &ExecuteError{Contract: c.addr, Action: action, Err: err}
	}

	c.client.log.Info().Str("contract", c.addr).Str("action", action).Str("tx", txHash).Msg("contract executed")
	return txHash, nil
}
