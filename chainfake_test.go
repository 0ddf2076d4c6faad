package cwplus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Remote rejection causes used by the in-memory chain.
var (
	errUnauthorized          = errors.New("unauthorized")
	errFrozen                = errors.New("admin set is frozen")
	errInsufficientAllowance = errors.New("insufficient allowance")
	errNoSuchContract        = errors.New("no such contract")
)

// fakeChain implements Transport with an in-memory model of the proxy
// contract's on-chain behavior: admin-only policy, the one-way freeze
// latch, per-denom allowance arithmetic that rejects underflow, and
// atomic batch execution.
type fakeChain struct {
	height    uint64
	now       uint64
	txSeq     int
	nextCode  uint64
	codes     map[uint64][]byte
	contracts map[string]*fakeContract

	lastLabel string
	lastAdmin string
}

type fakeContract struct {
	admins     []string
	mutable    bool
	allowances map[string]*fakeAllowance
}

type fakeAllowance struct {
	balance map[string]uint64
	expires Expiration
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		height:    1,
		now:       1_600_000_000,
		codes:     map[uint64][]byte{},
		contracts: map[string]*fakeContract{},
	}
}

func (f *fakeChain) StoreCode(_ context.Context, _ string, wasm []byte) (uint64, error) {
	f.nextCode++
	f.codes[f.nextCode] = wasm
	return f.nextCode, nil
}

func (f *fakeChain) InstantiateContract(_ context.Context, _ string, codeID uint64, initMsg any, label, admin string) (string, error) {
	if _, ok := f.codes[codeID]; !ok {
		return "", fmt.Errorf("code id %d not found", codeID)
	}

	var init InstantiateMsg
	if err := roundTrip(initMsg, &init); err != nil {
		return "", err
	}

	addr := fmt.Sprintf("contract%d", len(f.contracts)+1)
	f.contracts[addr] = &fakeContract{
		admins:     append([]string(nil), init.Admins...),
		mutable:    init.Mutable,
		allowances: map[string]*fakeAllowance{},
	}
	f.lastLabel = label
	f.lastAdmin = admin
	return addr, nil
}

func (f *fakeChain) SmartQuery(_ context.Context, contractAddr string, query, result any) error {
	contract, ok := f.contracts[contractAddr]
	if !ok {
		return errNoSuchContract
	}

	var msg queryMsg
	if err := roundTrip(query, &msg); err != nil {
		return err
	}

	switch {
	case msg.AdminList != nil:
		return roundTrip(AdminListResponse{
			Admins:  append([]string(nil), contract.admins...),
			Mutable: contract.mutable,
		}, result)

	case msg.Allowance != nil:
		resp := AllowanceResponse{Expires: ExpiresNever()}
		if a, ok := contract.allowances[msg.Allowance.Spender]; ok {
			for denom, amount := range a.balance {
				resp.Balance = append(resp.Balance, NewCoin(amount, denom))
			}
			resp.Expires = a.expires
		}
		return roundTrip(resp, result)

	default:
		return fmt.Errorf("unknown query variant")
	}
}

func (f *fakeChain) ExecuteContract(_ context.Context, sender, contractAddr string, msg any, _ []Coin) (string, error) {
	contract, ok := f.contracts[contractAddr]
	if !ok {
		return "", errNoSuchContract
	}

	var exec executeMsg
	if err := roundTrip(msg, &exec); err != nil {
		return "", err
	}

	var err error
	switch {
	case exec.Freeze != nil:
		err = contract.freeze(sender)
	case exec.UpdateAdmins != nil:
		err = contract.updateAdmins(sender, exec.UpdateAdmins.Admins)
	case exec.IncreaseAllowance != nil:
		err = contract.increaseAllowance(sender, exec.IncreaseAllowance)
	case exec.DecreaseAllowance != nil:
		err = contract.decreaseAllowance(sender, exec.DecreaseAllowance)
	case exec.Execute != nil:
		err = contract.run(sender, exec.Execute.Msgs, f.height, f.now)
	default:
		err = fmt.Errorf("unknown execute variant")
	}
	if err != nil {
		return "", err
	}

	f.txSeq++
	return fmt.Sprintf("TX%04d", f.txSeq), nil
}

func (c *fakeContract) isAdmin(addr string) bool {
	for _, a := range c.admins {
		if a == addr {
			return true
		}
	}
	return false
}

func (c *fakeContract) freeze(sender string) error {
	if !c.isAdmin(sender) {
		return errUnauthorized
	}
	if !c.mutable {
		return errFrozen
	}
	c.mutable = false
	return nil
}

func (c *fakeContract) updateAdmins(sender string, admins []string) error {
	if !c.isAdmin(sender) {
		return errUnauthorized
	}
	if !c.mutable {
		return errFrozen
	}
	c.admins = append([]string(nil), admins...)
	return nil
}

func (c *fakeContract) increaseAllowance(sender string, msg *changeAllowanceMsg) error {
	if !c.isAdmin(sender) {
		return errUnauthorized
	}
	amount, err := parseAmount(msg.Amount.Amount)
	if err != nil {
		return err
	}

	a, ok := c.allowances[msg.Spender]
	if !ok {
		a = &fakeAllowance{balance: map[string]uint64{}, expires: ExpiresNever()}
		c.allowances[msg.Spender] = a
	}
	a.balance[msg.Amount.Denom] += amount
	if msg.Expires != nil {
		a.expires = *msg.Expires
	}
	return nil
}

func (c *fakeContract) decreaseAllowance(sender string, msg *changeAllowanceMsg) error {
	if !c.isAdmin(sender) {
		return errUnauthorized
	}
	amount, err := parseAmount(msg.Amount.Amount)
	if err != nil {
		return err
	}

	a, ok := c.allowances[msg.Spender]
	if !ok || a.balance[msg.Amount.Denom] < amount {
		return errInsufficientAllowance
	}
	a.balance[msg.Amount.Denom] -= amount
	if a.balance[msg.Amount.Denom] == 0 {
		delete(a.balance, msg.Amount.Denom)
	}
	if msg.Expires != nil {
		a.expires = *msg.Expires
	}
	return nil
}

// run applies a batch of messages atomically: the allowance check covers
// the aggregate spend per denom before anything is deducted, so a
// rejected batch leaves state untouched.
func (c *fakeContract) run(sender string, msgs []CosmosMsg, height, now uint64) error {
	if c.isAdmin(sender) {
		return nil
	}

	a, ok := c.allowances[sender]
	if !ok {
		return errInsufficientAllowance
	}
	if expired(a.expires, height, now) {
		return errInsufficientAllowance
	}

	totals := map[string]uint64{}
	for _, m := range msgs {
		if m.Send == nil {
			return fmt.Errorf("unknown message variant")
		}
		for _, coin := range m.Send.Amount {
			amount, err := parseAmount(coin.Amount)
			if err != nil {
				return err
			}
			totals[coin.Denom] += amount
		}
	}

	for denom, total := range totals {
		if a.balance[denom] < total {
			return errInsufficientAllowance
		}
	}
	for denom, total := range totals {
		a.balance[denom] -= total
		if a.balance[denom] == 0 {
			delete(a.balance, denom)
		}
	}
	return nil
}

func expired(e Expiration, height, now uint64) bool {
	switch {
	case e.AtHeight != nil:
		return *e.AtHeight <= height
	case e.AtTime != nil:
		return *e.AtTime <= now
	default:
		return false
	}
}

func parseAmount(s string) (uint64, error) {
	amount, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coin amount %q", s)
	}
	return amount, nil
}

// roundTrip moves a value through its JSON encoding, the same boundary
// the real transport crosses.
func roundTrip(in, out any) error {
	bz, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(bz, out)
}
