package cwplus

import "strconv"

// Coin is a single denominated amount. Amounts are non-negative integers
// carried as decimal strings, matching the contract's JSON encoding.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// NewCoin creates a Coin from an integer amount.
func NewCoin(amount uint64, denom string) Coin {
	return Coin{
		Denom:  denom,
		Amount: strconv.FormatUint(amount, 10),
	}
}

// Expiration is a tagged union describing when an allowance grant stops
// being usable. Exactly one field is set. The zero value is not a valid
// expiration; use one of the constructors.
type Expiration struct {
	AtHeight *uint64   `json:"at_height,omitempty"`
	AtTime   *uint64   `json:"at_time,omitempty"`
	Never    *struct{} `json:"never,omitempty"`
}

// ExpiresAtHeight returns an Expiration triggered at a block height.
func ExpiresAtHeight(height uint64) Expiration {
	return Expiration{AtHeight: &height}
}

// ExpiresAtTime returns an Expiration triggered at a unix timestamp.
func ExpiresAtTime(timestamp uint64) Expiration {
	return Expiration{AtTime: &timestamp}
}

// ExpiresNever returns an Expiration that never triggers.
func ExpiresNever() Expiration {
	return Expiration{Never: &struct{}{}}
}

// CosmosMsg is a tagged union of actions the proxy contract can run on
// the holder's behalf. Exactly one field is set per value.
//
// The contract's schema is open ended; only the bank send variant is
// modeled here. Support for further actions is added by defining a new
// message struct and a new field on this union.
type CosmosMsg struct {
	Send *SendMsg `json:"send,omitempty"`
}

// SendMsg instructs the contract to transfer funds from its account.
type SendMsg struct {
	FromAddress string `json:"from_address"`
	ToAddress   string `json:"to_address"`
	Amount      []Coin `json:"amount"`
}

// NewSendMsg wraps a bank send instruction as a CosmosMsg.
func NewSendMsg(fromAddress, toAddress string, amount []Coin) CosmosMsg {
	return CosmosMsg{Send: &SendMsg{
		FromAddress: fromAddress,
		ToAddress:   toAddress,
		Amount:      amount,
	}}
}

// InstantiateMsg is the init message for a new proxy instance.
type InstantiateMsg struct {
	Admins  []string `json:"admins"`
	Mutable bool     `json:"mutable"`
}

// AdminListResponse is the result of an admin_list query. Admins holds
// the current admin set in display order; Mutable reports whether the
// set can still be changed.
type AdminListResponse struct {
	Admins  []string `json:"admins"`
	Mutable bool     `json:"mutable"`
}

// AllowanceResponse is the result of an allowance query. A spender with
// no grant yields an empty Balance, not an error.
type AllowanceResponse struct {
	Balance []Coin     `json:"balance"`
	Expires Expiration `json:"expires"`
}

// Query message envelope. One variant per query the contract understands.
type queryMsg struct {
	AdminList *adminListQuery `json:"admin_list,omitempty"`
	Allowance *allowanceQuery `json:"allowance,omitempty"`
}

type adminListQuery struct{}

type allowanceQuery struct {
	Spender string `json:"spender"`
}

// Execute message envelope. One variant per action the contract accepts.
type executeMsg struct {
	Freeze            *freezeMsg          `json:"freeze,omitempty"`
	UpdateAdmins      *updateAdminsMsg    `json:"update_admins,omitempty"`
	IncreaseAllowance *changeAllowanceMsg `json:"increase_allowance,omitempty"`
	DecreaseAllowance *changeAllowanceMsg `json:"decrease_allowance,omitempty"`
	Execute           *executeProxyMsg    `json:"execute,omitempty"`
}

type freezeMsg struct{}

type updateAdminsMsg struct {
	Admins []string `json:"admins"`
}

type changeAllowanceMsg struct {
	Spender string      `json:"spender"`
	Amount  Coin        `json:"amount"`
	Expires *Expiration `json:"expires,omitempty"`
}

type executeProxyMsg struct {
	Msgs []CosmosMsg `json:"msgs"`
}
