// Package cwplus provides a Go client for operating cw-plus proxy
// contracts with spending allowances (cw1-subkeys) on a CosmWasm-enabled
// chain.
//
// The library covers the full lifecycle of a contract instance:
//   - Upload the versioned wasm artifact and register it on chain
//   - Instantiate a proxy with an initial admin set
//   - Bind to an existing instance and issue typed queries and executions
//
// # Basic Usage
//
// Create a wallet, connect a transport, and bind to a contract:
//
//	wallet, _, err := cwplus.LoadOrCreateWallet("subkeys.key", password, "wasm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := cwplus.NewClient(transport, wallet)
//	proxy := client.Use("wasm1q4fml3...")
//
//	admins, err := proxy.Admins(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	txID, err := proxy.IncreaseAllowance(ctx, spender,
//	    cwplus.NewCoin(50, "utoken"), nil)
//
// # State Model
//
// All authoritative state lives on chain. The client holds nothing beyond
// the bound contract address: every mutating operation returns only an
// opaque transaction identifier, and callers re-query (Admins, Allowance)
// to observe the effect. The client performs no local balance tracking,
// no pre-validation of remote policy, and no retries.
//
// The contract's externally observable state is:
//
//   - An admin set with a mutability flag. Freeze() flips the flag to
//     false permanently; afterwards UpdateAdmins is rejected on chain.
//
//   - Per-spender allowances: a set of per-denom balances plus an
//     expiration (block height, timestamp, or never). An allowance query
//     for an unknown spender yields an empty balance, not an error.
//
// # Messages
//
// Execute batches are expressed as CosmosMsg values, a tagged union with
// exactly one variant set per value. Only the bank send variant is
// modeled today; new actions are added as new fields on CosmosMsg, never
// by inspecting raw JSON shapes.
//
// # Errors
//
// Failures are classified by typed errors: QueryError for read failures,
// ExecuteError for rejected or failed writes (including remote policy
// rejections such as insufficient allowance or a frozen admin set),
// ArtifactFetchError for a failed artifact download, and WalletError for
// keyfile problems. All wrap the underlying cause for errors.Is/As.
package cwplus
