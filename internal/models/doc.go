// Package models defines the core domain models for settleup.
//
// # Scopes
//
// A Scope is one independently netted unit: either a shared group or an event.
// Both kinds carry the same shape all the way down, so every calculation is
// written once and works for both.
//
// # Transactions
//
// A Transaction is one entry in a scope's ledger. There are three kinds:
//   - expense: a payer covered an amount that is split into per-member shares
//   - settlement: a payer transferred an amount to a single receiver
//   - reminder: a member nudged another member; carries no monetary weight
//
// Amounts are money.Money (integer cents) and are never negative. Direction is
// expressed by which field holds a member id, not by sign.
//
// # Identity
//
// Members are identified by opaque ids that are only unique within a scope.
// A Member can optionally be linked to a registered User; the service layer
// uses that link to find "the current user" in a scope. No member id is
// special anywhere below the service layer.
package models
