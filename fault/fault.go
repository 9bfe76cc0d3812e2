// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// program errors - these are visible to submitters and each has a code
var (
	ErrMissingSignature       = InvalidError("missing required signature")
	ErrInvalidBump            = InvalidError("derivation bump is not canonical")
	ErrAddressMismatch        = InvalidError("address does not match its derivation")
	ErrMintMismatch           = InvalidError("token account mint mismatch")
	ErrOwnerMismatch          = InvalidError("token account owner mismatch")
	ErrZeroBalance            = InvalidError("token account holds no balance")
	ErrDuplicateAsset         = InvalidError("mount assets must be distinct")
	ErrMetadataMismatch       = InvalidError("metadata does not belong to mint")
	ErrUntrustedCreator       = InvalidError("asset creator is not trusted")
	ErrPaymentMintMismatch    = InvalidError("payment token mint mismatch")
	ErrRedemptionTooEarly     = InvalidError("redemption time lock has not elapsed")
	ErrVaultEmpty             = InvalidError("vault holds no custody tokens")
	ErrRedemptionLimit        = InvalidError("maximum redemptions reached")
	ErrDepositorMismatch      = InvalidError("depositor does not match escrow")
	ErrSourceMismatch         = InvalidError("source account does not match escrow")
	ErrInsufficientFunds      = InvalidError("insufficient funds")
	ErrAmountOverflow         = InvalidError("amount overflow")
	ErrNonZeroBalance         = InvalidError("account balance is not zero")
	ErrAccountOwner           = InvalidError("account is owned by another program")
	ErrInvalidCreators        = InvalidError("invalid creator list")
	ErrAccountAlreadyExists   = ExistsError("account already exists")
	ErrVaultAlreadyExists     = ExistsError("vault already exists")
	ErrEscrowAlreadyExists    = ExistsError("escrow already exists")
	ErrAssetDataAlreadyExists = ExistsError("asset data already exists")
	ErrAccountNotFound        = NotFoundError("account not found")
	ErrEscrowNotFound         = NotFoundError("escrow not found")
	ErrAssetDataNotFound      = NotFoundError("asset data not found")
	ErrMintNotFound           = NotFoundError("mint not found")
	ErrTokenAccountNotFound   = NotFoundError("token account not found")
	ErrMetadataNotFound       = NotFoundError("metadata not found")
	ErrVaultNotFound          = NotFoundError("vault not found")
	ErrTransactionProcessed   = ExistsError("transaction already processed")
	ErrInvalidSignature       = InvalidError("invalid signature")
	ErrUnknownInstruction     = InvalidError("unknown instruction")
	ErrSignatureCount         = InvalidError("signature count does not match signers")
	ErrMetadataFieldTooLong   = InvalidError("metadata field too long")
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrConfigurationNotTable        = InvalidError("configuration did not return a table")
	ErrCryptoFailed                 = ProcessError("encrypt/decrypt failed")
	ErrDatabaseIsNotSet             = ProcessError("database is not set")
	ErrDecodeFailed                 = ProcessError("record decode failed")
	ErrEncodeFailed                 = ProcessError("record encode failed")
	ErrIdentityNameAlreadyExists    = ExistsError("identity name already exists")
	ErrIdentityNameNotFound         = NotFoundError("identity name not found")
	ErrIncompatibleDatabase         = ProcessError("incompatible database version")
	ErrInvalidCooldown              = InvalidError("invalid cooldown")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidPasswordLength        = InvalidError("invalid password length")
	ErrInvalidPublicKey             = InvalidError("invalid public key")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrNotPrivateKey                = InvalidError("not a private key")
	ErrPasswordMismatch             = InvalidError("password mismatch")
	ErrRateLimiting                 = InvalidError("rate limiting")
	ErrTransactionClosed            = ProcessError("storage transaction is closed")
	ErrTransactionNotFound          = NotFoundError("transaction not found")
	ErrWrongPassword                = InvalidError("wrong password")
)

// program error codes start here, ordering must never change
const firstProgramCode = 6000

var programCodes = map[error]uint32{}

func init() {
	ordered := []error{
		ErrMissingSignature,
		ErrInvalidBump,
		ErrAddressMismatch,
		ErrMintMismatch,
		ErrOwnerMismatch,
		ErrZeroBalance,
		ErrDuplicateAsset,
		ErrMetadataMismatch,
		ErrUntrustedCreator,
		ErrPaymentMintMismatch,
		ErrRedemptionTooEarly,
		ErrVaultEmpty,
		ErrRedemptionLimit,
		ErrDepositorMismatch,
		ErrSourceMismatch,
		ErrInsufficientFunds,
		ErrAmountOverflow,
		ErrNonZeroBalance,
		ErrAccountOwner,
		ErrInvalidCreators,
		ErrAccountAlreadyExists,
		ErrVaultAlreadyExists,
		ErrEscrowAlreadyExists,
		ErrAssetDataAlreadyExists,
		ErrAccountNotFound,
		ErrEscrowNotFound,
		ErrAssetDataNotFound,
		ErrMintNotFound,
		ErrTokenAccountNotFound,
		ErrMetadataNotFound,
		ErrVaultNotFound,
		ErrTransactionProcessed,
		ErrInvalidSignature,
		ErrUnknownInstruction,
		ErrSignatureCount,
		ErrMetadataFieldTooLong,
	}
	for i, e := range ordered {
		programCodes[e] = firstProgramCode + uint32(i)
	}
}

// codes for errors that have no specific program code
const (
	CodeNone     = 0
	CodeExists   = 1
	CodeInvalid  = 2
	CodeNotFound = 3
	CodeProcess  = 4
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

// Code - numeric code for an error
//
// program errors have their own code, anything else is coded by class
func Code(e error) uint32 {
	if nil == e {
		return CodeNone
	}
	if code, ok := programCodes[e]; ok {
		return code
	}
	switch {
	case IsErrExists(e):
		return CodeExists
	case IsErrInvalid(e):
		return CodeInvalid
	case IsErrNotFound(e):
		return CodeNotFound
	default:
		return CodeProcess
	}
}

// Class - the name of the error class as seen by submitters
func Class(e error) string {
	switch {
	case nil == e:
		return ""
	case IsErrExists(e):
		return "AlreadyExists"
	case IsErrInvalid(e):
		return "ConstraintViolation"
	case IsErrNotFound(e):
		return "NotFound"
	default:
		return "Process"
	}
}
