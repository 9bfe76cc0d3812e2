// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/ledger"
	"github.com/bitmark-inc/mountbreed/metadata"
	"github.com/bitmark-inc/mountbreed/token"
	"github.com/bitmark-inc/mountbreed/util"
)

// one mount after its accounts were resolved
type verifiedMount struct {
	mount   *Mount
	account *token.Account
	record  *AssetDataRecord
}

// Redeem - burn the fee and release one custom token for two trusted mounts
func (p *Program) Redeem(st *ledger.State, signers token.Authority, arguments *RedeemArguments) error {
	if !signers.Signed(arguments.Redeemer) {
		return fault.ErrMissingSignature
	}
	err := p.checkFixed(arguments.Vault, arguments.VaultAuthority, arguments.Escrow)
	if nil != err {
		return err
	}

	escrow, err := p.GetEscrow(st, arguments.Escrow)
	if nil != err {
		return err
	}
	vault, err := p.getVault(st)
	if nil != err {
		return err
	}

	if arguments.MountA.Mint.Equals(arguments.MountB.Mint) ||
		arguments.MountA.TokenAccount.Equals(arguments.MountB.TokenAccount) {
		return fault.ErrDuplicateAsset
	}
	mountA, err := p.resolveMount(st, arguments.Redeemer, &arguments.MountA)
	if nil != err {
		return err
	}
	mountB, err := p.resolveMount(st, arguments.Redeemer, &arguments.MountB)
	if nil != err {
		return err
	}
	mounts := []*verifiedMount{mountA, mountB}

	destination, err := p.tokens.GetAccount(st, arguments.Destination)
	if nil != err {
		return err
	}
	if !destination.Owner.Equals(arguments.Redeemer) {
		return fault.ErrOwnerMismatch
	}
	if !destination.Mint.Equals(vault.Mint) {
		return fault.ErrMintMismatch
	}

	if !arguments.PaymentMint.Equals(escrow.PaymentMint) {
		return fault.ErrPaymentMintMismatch
	}
	paymentMint, err := p.tokens.GetMint(st, arguments.PaymentMint)
	if nil != err {
		return err
	}
	payment, err := p.tokens.GetAccount(st, arguments.PaymentAccount)
	if nil != err {
		return err
	}

	// validation sequence, order matters for the reported error
	for _, m := range mounts {
		if 0 == m.account.Amount {
			return fault.ErrZeroBalance
		}
	}
	creators := make([][]metadata.Creator, len(mounts))
	for i, m := range mounts {
		creators[i], err = p.provenance.Creators(st, m.mount.Metadata, m.mount.Mint)
		if nil != err {
			return err
		}
	}
	for _, c := range creators {
		if !trusted(c, escrow) {
			return fault.ErrUntrustedCreator
		}
	}
	if !payment.Mint.Equals(escrow.PaymentMint) {
		return fault.ErrPaymentMintMismatch
	}
	now := p.clock.Now().Unix()
	cooldown := int64(p.configuration.Cooldown / time.Second)
	for _, m := range mounts {
		if !m.record.Ready(now, cooldown) {
			return fault.ErrRedemptionTooEarly
		}
	}
	if vault.Amount < 1 {
		return fault.ErrVaultEmpty
	}
	if maximum := p.configuration.MaximumRedemptions; maximum > 0 {
		for _, m := range mounts {
			if m.record.Count >= maximum {
				return fault.ErrRedemptionLimit
			}
		}
	}

	// effects
	fee, ok := util.ScaleDecimals(p.configuration.Fee, paymentMint.Decimals)
	if !ok {
		return fault.ErrAmountOverflow
	}
	err = p.tokens.Burn(st, signers, arguments.PaymentAccount, fee)
	if nil != err {
		return err
	}

	err = p.tokens.Transfer(st, p.asVault(signers), &token.TransferArguments{
		Source:      arguments.Vault,
		Destination: arguments.Destination,
		Amount:      1,
	})
	if nil != err {
		return err
	}

	for _, m := range mounts {
		count, ok := util.SafeAdd(m.record.Count, 1)
		if !ok {
			return fault.ErrAmountOverflow
		}
		m.record.Count = count
		if now > m.record.Timestamp {
			m.record.Timestamp = now
		}
		err = st.Update(m.mount.AssetData, p.addresses.Program, m.record)
		if nil != err {
			return err
		}
	}
	return nil
}

// check the accounts of one mount and load its record
func (p *Program) resolveMount(st *ledger.State, redeemer solana.PublicKey, mount *Mount) (*verifiedMount, error) {
	d, err := p.addresses.AssetData(mount.Mint)
	if nil != err {
		return nil, err
	}
	// the address must match before anything is read from it
	if err := d.Check(mount.AssetData, d.Bump); nil != err {
		return nil, err
	}
	record, err := p.GetAssetData(st, mount.AssetData)
	if nil != err {
		return nil, err
	}
	if err := d.Check(mount.AssetData, record.Bump); nil != err {
		return nil, err
	}

	account, err := p.tokens.GetAccount(st, mount.TokenAccount)
	if nil != err {
		return nil, err
	}
	if !account.Owner.Equals(redeemer) {
		return nil, fault.ErrOwnerMismatch
	}
	if !account.Mint.Equals(mount.Mint) {
		return nil, fault.ErrMintMismatch
	}

	return &verifiedMount{
		mount:   mount,
		account: account,
		record:  record,
	}, nil
}

// the first listed creator must have verified the mint and be whitelisted
func trusted(creators []metadata.Creator, escrow *EscrowRecord) bool {
	if 0 == len(creators) {
		return false
	}
	first := creators[0]
	return first.Verified && escrow.Trusts(first.Address)
}
