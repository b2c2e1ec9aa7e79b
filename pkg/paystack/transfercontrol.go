package paystack

import "context"

var _ CachedResponse = (*TransferControl)(nil)

// TransferControl covers the balance and the OTP settings for transfers.
type TransferControl struct {
	resource
}

func NewTransferControl(opts Options) (*TransferControl, error) {
	r, err := newResource(opts, "")
	if err != nil {
		return nil, err
	}
	return &TransferControl{resource: r}, nil
}

// Balance is the amount available in one currency, in minor units.
type Balance struct {
	Currency string `json:"currency"`
	Balance  int64  `json:"balance"`
}

// Balances reads the result of GetBalance, nil for any other response.
func (tc *TransferControl) Balances() []Balance {
	if tc.Data().List() == nil {
		return nil
	}
	var balances []Balance
	if err := tc.Data().Decode(&balances); err != nil {
		return nil
	}
	return balances
}

func (tc *TransferControl) GetBalance(ctx context.Context) (Result, error) {
	return tc.ctx.Get(ctx, tc.endpoint("balance"), nil)
}

func (tc *TransferControl) BalanceLedger(ctx context.Context, page Pagination) (Result, error) {
	return tc.ctx.Get(ctx, tc.endpoint("balance", "ledger"), BuildParams(page.params()))
}

// ResendOTP asks for a new OTP. reason is either resend_otp or transfer.
func (tc *TransferControl) ResendOTP(ctx context.Context, transferCode string, reason string) (Result, error) {
	params := BuildParams(Params{
		"transfer_code": transferCode,
		"reason":        reason,
	})
	return tc.ctx.Post(ctx, tc.endpoint("transfer", "resend_otp"), params)
}

// DisableOTP starts switching off OTP for transfers, the processor sends an OTP to confirm.
func (tc *TransferControl) DisableOTP(ctx context.Context) (Result, error) {
	return tc.ctx.Post(ctx, tc.endpoint("transfer", "disable_otp"), nil)
}

func (tc *TransferControl) FinalizeDisableOTP(ctx context.Context, otp string) (Result, error) {
	return tc.ctx.Post(ctx, tc.endpoint("transfer", "disable_otp_finalize"), BuildParams(Params{"otp": otp}))
}

func (tc *TransferControl) EnableOTP(ctx context.Context) (Result, error) {
	return tc.ctx.Post(ctx, tc.endpoint("transfer", "enable_otp"), nil)
}
