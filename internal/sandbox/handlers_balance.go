package sandbox

import (
	"context"
	"net/http"

	"github.com/eurofurence/paystakk/internal/logging"
)

// GetBalance handles GET /balance.
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "Balances retrieved", h.store.Balances())
}

// GetBalanceLedger handles GET /balance/ledger.
func (h *Handler) GetBalanceLedger(w http.ResponseWriter, r *http.Request) {
	respondList(w, r, "Balance ledger retrieved", h.store.Ledger())
}

type resendOTPInput struct {
	TransferCode string `json:"transfer_code"`
	Reason       string `json:"reason"`
}

// ResendOTP handles POST /transfer/resend_otp.
func (h *Handler) ResendOTP(ctx context.Context, in *resendOTPInput, logger logging.Logger) (*struct{}, error) {
	if in.TransferCode == "" {
		return nil, badRequest("Transfer code is required")
	}
	if in.Reason != "resend_otp" && in.Reason != "transfer" {
		return nil, badRequest("Reason must be resend_otp or transfer")
	}
	return nil, nil
}

// DisableOTP handles POST /transfer/disable_otp.
func (h *Handler) DisableOTP(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DisableOTP(); err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, "OTP has been sent to mobile number ending with 4321", nil)
}

type finalizeOTPInput struct {
	OTP string `json:"otp"`
}

// FinalizeDisableOTP handles POST /transfer/disable_otp_finalize.
func (h *Handler) FinalizeDisableOTP(ctx context.Context, in *finalizeOTPInput, logger logging.Logger) (*struct{}, error) {
	return nil, h.store.FinalizeDisableOTP(in.OTP)
}

// EnableOTP handles POST /transfer/enable_otp.
func (h *Handler) EnableOTP(w http.ResponseWriter, r *http.Request) {
	h.store.EnableOTP()
	respond(w, r, "OTP requirement for transfers has been enabled", nil)
}
