package sandbox

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eurofurence/paystakk/internal/restapi/common"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Store() *Store {
	return h.store
}

// Routes mounts the processor endpoints. Authentication is left to the caller's middleware.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/customer", func(r chi.Router) {
		r.Post("/", common.CreateHandler(h.CreateCustomer,
			common.DecodeJSONBody[CustomerInput],
			common.RespondWithMessage[Customer]("Customer created")))
		r.Get("/", h.ListCustomers)
		r.Get("/{key}", h.GetCustomer)
		r.Put("/{key}", h.UpdateCustomer)
	})

	r.Route("/paymentrequest", func(r chi.Router) {
		r.Post("/", common.CreateHandler(h.CreatePaymentRequest,
			common.DecodeJSONBody[PaymentRequestInput],
			common.RespondWithMessage[PaymentRequest]("Payment request created")))
		r.Get("/", h.ListPaymentRequests)
		r.Get("/verify/{key}", h.VerifyPaymentRequest)
		r.Get("/{key}", h.GetPaymentRequest)
	})

	r.Route("/transaction", func(r chi.Router) {
		r.Post("/initialize", common.CreateHandler(h.InitializeTransaction,
			common.DecodeJSONBody[TransactionInput],
			common.RespondWithMessage[initializeResponse]("Authorization URL created")))
		r.Post("/charge_authorization", common.CreateHandler(h.ChargeAuthorization,
			common.DecodeJSONBody[TransactionInput],
			common.RespondWithMessage[Transaction]("Charge attempted")))
		r.Get("/verify/{reference}", h.VerifyTransaction)
		r.Get("/", h.ListTransactions)
		r.Get("/{key}", h.GetTransaction)
	})

	r.Route("/refund", func(r chi.Router) {
		r.Post("/", common.CreateHandler(h.CreateRefund,
			common.DecodeJSONBody[RefundInput],
			common.RespondWithMessage[Refund]("Refund has been queued for processing")))
		r.Get("/", h.ListRefunds)
		r.Get("/{key}", h.GetRefund)
	})

	r.Get("/balance", h.GetBalance)
	r.Get("/balance/ledger", h.GetBalanceLedger)

	r.Route("/transfer", func(r chi.Router) {
		r.Post("/resend_otp", common.CreateHandler(h.ResendOTP,
			common.DecodeJSONBody[resendOTPInput],
			common.RespondWithMessage[struct{}]("OTP has been resent")))
		r.Post("/disable_otp", h.DisableOTP)
		r.Post("/disable_otp_finalize", common.CreateHandler(h.FinalizeDisableOTP,
			common.DecodeJSONBody[finalizeOTPInput],
			common.RespondWithMessage[struct{}]("OTP requirement for transfers has been disabled")))
		r.Post("/enable_otp", h.EnableOTP)
	})

	r.Route("/page", func(r chi.Router) {
		r.Post("/", common.CreateHandler(h.CreatePage,
			common.DecodeJSONBody[PageInput],
			common.RespondWithMessage[Page]("Page created")))
		r.Get("/", h.ListPages)
		r.Get("/check_slug_availability/{slug}", h.CheckSlugAvailability)
		r.Get("/{key}", h.GetPage)
	})

	r.Route("/subaccount", func(r chi.Router) {
		r.Post("/", common.CreateHandler(h.CreateSubaccount,
			common.DecodeJSONBody[SubaccountInput],
			common.RespondWithMessage[Subaccount]("Subaccount created")))
		r.Get("/", h.ListSubaccounts)
		r.Get("/{key}", h.GetSubaccount)
	})

	r.Route("/transferrecipient", func(r chi.Router) {
		r.Post("/", common.CreateHandler(h.CreateRecipient,
			common.DecodeJSONBody[RecipientInput],
			common.RespondWithMessage[Recipient]("Transfer recipient created successfully")))
		r.Get("/", h.ListRecipients)
		r.Get("/{key}", h.GetRecipient)
	})

	// control plane, not part of the processor api
	r.Post("/sandbox/transaction/{reference}/pay", h.PayTransaction)
}

func respond(w http.ResponseWriter, r *http.Request, message string, data interface{}) {
	common.SendJSON(r.Context(), w, http.StatusOK, common.NewResponse(message, data))
}

func respondList[T any](w http.ResponseWriter, r *http.Request, message string, items []T) {
	page, meta := paginate(r, items)
	response := common.NewResponse(message, page)
	response.Meta = meta
	common.SendJSON(r.Context(), w, http.StatusOK, response)
}

func fail(w http.ResponseWriter, r *http.Request, err error) {
	common.SendError(r.Context(), w, err)
}

func paginate[T any](r *http.Request, items []T) ([]T, PageMeta) {
	perPage := queryInt(r, "perPage", defaultPage)
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	page := queryInt(r, "page", 1)
	if page > maxPage {
		page = maxPage
	}

	skipped := (page - 1) * perPage
	meta := PageMeta{
		Total:     len(items),
		Skipped:   skipped,
		PerPage:   perPage,
		Page:      page,
		PageCount: (len(items) + perPage - 1) / perPage,
	}

	if skipped >= len(items) {
		return []T{}, meta
	}
	end := skipped + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[skipped:end], meta
}

func queryInt(r *http.Request, key string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

func queryBool(r *http.Request, key string) *bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(key))
	if err != nil {
		return nil
	}
	return &value
}
