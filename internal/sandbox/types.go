package sandbox

// The json layout follows what the processor answers, so the client sees the same shapes in tests.

type Customer struct {
	ID           int64                  `json:"id"`
	CustomerCode string                 `json:"customer_code"`
	Email        string                 `json:"email"`
	FirstName    string                 `json:"first_name"`
	LastName     string                 `json:"last_name"`
	Phone        string                 `json:"phone"`
	Metadata     map[string]interface{} `json:"metadata"`
	Domain       string                 `json:"domain"`
	CreatedAt    string                 `json:"createdAt"`
	UpdatedAt    string                 `json:"updatedAt"`
}

type PaymentRequest struct {
	ID            int64                    `json:"id"`
	RequestCode   string                   `json:"request_code"`
	Customer      int64                    `json:"customer"`
	Amount        int64                    `json:"amount"`
	Currency      string                   `json:"currency"`
	DueDate       string                   `json:"due_date"`
	Description   string                   `json:"description"`
	LineItems     []map[string]interface{} `json:"line_items"`
	Tax           []map[string]interface{} `json:"tax"`
	Metadata      map[string]interface{}   `json:"metadata"`
	Status        string                   `json:"status"`
	Paid          bool                     `json:"paid"`
	Draft         bool                     `json:"draft"`
	HasInvoice    bool                     `json:"has_invoice"`
	InvoiceNumber int64                    `json:"invoice_number"`
	Archived      bool                     `json:"archived"`
	Domain        string                   `json:"domain"`
	CreatedAt     string                   `json:"createdAt"`
}

type Authorization struct {
	AuthorizationCode string `json:"authorization_code"`
	Bin               string `json:"bin"`
	Last4             string `json:"last4"`
	Channel           string `json:"channel"`
	Reusable          bool   `json:"reusable"`
}

type Transaction struct {
	ID               int64                  `json:"id"`
	Reference        string                 `json:"reference"`
	Amount           int64                  `json:"amount"`
	Currency         string                 `json:"currency"`
	Status           string                 `json:"status"`
	Channel          string                 `json:"channel"`
	GatewayResponse  string                 `json:"gateway_response"`
	Plan             string                 `json:"plan"`
	Channels         []string               `json:"-"`
	CallbackURL      string                 `json:"callback_url"`
	AuthorizationURL string                 `json:"-"`
	AccessCode       string                 `json:"-"`
	Metadata         map[string]interface{} `json:"metadata"`
	Customer         Customer               `json:"customer"`
	Authorization    *Authorization         `json:"authorization"`
	PaidAt           string                 `json:"paid_at"`
	Domain           string                 `json:"domain"`
	CreatedAt        string                 `json:"createdAt"`
}

type Refund struct {
	ID           int64  `json:"id"`
	Transaction  int64  `json:"transaction"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	CustomerNote string `json:"customer_note"`
	MerchantNote string `json:"merchant_note"`
	Domain       string `json:"domain"`
	CreatedAt    string `json:"createdAt"`
}

type Page struct {
	ID           int64                    `json:"id"`
	Name         string                   `json:"name"`
	Description  string                   `json:"description"`
	Amount       int64                    `json:"amount"`
	Slug         string                   `json:"slug"`
	RedirectURL  string                   `json:"redirect_url"`
	CustomFields []map[string]interface{} `json:"custom_fields"`
	Active       bool                     `json:"active"`
	Domain       string                   `json:"domain"`
	CreatedAt    string                   `json:"createdAt"`
}

type Subaccount struct {
	ID                  int64                  `json:"id"`
	SubaccountCode      string                 `json:"subaccount_code"`
	BusinessName        string                 `json:"business_name"`
	Description         string                 `json:"description"`
	SettlementBank      string                 `json:"settlement_bank"`
	AccountNumber       string                 `json:"account_number"`
	PercentageCharge    float64                `json:"percentage_charge"`
	PrimaryContactEmail string                 `json:"primary_contact_email"`
	PrimaryContactName  string                 `json:"primary_contact_name"`
	PrimaryContactPhone string                 `json:"primary_contact_phone"`
	Metadata            map[string]interface{} `json:"metadata"`
	Active              bool                   `json:"active"`
	Domain              string                 `json:"domain"`
	CreatedAt           string                 `json:"createdAt"`
}

type RecipientDetails struct {
	AuthorizationCode string `json:"authorization_code,omitempty"`
	AccountNumber     string `json:"account_number"`
	BankCode          string `json:"bank_code"`
}

type Recipient struct {
	ID            int64                  `json:"id"`
	RecipientCode string                 `json:"recipient_code"`
	Type          string                 `json:"type"`
	Name          string                 `json:"name"`
	Currency      string                 `json:"currency"`
	Description   string                 `json:"description"`
	Details       RecipientDetails       `json:"details"`
	Metadata      map[string]interface{} `json:"metadata"`
	Active        bool                   `json:"active"`
	Domain        string                 `json:"domain"`
	CreatedAt     string                 `json:"createdAt"`
}

type Balance struct {
	Currency string `json:"currency"`
	Balance  int64  `json:"balance"`
}

type LedgerEntry struct {
	ID         int64  `json:"id"`
	Currency   string `json:"currency"`
	Difference int64  `json:"difference"`
	Balance    int64  `json:"balance"`
	Reason     string `json:"reason"`
	CreatedAt  string `json:"createdAt"`
}

// PageMeta is the pagination block of list responses.
type PageMeta struct {
	Total     int `json:"total"`
	Skipped   int `json:"skipped"`
	PerPage   int `json:"perPage"`
	Page      int `json:"page"`
	PageCount int `json:"pageCount"`
}
