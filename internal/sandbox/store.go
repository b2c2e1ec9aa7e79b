package sandbox

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultCurrency    = "NGN"
	DefaultCheckoutURL = "https://checkout.paystack.com"

	domain      = "test"
	disableOTP  = "123456"
	defaultPage = 50
	maxPerPage  = 100
	maxPage     = 1000000
)

// Rejection is a logical failure, answered with status false and the message.
type Rejection struct {
	Status  int
	Message string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%d %s", r.Status, r.Message)
}

func (r *Rejection) HTTPStatus() int {
	return r.Status
}

func (r *Rejection) APIMessage() string {
	return r.Message
}

func reject(status int, message string) error {
	return &Rejection{Status: status, Message: message}
}

func notFound(message string) error {
	return reject(http.StatusNotFound, message)
}

func badRequest(message string) error {
	return reject(http.StatusBadRequest, message)
}

// Store keeps all sandbox state in memory. All methods are safe for concurrent use.
type Store struct {
	mu sync.Mutex

	seq         int64
	now         func() time.Time
	checkoutURL string

	customers       []*Customer
	paymentRequests []*PaymentRequest
	transactions    []*Transaction
	refunds         []*Refund
	pages           []*Page
	subaccounts     []*Subaccount
	recipients      []*Recipient

	balances map[string]int64
	ledger   []LedgerEntry

	otpEnabled        bool
	otpDisablePending bool
}

func NewStore(checkoutURL string) *Store {
	if checkoutURL == "" {
		checkoutURL = DefaultCheckoutURL
	}
	return &Store{
		now:         time.Now,
		checkoutURL: strings.TrimSuffix(checkoutURL, "/"),
		balances:    make(map[string]int64),
		otpEnabled:  true,
	}
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format("2006-01-02T15:04:05.000Z")
}

func randomCode(prefix string, length int) string {
	code := strings.ReplaceAll(uuid.NewString(), "-", "")
	if length > len(code) {
		length = len(code)
	}
	return prefix + code[:length]
}

func matchesID(id int64, key string) bool {
	return strconv.FormatInt(id, 10) == key
}

// --- customers ---

type CustomerInput struct {
	Email     string                 `json:"email"`
	FirstName string                 `json:"first_name"`
	LastName  string                 `json:"last_name"`
	Phone     string                 `json:"phone"`
	Metadata  map[string]interface{} `json:"metadata"`
}

func (s *Store) CreateCustomer(in CustomerInput) (Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !strings.Contains(in.Email, "@") {
		return Customer{}, badRequest("Please specify a valid email")
	}
	// the processor answers an existing email with the existing customer
	if existing := s.findCustomer(in.Email); existing != nil {
		return *existing, nil
	}
	return *s.addCustomer(in), nil
}

func (s *Store) addCustomer(in CustomerInput) *Customer {
	now := s.timestamp()
	c := &Customer{
		ID:           s.nextID(),
		CustomerCode: randomCode("CUS_", 15),
		Email:        strings.ToLower(in.Email),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Metadata:     in.Metadata,
		Domain:       domain,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.customers = append(s.customers, c)
	return c
}

// findCustomer accepts an email, a customer code or a numeric id.
func (s *Store) findCustomer(key string) *Customer {
	for _, c := range s.customers {
		if strings.EqualFold(c.Email, key) || c.CustomerCode == key || matchesID(c.ID, key) {
			return c
		}
	}
	return nil
}

func (s *Store) GetCustomer(key string) (Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findCustomer(key)
	if c == nil {
		return Customer{}, notFound("Customer not found")
	}
	return *c, nil
}

func (s *Store) UpdateCustomer(key string, in CustomerInput) (Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findCustomer(key)
	if c == nil {
		return Customer{}, notFound("Customer not found")
	}
	if in.FirstName != "" {
		c.FirstName = in.FirstName
	}
	if in.LastName != "" {
		c.LastName = in.LastName
	}
	if in.Phone != "" {
		c.Phone = in.Phone
	}
	if in.Metadata != nil {
		c.Metadata = in.Metadata
	}
	c.UpdatedAt = s.timestamp()
	return *c, nil
}

func (s *Store) ListCustomers() []Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Customer, 0, len(s.customers))
	for _, c := range s.customers {
		result = append(result, *c)
	}
	return result
}

// --- payment requests ---

type PaymentRequestInput struct {
	Customer         string                   `json:"customer"`
	Amount           int64                    `json:"amount"`
	DueDate          string                   `json:"due_date"`
	Description      string                   `json:"description"`
	LineItems        []map[string]interface{} `json:"line_items"`
	Tax              []map[string]interface{} `json:"tax"`
	Currency         string                   `json:"currency"`
	Metadata         map[string]interface{}   `json:"metadata"`
	SendNotification bool                     `json:"send_notification"`
	Draft            bool                     `json:"draft"`
	HasInvoice       bool                     `json:"has_invoice"`
	InvoiceNumber    int64                    `json:"invoice_number"`
}

func (s *Store) CreatePaymentRequest(in PaymentRequestInput) (PaymentRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findCustomer(in.Customer)
	if c == nil {
		return PaymentRequest{}, badRequest("Customer not found")
	}
	amount := in.Amount
	if amount == 0 {
		amount = sumAmounts(in.LineItems) + sumAmounts(in.Tax)
	}
	if amount <= 0 {
		return PaymentRequest{}, badRequest("Amount is required")
	}

	status := "pending"
	if in.Draft {
		status = "draft"
	}
	pr := &PaymentRequest{
		ID:            s.nextID(),
		RequestCode:   randomCode("PRQ_", 15),
		Customer:      c.ID,
		Amount:        amount,
		Currency:      currencyOrDefault(in.Currency),
		DueDate:       in.DueDate,
		Description:   in.Description,
		LineItems:     in.LineItems,
		Tax:           in.Tax,
		Metadata:      in.Metadata,
		Status:        status,
		Draft:         in.Draft,
		HasInvoice:    in.HasInvoice,
		InvoiceNumber: in.InvoiceNumber,
		Domain:        domain,
		CreatedAt:     s.timestamp(),
	}
	s.paymentRequests = append(s.paymentRequests, pr)
	return *pr, nil
}

func sumAmounts(items []map[string]interface{}) int64 {
	var sum int64
	for _, item := range items {
		if amount, ok := item["amount"].(float64); ok {
			sum += int64(amount)
		}
	}
	return sum
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return DefaultCurrency
	}
	return strings.ToUpper(currency)
}

func (s *Store) GetPaymentRequest(key string) (PaymentRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, pr := range s.paymentRequests {
		if pr.RequestCode == key || matchesID(pr.ID, key) {
			return *pr, nil
		}
	}
	return PaymentRequest{}, notFound("Payment request not found")
}

type PaymentRequestFilter struct {
	Customer       string
	Status         string
	Currency       string
	Paid           *bool
	IncludeArchive bool
}

func (s *Store) ListPaymentRequests(f PaymentRequestFilter) []PaymentRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var customerID int64
	if f.Customer != "" {
		c := s.findCustomer(f.Customer)
		if c == nil {
			return []PaymentRequest{}
		}
		customerID = c.ID
	}

	result := make([]PaymentRequest, 0)
	for _, pr := range s.paymentRequests {
		if customerID != 0 && pr.Customer != customerID {
			continue
		}
		if f.Status != "" && pr.Status != f.Status {
			continue
		}
		if f.Currency != "" && !strings.EqualFold(pr.Currency, f.Currency) {
			continue
		}
		if f.Paid != nil && pr.Paid != *f.Paid {
			continue
		}
		if pr.Archived && !f.IncludeArchive {
			continue
		}
		result = append(result, *pr)
	}
	return result
}

// --- transactions ---

type TransactionInput struct {
	Email             string                 `json:"email"`
	Amount            int64                  `json:"amount"`
	Reference         string                 `json:"reference"`
	Currency          string                 `json:"currency"`
	CallbackURL       string                 `json:"callback_url"`
	Plan              string                 `json:"plan"`
	Channels          []string               `json:"channels"`
	Metadata          map[string]interface{} `json:"metadata"`
	AuthorizationCode string                 `json:"authorization_code"`
}

func (s *Store) InitializeTransaction(in TransactionInput) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !strings.Contains(in.Email, "@") {
		return Transaction{}, badRequest("Invalid Email Address Passed")
	}
	if in.Amount <= 0 {
		return Transaction{}, badRequest("Invalid Amount Sent")
	}
	if in.Reference == "" {
		in.Reference = randomCode("", 10)
	}
	if s.findTransaction(in.Reference) != nil {
		return Transaction{}, badRequest("Duplicate Transaction Reference")
	}

	c := s.findCustomer(in.Email)
	if c == nil {
		c = s.addCustomer(CustomerInput{Email: in.Email})
	}

	accessCode := randomCode("", 15)
	t := &Transaction{
		ID:               s.nextID(),
		Reference:        in.Reference,
		Amount:           in.Amount,
		Currency:         currencyOrDefault(in.Currency),
		Status:           "abandoned",
		GatewayResponse:  "The transaction was not completed",
		Plan:             in.Plan,
		Channels:         in.Channels,
		CallbackURL:      in.CallbackURL,
		AuthorizationURL: s.checkoutURL + "/" + accessCode,
		AccessCode:       accessCode,
		Metadata:         in.Metadata,
		Customer:         *c,
		Domain:           domain,
		CreatedAt:        s.timestamp(),
	}
	s.transactions = append(s.transactions, t)
	return *t, nil
}

func (s *Store) findTransaction(key string) *Transaction {
	for _, t := range s.transactions {
		if t.Reference == key || matchesID(t.ID, key) {
			return t
		}
	}
	return nil
}

func (s *Store) GetTransaction(key string) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.findTransaction(key)
	if t == nil {
		return Transaction{}, notFound("Transaction not found")
	}
	return *t, nil
}

func (s *Store) VerifyTransaction(reference string) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.transactions {
		if t.Reference == reference {
			return *t, nil
		}
	}
	return Transaction{}, notFound("Transaction reference not found")
}

// Pay completes the checkout of a transaction, as if the customer had paid by card.
func (s *Store) Pay(reference string) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.findTransaction(reference)
	if t == nil {
		return Transaction{}, notFound("Transaction reference not found")
	}
	if t.Status != "abandoned" {
		return Transaction{}, badRequest("Transaction already paid")
	}

	s.markPaid(t, &Authorization{
		AuthorizationCode: randomCode("AUTH_", 10),
		Bin:               "408408",
		Last4:             "4081",
		Channel:           "card",
		Reusable:          true,
	})
	return *t, nil
}

func (s *Store) markPaid(t *Transaction, auth *Authorization) {
	t.Status = "success"
	t.GatewayResponse = "Successful"
	t.Channel = auth.Channel
	t.Authorization = auth
	t.PaidAt = s.timestamp()
	s.credit(t.Currency, t.Amount, "transaction "+t.Reference)
}

func (s *Store) ChargeAuthorization(in TransactionInput) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var auth *Authorization
	for _, t := range s.transactions {
		if t.Authorization != nil && t.Authorization.AuthorizationCode == in.AuthorizationCode && in.AuthorizationCode != "" {
			copied := *t.Authorization
			auth = &copied
			break
		}
	}
	if auth == nil || !auth.Reusable {
		return Transaction{}, badRequest("Invalid authorization code")
	}
	if in.Amount <= 0 {
		return Transaction{}, badRequest("Invalid Amount Sent")
	}
	if in.Reference == "" {
		in.Reference = randomCode("", 10)
	}
	if s.findTransaction(in.Reference) != nil {
		return Transaction{}, badRequest("Duplicate Transaction Reference")
	}
	c := s.findCustomer(in.Email)
	if c == nil {
		return Transaction{}, badRequest("Customer not found")
	}

	t := &Transaction{
		ID:        s.nextID(),
		Reference: in.Reference,
		Amount:    in.Amount,
		Currency:  currencyOrDefault(in.Currency),
		Metadata:  in.Metadata,
		Customer:  *c,
		Domain:    domain,
		CreatedAt: s.timestamp(),
	}
	s.markPaid(t, auth)
	s.transactions = append(s.transactions, t)
	return *t, nil
}

type TransactionFilter struct {
	Customer string
	Status   string
	Amount   int64
}

func (s *Store) ListTransactions(f TransactionFilter) []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Transaction, 0)
	for _, t := range s.transactions {
		if f.Customer != "" && !(matchesID(t.Customer.ID, f.Customer) || t.Customer.CustomerCode == f.Customer) {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Amount != 0 && t.Amount != f.Amount {
			continue
		}
		result = append(result, *t)
	}
	return result
}

// --- refunds ---

type RefundInput struct {
	Transaction  string `json:"transaction"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	CustomerNote string `json:"customer_note"`
	MerchantNote string `json:"merchant_note"`
}

func (s *Store) CreateRefund(in RefundInput) (Refund, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.findTransaction(in.Transaction)
	if t == nil {
		return Refund{}, notFound("Transaction not found")
	}
	if t.Status != "success" && t.Status != "partially_refunded" {
		return Refund{}, badRequest("Cannot refund a transaction that was not successful")
	}

	remaining := t.Amount - s.refunded(t.ID)
	amount := in.Amount
	if amount == 0 {
		amount = remaining
	}
	if amount > remaining {
		return Refund{}, badRequest("Refund amount cannot be greater than transaction amount")
	}

	r := &Refund{
		ID:           s.nextID(),
		Transaction:  t.ID,
		Amount:       amount,
		Currency:     t.Currency,
		Status:       "pending",
		CustomerNote: in.CustomerNote,
		MerchantNote: in.MerchantNote,
		Domain:       domain,
		CreatedAt:    s.timestamp(),
	}
	s.refunds = append(s.refunds, r)
	s.credit(t.Currency, -amount, fmt.Sprintf("refund %d", r.ID))

	if amount == remaining {
		t.Status = "reversed"
	} else {
		t.Status = "partially_refunded"
	}
	return *r, nil
}

func (s *Store) refunded(transactionID int64) int64 {
	var sum int64
	for _, r := range s.refunds {
		if r.Transaction == transactionID {
			sum += r.Amount
		}
	}
	return sum
}

func (s *Store) GetRefund(key string) (Refund, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.refunds {
		if matchesID(r.ID, key) {
			return *r, nil
		}
	}
	return Refund{}, notFound("Refund not found")
}

func (s *Store) ListRefunds(reference string, currency string) []Refund {
	s.mu.Lock()
	defer s.mu.Unlock()

	var transactionID int64
	if reference != "" {
		t := s.findTransaction(reference)
		if t == nil {
			return []Refund{}
		}
		transactionID = t.ID
	}

	result := make([]Refund, 0)
	for _, r := range s.refunds {
		if transactionID != 0 && r.Transaction != transactionID {
			continue
		}
		if currency != "" && !strings.EqualFold(r.Currency, currency) {
			continue
		}
		result = append(result, *r)
	}
	return result
}

// --- balance and transfer control ---

func (s *Store) credit(currency string, difference int64, reason string) {
	s.balances[currency] += difference
	s.ledger = append(s.ledger, LedgerEntry{
		ID:         s.nextID(),
		Currency:   currency,
		Difference: difference,
		Balance:    s.balances[currency],
		Reason:     reason,
		CreatedAt:  s.timestamp(),
	})
}

func (s *Store) Balances() []Balance {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.balances) == 0 {
		return []Balance{{Currency: DefaultCurrency, Balance: 0}}
	}
	result := make([]Balance, 0, len(s.balances))
	for _, e := range s.ledger {
		if !containsCurrency(result, e.Currency) {
			result = append(result, Balance{Currency: e.Currency, Balance: s.balances[e.Currency]})
		}
	}
	return result
}

func containsCurrency(balances []Balance, currency string) bool {
	for _, b := range balances {
		if b.Currency == currency {
			return true
		}
	}
	return false
}

func (s *Store) Ledger() []LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]LedgerEntry, len(s.ledger))
	copy(result, s.ledger)
	return result
}

func (s *Store) DisableOTP() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.otpEnabled {
		return badRequest("OTP is already disabled for transfers")
	}
	s.otpDisablePending = true
	return nil
}

func (s *Store) FinalizeDisableOTP(otp string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.otpDisablePending {
		return badRequest("No request to disable OTP is pending")
	}
	if otp != disableOTP {
		return badRequest("Invalid OTP")
	}
	s.otpDisablePending = false
	s.otpEnabled = false
	return nil
}

func (s *Store) EnableOTP() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.otpEnabled = true
	s.otpDisablePending = false
}

func (s *Store) OTPEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.otpEnabled
}

// --- pages ---

type PageInput struct {
	Name         string                   `json:"name"`
	Description  string                   `json:"description"`
	Amount       int64                    `json:"amount"`
	Slug         string                   `json:"slug"`
	RedirectURL  string                   `json:"redirect_url"`
	CustomFields []map[string]interface{} `json:"custom_fields"`
}

func (s *Store) CreatePage(in PageInput) (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(in.Name) == "" {
		return Page{}, badRequest("Name is required")
	}
	if in.Slug == "" {
		in.Slug = randomCode("", 10)
	}
	if s.findPage(in.Slug) != nil {
		return Page{}, badRequest("Slug is not available")
	}

	p := &Page{
		ID:           s.nextID(),
		Name:         in.Name,
		Description:  in.Description,
		Amount:       in.Amount,
		Slug:         in.Slug,
		RedirectURL:  in.RedirectURL,
		CustomFields: in.CustomFields,
		Active:       true,
		Domain:       domain,
		CreatedAt:    s.timestamp(),
	}
	s.pages = append(s.pages, p)
	return *p, nil
}

func (s *Store) findPage(key string) *Page {
	for _, p := range s.pages {
		if p.Slug == key || matchesID(p.ID, key) {
			return p
		}
	}
	return nil
}

func (s *Store) GetPage(key string) (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPage(key)
	if p == nil {
		return Page{}, notFound("Page not found")
	}
	return *p, nil
}

func (s *Store) SlugAvailable(slug string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findPage(slug) == nil
}

func (s *Store) ListPages() []Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Page, 0, len(s.pages))
	for _, p := range s.pages {
		result = append(result, *p)
	}
	return result
}

// --- subaccounts ---

type SubaccountInput struct {
	BusinessName        string                 `json:"business_name"`
	SettlementBank      string                 `json:"settlement_bank"`
	AccountNumber       string                 `json:"account_number"`
	PercentageCharge    float64                `json:"percentage_charge"`
	Description         string                 `json:"description"`
	PrimaryContactEmail string                 `json:"primary_contact_email"`
	PrimaryContactName  string                 `json:"primary_contact_name"`
	PrimaryContactPhone string                 `json:"primary_contact_phone"`
	Metadata            map[string]interface{} `json:"metadata"`
}

func (s *Store) CreateSubaccount(in SubaccountInput) (Subaccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case in.BusinessName == "":
		return Subaccount{}, badRequest("Business name is required")
	case in.SettlementBank == "":
		return Subaccount{}, badRequest("Settlement bank is required")
	case in.AccountNumber == "":
		return Subaccount{}, badRequest("Account number is required")
	case in.PercentageCharge < 0 || in.PercentageCharge > 100:
		return Subaccount{}, badRequest("Percentage charge must be between 0 and 100")
	}

	sa := &Subaccount{
		ID:                  s.nextID(),
		SubaccountCode:      randomCode("ACCT_", 15),
		BusinessName:        in.BusinessName,
		Description:         in.Description,
		SettlementBank:      in.SettlementBank,
		AccountNumber:       in.AccountNumber,
		PercentageCharge:    in.PercentageCharge,
		PrimaryContactEmail: in.PrimaryContactEmail,
		PrimaryContactName:  in.PrimaryContactName,
		PrimaryContactPhone: in.PrimaryContactPhone,
		Metadata:            in.Metadata,
		Active:              true,
		Domain:              domain,
		CreatedAt:           s.timestamp(),
	}
	s.subaccounts = append(s.subaccounts, sa)
	return *sa, nil
}

func (s *Store) GetSubaccount(key string) (Subaccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sa := range s.subaccounts {
		if sa.SubaccountCode == key || matchesID(sa.ID, key) {
			return *sa, nil
		}
	}
	return Subaccount{}, notFound("Subaccount not found")
}

func (s *Store) ListSubaccounts() []Subaccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Subaccount, 0, len(s.subaccounts))
	for _, sa := range s.subaccounts {
		result = append(result, *sa)
	}
	return result
}

// --- transfer recipients ---

type RecipientInput struct {
	Type              string                 `json:"type"`
	Name              string                 `json:"name"`
	AccountNumber     string                 `json:"account_number"`
	BankCode          string                 `json:"bank_code"`
	Currency          string                 `json:"currency"`
	Description       string                 `json:"description"`
	AuthorizationCode string                 `json:"authorization_code"`
	Metadata          map[string]interface{} `json:"metadata"`
}

var recipientTypes = []string{"nuban", "mobile_money", "basa", "authorization"}

func (s *Store) CreateRecipient(in RecipientInput) (Recipient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !containsString(recipientTypes, in.Type) {
		return Recipient{}, badRequest("Invalid recipient type")
	}
	if in.Name == "" {
		return Recipient{}, badRequest("Name is required")
	}
	if in.Type != "authorization" && (in.AccountNumber == "" || in.BankCode == "") {
		return Recipient{}, badRequest("Account number and bank code are required")
	}

	r := &Recipient{
		ID:            s.nextID(),
		RecipientCode: randomCode("RCP_", 15),
		Type:          in.Type,
		Name:          in.Name,
		Currency:      currencyOrDefault(in.Currency),
		Description:   in.Description,
		Details: RecipientDetails{
			AuthorizationCode: in.AuthorizationCode,
			AccountNumber:     in.AccountNumber,
			BankCode:          in.BankCode,
		},
		Metadata:  in.Metadata,
		Active:    true,
		Domain:    domain,
		CreatedAt: s.timestamp(),
	}
	s.recipients = append(s.recipients, r)
	return *r, nil
}

func containsString(values []string, v string) bool {
	for _, e := range values {
		if e == v {
			return true
		}
	}
	return false
}

func (s *Store) GetRecipient(key string) (Recipient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.recipients {
		if r.RecipientCode == key || matchesID(r.ID, key) {
			return *r, nil
		}
	}
	return Recipient{}, notFound("Recipient not found")
}

func (s *Store) ListRecipients() []Recipient {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Recipient, 0, len(s.recipients))
	for _, r := range s.recipients {
		result = append(result, *r)
	}
	return result
}
