package model

type PesapalAuthRequest struct {
	ConsumerKey    string `json:"consumer_key"`
	ConsumerSecret string `json:"consumer_secret"`
}

type PesapalAuthResponse struct {
	Token      string        `json:"token"`
	ExpiryDate string        `json:"expiryDate"`
	Status     string        `json:"status"`
	Message    string        `json:"message"`
	Error      *PesapalError `json:"error"`
}

type PesapalError struct {
	Type    string `json:"error_type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PesapalBillingAddress struct {
	EmailAddress string `json:"email_address"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	FirstName    string `json:"first_name"`
}

type PesapalOrderRequest struct {
	ID             string                `json:"id"` // merchant reference (our ticket id)
	Currency       string                `json:"currency"`
	Amount         float64               `json:"amount"`
	Description    string                `json:"description"`
	CallbackURL    string                `json:"callback_url"`
	NotificationID string                `json:"notification_id"`
	BillingAddress PesapalBillingAddress `json:"billing_address"`
}

type PesapalOrderResponse struct {
	OrderTrackingID   string        `json:"order_tracking_id"`
	MerchantReference string        `json:"merchant_reference"`
	RedirectURL       string        `json:"redirect_url"`
	Status            string        `json:"status"`
	Error             *PesapalError `json:"error"`
}

type PesapalStatusResponse struct {
	PaymentMethod            string        `json:"payment_method"`
	Amount                   float64       `json:"amount"`
	PaymentStatusDescription string        `json:"payment_status_description"`
	Description              string        `json:"description"`
	ConfirmationCode         string        `json:"confirmation_code"`
	MerchantReference        string        `json:"merchant_reference"`
	Error                    *PesapalError `json:"error"`
}

// PesapalIPN is the inbound webhook payload. Pesapal sends it both as query
// parameters (GET) and as a JSON body (POST).
type PesapalIPN struct {
	OrderTrackingID        string `json:"OrderTrackingId" query:"OrderTrackingId"`
	OrderMerchantReference string `json:"OrderMerchantReference" query:"OrderMerchantReference"`
	OrderNotificationType  string `json:"OrderNotificationType" query:"OrderNotificationType"`
}
