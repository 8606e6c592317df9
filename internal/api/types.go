// Package api defines the request and response types shared by HTTP handlers.
package api

// ErrorResponse is the generic error payload returned on failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the generic acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed JWT after a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupRequest is the payload for user registration.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdatePasswordRequest changes the password of the authenticated user.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// UpdateProfileRequest updates the profile of the authenticated user.
type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"required,max=120"`
	Company  string `json:"company" binding:"max=120"`
}

// UpdateAvatarRequest points the profile at a new object-storage key.
type UpdateAvatarRequest struct {
	AvatarKey string `json:"avatar_key" binding:"required,max=256"`
}

// ProfileResponse is the profile payload for the authenticated user.
type ProfileResponse struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Company   string `json:"company"`
	Role      string `json:"role"`
	AvatarKey string `json:"avatar_key,omitempty"`
}

// CompareRequest selects the companies for a comparison run.
type CompareRequest struct {
	CompanyIDs []uint `json:"company_ids" binding:"required,min=2"`
}

// CreateWatchlistRequest creates a named watchlist for the current user.
type CreateWatchlistRequest struct {
	Name string `json:"name" binding:"required,max=80"`
}

// RenameWatchlistRequest renames an existing watchlist.
type RenameWatchlistRequest struct {
	Name string `json:"name" binding:"required,max=80"`
}

// WatchlistCompanyRequest adds a company to a watchlist.
type WatchlistCompanyRequest struct {
	CompanyID uint `json:"company_id" binding:"required"`
}

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,max=200"`
	Body    string `json:"body" binding:"required,max=4000"`
}

// UpdateContactStatusRequest moves a contact message through moderation.
type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrderRequest starts a checkout for a plan upgrade.
type CreateOrderRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// CreateOrderResponse echoes the gateway order the client-side widget needs.
type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Plan     string `json:"plan"`
}

// VerifyPaymentRequest carries the gateway's success-callback fields for
// server-side verification.
type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}
