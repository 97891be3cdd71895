package dto

// SubscribeRequest represents the form submitted by a new subscriber.
type SubscribeRequest struct {
	Name  string `form:"name" json:"name" validate:"required"`
	Email string `form:"email" json:"email" validate:"required,email"`
}

// PublishRequest represents the newsletter issue form submitted from the
// admin dashboard.
type PublishRequest struct {
	Title          string `form:"title" json:"title" validate:"required"`
	TextContent    string `form:"text_content" json:"text_content" validate:"required"`
	HTMLContent    string `form:"html_content" json:"html_content" validate:"required"`
	IdempotencyKey string `form:"idempotency_key" json:"idempotency_key" validate:"required"`
}

// LoginRequest represents the admin login form.
type LoginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// ChangePasswordRequest represents the admin password change form.
type ChangePasswordRequest struct {
	CurrentPassword  string `form:"current_password" json:"current_password" validate:"required"`
	NewPassword      string `form:"new_password" json:"new_password" validate:"required"`
	NewPasswordCheck string `form:"new_password_check" json:"new_password_check" validate:"required"`
}
