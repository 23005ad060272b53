package tasksdk

import "time"

// ============================================================================
// Auth Types
// ============================================================================

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"Sup3r$ecret"`
}

// RegisterResponse carries the id of the new user.
type RegisterResponse struct {
	ID      int64  `json:"id" example:"1"`
	Message string `json:"message" example:"User 1 registered"`
}

// LoginRequest is the body of POST /api/auth/login. OTPCode is only needed
// once the user has enabled TOTP; a backup code is accepted in its place.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"Sup3r$ecret"`
	OTPCode  string `json:"otp_code,omitempty" example:"123456"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type" example:"bearer"`
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RevokeRequest is the body of POST /api/auth/revoke.
type RevokeRequest struct {
	Token string `json:"token"`
}

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message" example:"Successfully logged out"`
}

// UserResponse is the body of GET /api/auth/me.
type UserResponse struct {
	ID         int64     `json:"id" example:"1"`
	Username   string    `json:"username" example:"alice"`
	Email      string    `json:"email" example:"alice@example.com"`
	MFAEnabled bool      `json:"mfa_enabled"`
	CreatedAt  time.Time `json:"created_at"`
}

// ============================================================================
// MFA Types
// ============================================================================

// TOTPEnrollResponse holds a pending TOTP secret. It is not active until
// confirmed with VerifyTOTP.
type TOTPEnrollResponse struct {
	Secret     string `json:"secret" example:"JBSWY3DPEHPK3PXP"`
	OTPAuthURL string `json:"otpauth_url" example:"otpauth://totp/taskboard:alice?secret=JBSWY3DPEHPK3PXP"`
	Issuer     string `json:"issuer" example:"taskboard"`
	Account    string `json:"account" example:"alice"`
}

// TOTPCodeRequest carries a six digit code from an authenticator app.
type TOTPCodeRequest struct {
	Code string `json:"code" example:"123456"`
}

// BackupCodesResponse lists single-use backup codes. They are shown once.
type BackupCodesResponse struct {
	Message     string   `json:"message" example:"MFA enabled"`
	BackupCodes []string `json:"backup_codes"`
}

// ============================================================================
// Task Types
// ============================================================================

// Task is a to-do item owned by the authenticated user.
type Task struct {
	ID        int64     `json:"id" example:"7"`
	Title     string    `json:"title" example:"Buy milk"`
	Content   string    `json:"content" example:"Two litres, full cream"`
	Deadline  time.Time `json:"deadline"`
	IsDone    bool      `json:"is_done"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTaskRequest is the body of POST /api/tasks/create. An empty title
// becomes "Some task".
type CreateTaskRequest struct {
	Title    string    `json:"title,omitempty" example:"Buy milk"`
	Content  string    `json:"content" example:"Two litres, full cream"`
	Deadline time.Time `json:"deadline"`
	IsDone   *bool     `json:"is_done,omitempty"`
}

// UpdateTaskRequest is a partial update; nil fields are left as they are.
type UpdateTaskRequest struct {
	Title    *string    `json:"title,omitempty"`
	Content  *string    `json:"content,omitempty"`
	Deadline *time.Time `json:"deadline,omitempty"`
	IsDone   *bool      `json:"is_done,omitempty"`
}

// ReplaceTaskRequest overwrites every mutable field of a task.
type ReplaceTaskRequest struct {
	Title    string    `json:"title" example:"Buy milk"`
	Content  string    `json:"content" example:"Two litres, full cream"`
	Deadline time.Time `json:"deadline"`
	IsDone   bool      `json:"is_done"`
}

// TaskMessage acknowledges an update or delete.
type TaskMessage struct {
	ID      int64  `json:"id" example:"7"`
	Message string `json:"message" example:"Task 7 updated"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime" example:"1h2m3s"`
	Version string        `json:"version" example:"dev"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports readiness of individual dependencies.
type HealthChecks struct {
	Database string `json:"database" example:"ok"`
}
