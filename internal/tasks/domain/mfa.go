package domain

type MFAEnrollResponse struct {
	Secret  string // Base32 encoded secret for TOTP
	URL     string // otpauth:// URL for QR code generation
	Issuer  string
	Account string
}
