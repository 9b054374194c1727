package adminsdk

// ErrorResponse is the error envelope every endpoint uses.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

type UserInfo struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	CenterIDs   []string `json:"center_ids"`
	TOTPEnabled bool     `json:"totp_enabled"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	TOTPCode string `json:"totp_code,omitempty"`
}

type LoginResponse struct {
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expires_at"`
	User      UserInfo `json:"user"`
}

type SignUpRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	InviteToken string `json:"invite_token,omitempty"`
}

// SignUpResponse reports partial success explicitly: the account may exist
// while CentersAssigned is false because the invitation was dead on arrival.
type SignUpResponse struct {
	User            UserInfo `json:"user"`
	CentersAssigned bool     `json:"centers_assigned"`
	InviteError     string   `json:"invite_error,omitempty"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type TOTPEnrollResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
}

type TOTPCodeRequest struct {
	Code string `json:"code"`
}

type InviteCreateRequest struct {
	CenterIDs     []string `json:"center_ids"`
	ExpiresInDays int      `json:"expires_in_days,omitempty"`
}

type InviteCreateResponse struct {
	InviteToken string `json:"invite_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

type CenterSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Town  string `json:"town"`
	State string `json:"state"`
}

type InviteLookupResponse struct {
	ExpiresAt int64           `json:"expires_at"`
	Centers   []CenterSummary `json:"centers"`
}

type Center struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Sector            string   `json:"sector"`
	Town              string   `json:"town"`
	Address           string   `json:"address"`
	StateID           string   `json:"state_id"`
	StateName         string   `json:"state_name"`
	DrInCharge        string   `json:"dr_in_charge"`
	DrInChargeTel     string   `json:"dr_in_charge_tel"`
	Tel               string   `json:"tel"`
	Fax               string   `json:"fax"`
	Email             string   `json:"email"`
	Website           string   `json:"website"`
	PanelNephrologist string   `json:"panel_nephrologist"`
	CentreManager     string   `json:"centre_manager"`
	CentreCoordinator string   `json:"centre_coordinator"`
	HepatitisBay      string   `json:"hepatitis_bay"`
	Units             string   `json:"units"`
	Description       string   `json:"description"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	Featured          bool     `json:"featured"`
}

type CentersResponse struct {
	Centers []Center `json:"centers"`
}

type CenterCreateRequest struct {
	Name              string   `json:"name"`
	Sector            string   `json:"sector,omitempty"`
	Town              string   `json:"town,omitempty"`
	Address           string   `json:"address,omitempty"`
	StateID           string   `json:"state_id"`
	DrInCharge        string   `json:"dr_in_charge,omitempty"`
	DrInChargeTel     string   `json:"dr_in_charge_tel,omitempty"`
	Tel               string   `json:"tel,omitempty"`
	Fax               string   `json:"fax,omitempty"`
	Email             string   `json:"email,omitempty"`
	Website           string   `json:"website,omitempty"`
	PanelNephrologist string   `json:"panel_nephrologist,omitempty"`
	CentreManager     string   `json:"centre_manager,omitempty"`
	CentreCoordinator string   `json:"centre_coordinator,omitempty"`
	HepatitisBay      string   `json:"hepatitis_bay,omitempty"`
	Units             string   `json:"units,omitempty"`
	Description       string   `json:"description,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	Featured          bool     `json:"featured,omitempty"`
}

// CenterUpdateRequest is a partial update; absent fields are left untouched.
type CenterUpdateRequest struct {
	Name              *string  `json:"name,omitempty"`
	Sector            *string  `json:"sector,omitempty"`
	Town              *string  `json:"town,omitempty"`
	Address           *string  `json:"address,omitempty"`
	StateID           *string  `json:"state_id,omitempty"`
	DrInCharge        *string  `json:"dr_in_charge,omitempty"`
	DrInChargeTel     *string  `json:"dr_in_charge_tel,omitempty"`
	Tel               *string  `json:"tel,omitempty"`
	Fax               *string  `json:"fax,omitempty"`
	Email             *string  `json:"email,omitempty"`
	Website           *string  `json:"website,omitempty"`
	PanelNephrologist *string  `json:"panel_nephrologist,omitempty"`
	CentreManager     *string  `json:"centre_manager,omitempty"`
	CentreCoordinator *string  `json:"centre_coordinator,omitempty"`
	HepatitisBay      *string  `json:"hepatitis_bay,omitempty"`
	Units             *string  `json:"units,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	Featured          *bool    `json:"featured,omitempty"`
}

type State struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type StatesResponse struct {
	States []State `json:"states"`
}

type BootstrapRequest struct {
	Token    string `json:"token"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

type BootstrapResponse struct {
	UserID string `json:"user_id"`
	// GeneratedPassword is only set when the request omitted a password.
	GeneratedPassword string `json:"generated_password,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
