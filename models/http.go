package models

// AdminLoginRequest carries the admin credentials submitted to
// POST /api/auth/admin-login.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLoginResponse is the envelope returned by the admin login endpoint.
// Success=false carries a human-readable rejection in Message; Success=true
// additionally carries the session token.
type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// MemoryPageCreate is the payload accepted by POST /api/memory-pages.
// The password is plain text here; the server hashes it before storage and
// never returns it.
type MemoryPageCreate struct {
	Title          string   `json:"title"`
	Password       string   `json:"password"`
	WelcomeMessage string   `json:"welcome_message"`
	Memories       []Memory `json:"memories"`
	FinalMessage   string   `json:"final_message"`
}

// MemoryPageUpdate is the payload accepted by PUT /api/memory-pages/{id}.
//
// ID may differ from the path id: the admin is allowed to rename a page's
// identifier from the edit screen. Password uses an optional-field wrapper:
// nil means "keep the stored password", a non-nil value replaces it. This
// removes the ambiguity of an empty-string sentinel between "cleared" and
// "unchanged".
type MemoryPageUpdate struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Password       *string  `json:"password,omitempty"`
	WelcomeMessage string   `json:"welcome_message"`
	Memories       []Memory `json:"memories"`
	FinalMessage   string   `json:"final_message"`
}

// PasswordVerifyRequest carries the recipient's password attempt for
// POST /api/memory-pages/{id}/verify-password.
type PasswordVerifyRequest struct {
	Password string `json:"password"`
}

// PasswordVerifyResponse is the envelope returned by the password
// verification endpoint. On success Data holds the unlocked page content;
// the page password is never included.
type PasswordVerifyResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    *MemoryPage `json:"data,omitempty"`
}

// UploadResponse is returned by POST /api/upload. URL is root-relative
// (/uploads/{name}); callers prefix the backend origin to form an absolute
// reference.
type UploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// DeleteResponse acknowledges a successful DELETE /api/memory-pages/{id}.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
