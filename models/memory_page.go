package models

import "time"

// MemoryPage is a shareable, password-protected collection of media and
// narrative text. It is the central entity of the application: the admin
// creates and edits pages, recipients unlock them with a per-page password.
type MemoryPage struct {
	// ID is the public identifier of the page used in share URLs
	// (/view/{id}). It may be server-generated (UUID) or supplied by the
	// admin on the edit screen.
	ID string `json:"id"`

	// Title is the display name of the page shown on the dashboard and on
	// the recipient's lock screen.
	Title string `json:"title"`

	// PasswordHash is the bcrypt hash of the page's view password.
	// It never leaves the server process and is never serialised to JSON.
	PasswordHash string `json:"-"`

	// WelcomeMessage is the free text shown as the first reveal step.
	WelcomeMessage string `json:"welcome_message"`

	// Memories is the ordered media sequence. Order is semantically
	// significant: it defines the playback sequence of the slideshow.
	Memories []Memory `json:"memories"`

	// FinalMessage is the free text shown as the last reveal step.
	FinalMessage string `json:"final_message"`

	// CreatedAt is set once when the page is created and never changes.
	CreatedAt time.Time `json:"created_at"`

	// PageURL is the root-relative view path of the page (/view/{id}).
	PageURL string `json:"page_url"`
}

// TableName returns the name of the database table
// associated with the MemoryPage model.
func (p MemoryPage) TableName() string {
	return "memory_pages"
}

// RevealStepCount returns the total number of reveal steps for the page:
// the welcome message, one step per memory, and the final message.
func (p MemoryPage) RevealStepCount() int {
	return len(p.Memories) + 2
}

// PageViewURL builds the root-relative share path for a page id. The URL is
// derived from the id rather than stored, so it is reconstructed wherever a
// page is built or read back.
func PageViewURL(pageID string) string {
	return "/view/" + pageID
}
