package html

import "html/template"

// Page view models. Every page shares Title and SSE (whether the layout
// should load the htmx SSE extension script).

// IndexPage lists the available demos.
type IndexPage struct {
	Title string
	SSE   bool
}

// TasksPage is the index of the polling and SSE background task demos.
type TasksPage struct {
	Title string
	SSE   bool
	Items []template.HTML
}

// LotteryPage hosts the open-ended SSE cadence demo.
type LotteryPage struct {
	Title string
	SSE   bool
}

// ContactView is a stored contact rendered in the contacts table.
type ContactView struct {
	Sequence int
	Name     string
	Email    string
	Message  string
}

// ContactsPage is the contact form demo with previously saved entries.
type ContactsPage struct {
	Title    string
	SSE      bool
	Contacts []ContactView
}

// ItemsPage is the minimal database list demo.
type ItemsPage struct {
	Title string
	SSE   bool
	Items []template.HTML
}

// DocumentView is a loaded document's editable state.
type DocumentView struct {
	ID      string
	Title   string
	Content template.HTML
}

// DocumentsPage is the TipTap editor demo with the saved document list.
// Doc is non-nil when an existing document is loaded into the editor.
type DocumentsPage struct {
	Title string
	SSE   bool
	Rows  []template.HTML
	Doc   *DocumentView
}

// AuthPage is the GitHub sign-in demo.
type AuthPage struct {
	Title     string
	SSE       bool
	SignedIn  bool
	UserLogin string
	UserEmail string
}
