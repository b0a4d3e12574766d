package notetool

// Fixed messages for the notifications emitted by the Controller.
const (
	TitleSuccess = "Success"
	TitleError   = "Error"

	MsgRequired     = "Title and text are required"
	MsgLoadFailed   = "Failed to load notes"
	MsgCreateFailed = "Failed to create note"
	MsgUpdateFailed = "Failed to update note"
	MsgDeleteFailed = "Failed to delete note"
	MsgCreated      = "Note created"
	MsgUpdated      = "Note updated"
	MsgDeleted      = "Note deleted"

	PromptDelete = "Delete this note?"
)

// Kind distinguishes success messages from failures.
type Kind int

const (
	Success Kind = iota
	Failure
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "UNKNOWN"
	}
}

// Notification is a short, transient message for the user.
type Notification struct {
	Kind    Kind
	Title   string
	Message string
}

func (n Notification) String() string {
	return n.Title + ": " + n.Message
}

// Notifier presents notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// Confirmer asks the user a yes/no question and blocks until it is answered.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(string) (bool, error)

func (f ConfirmerFunc) Confirm(prompt string) (bool, error) {
	return f(prompt)
}

// AlwaysConfirm answers every question with "yes".
var AlwaysConfirm = ConfirmerFunc(func(string) (bool, error) {
	return true, nil
})

func succeeded(msg string) Notification {
	return Notification{Kind: Success, Title: TitleSuccess, Message: msg}
}

func failed(msg string) Notification {
	return Notification{Kind: Failure, Title: TitleError, Message: msg}
}
