package domain

// LoginState tracks where a user is in the login conversation.
type LoginState int

const (
	LoginIdle LoginState = iota
	LoginAwaitEmail
	LoginAwaitPassword
)

// PostState tracks where a user is in the post-creation conversation.
type PostState int

const (
	PostIdle PostState = iota
	PostAwaitTitle
	PostAwaitDescription
	PostAwaitDate
)

// Scratch holds conversation-local answers for the currently running flow.
// It is cleared whenever a flow ends, whatever the outcome.
type Scratch struct {
	Email       string   `json:"email,omitempty"`
	OwnerID     string   `json:"owner_id,omitempty"`
	StoragePath string   `json:"storage_path,omitempty"`
	PublicURL   string   `json:"public_url,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	EventDate   string   `json:"event_date,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	StubImage   []byte   `json:"stub_image,omitempty"`
}

// Session is the per-user conversation state. OwnerID is the opaque
// identifier returned by the auth backend; empty means unauthenticated.
type Session struct {
	OwnerID string     `json:"owner_id,omitempty"`
	Login   LoginState `json:"login_state"`
	Post    PostState  `json:"post_state"`
	Scratch Scratch    `json:"scratch"`
}

func (s *Session) Authenticated() bool {
	return s.OwnerID != ""
}

// EndLogin terminates the login flow and clears scratch.
func (s *Session) EndLogin() {
	s.Login = LoginIdle
	s.Scratch = Scratch{}
}

// EndPost terminates the post-creation flow and clears scratch.
func (s *Session) EndPost() {
	s.Post = PostIdle
	s.Scratch = Scratch{}
}

func (s *Session) InLoginFlow() bool {
	return s.Login != LoginIdle
}

func (s *Session) InPostFlow() bool {
	return s.Post != PostIdle
}
