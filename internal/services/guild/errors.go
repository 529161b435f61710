package guild

// GuildError is a custom error type for guild resource errors
type GuildError string

// Error implements the error interface
func (e GuildError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     GuildError = "config cannot be nil"
	ErrNilRepository GuildError = "guild repository cannot be nil"
	ErrNilInput      GuildError = "input cannot be nil"
	ErrEmptyName     GuildError = "name cannot be empty"
	ErrEmptyUserID   GuildError = "user ID cannot be empty"
	ErrRoleNotFound  GuildError = "course role not found"
)
