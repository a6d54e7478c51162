package dto

import (
	"net/mail"
	"strings"

	"github.com/hyeonlog/taskhub/internal/domain"
)

const (
	msgRequired = "is required"
	msgInvalid  = "is invalid"
)

// SignupRequest represents the JSON body for registering an account.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate checks that required fields are present and the email parses.
// Password policy and role parsing belong to the service layer.
func (r *SignupRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = msgRequired
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		fields["email"] = msgInvalid
	}
	if r.Password == "" {
		fields["password"] = msgRequired
	}
	if strings.TrimSpace(r.Role) == "" {
		fields["role"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SigninRequest represents the JSON body for signing in.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that required fields are present.
func (r *SigninRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = msgRequired
	}
	if r.Password == "" {
		fields["password"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateTodoRequest represents the JSON body for creating a todo.
type CreateTodoRequest struct {
	Title    string `json:"title"`
	Contents string `json:"contents"`
}

// Validate checks that required fields are present.
func (r *CreateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if strings.TrimSpace(r.Contents) == "" {
		fields["contents"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SaveManagerRequest represents the JSON body for assigning a manager.
type SaveManagerRequest struct {
	ManagerUserID int64 `json:"manager_user_id"`
}

// Validate checks that the manager user id is present.
func (r *SaveManagerRequest) Validate() error {
	if r.ManagerUserID <= 0 {
		return &domain.ValidationError{Fields: map[string]string{"manager_user_id": msgRequired}}
	}
	return nil
}

// SaveCommentRequest represents the JSON body for posting a comment.
// Contents must be present at the request boundary; the service layer
// itself accepts any string.
type SaveCommentRequest struct {
	Contents string `json:"contents"`
}

// Validate checks that contents are present.
func (r *SaveCommentRequest) Validate() error {
	if strings.TrimSpace(r.Contents) == "" {
		return &domain.ValidationError{Fields: map[string]string{"contents": msgRequired}}
	}
	return nil
}

// ChangePasswordRequest represents the JSON body for changing a password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Validate checks that both passwords are present.
func (r *ChangePasswordRequest) Validate() error {
	fields := make(map[string]string)

	if r.OldPassword == "" {
		fields["old_password"] = msgRequired
	}
	if r.NewPassword == "" {
		fields["new_password"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ChangeRoleRequest represents the JSON body for changing an account role.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// Validate checks that the role is present.
func (r *ChangeRoleRequest) Validate() error {
	if strings.TrimSpace(r.Role) == "" {
		return &domain.ValidationError{Fields: map[string]string{"role": msgRequired}}
	}
	return nil
}
