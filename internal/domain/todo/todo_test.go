package todo

import (
	"errors"
	"testing"

	"github.com/hyeonlog/taskhub/internal/domain"
)

func TestTodoValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		todo       Todo
		wantFields []string
	}{
		{
			name: "valid todo passes",
			todo: Todo{Title: "Title", Contents: "Contents", Weather: "Sunny"},
		},
		{
			name:       "missing title",
			todo:       Todo{Contents: "Contents"},
			wantFields: []string{"title"},
		},
		{
			name:       "missing contents",
			todo:       Todo{Title: "Title"},
			wantFields: []string{"contents"},
		},
		{
			name:       "whitespace only",
			todo:       Todo{Title: "  ", Contents: "\t"},
			wantFields: []string{"title", "contents"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.todo.Validate()

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Validate() = %v, want ErrValidation", err)
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error is not a *ValidationError: %v", err)
			}
			for _, field := range tt.wantFields {
				if _, ok := verr.Fields[field]; !ok {
					t.Errorf("Validate() missing field error for %q; got %v", field, verr.Fields)
				}
			}
		})
	}
}
