package usecase

import (
	"context"
	"strings"
	"testing"

	"novacart-support/internal/auth"
	"novacart-support/internal/auth/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockRepo struct {
	user      auth.User
	createErr error
	getErr    error
	created   *repository.CreateUserOptions
}

func (m *mockRepo) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (auth.User, error) {
	if m.createErr != nil {
		return auth.User{}, m.createErr
	}
	m.created = &opt
	return auth.User{UserID: opt.UserID, Username: opt.Username, Password: opt.Password}, nil
}

func (m *mockRepo) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (auth.User, error) {
	if m.getErr != nil {
		return auth.User{}, m.getErr
	}
	return m.user, nil
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a user_ id", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, repo)

		out, err := uc.Signup(ctx, auth.CredentialsInput{Username: "alice", Password: "secret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out.UserID, "user_") || len(out.UserID) != 11 {
			t.Errorf("user ID = %q", out.UserID)
		}
		if repo.created == nil || repo.created.Username != "alice" {
			t.Errorf("created = %+v", repo.created)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepo{createErr: repository.ErrDuplicateUser})

		if _, err := uc.Signup(ctx, auth.CredentialsInput{Username: "alice", Password: "x"}); err != auth.ErrUsernameExists {
			t.Errorf("err = %v, want ErrUsernameExists", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	stored := auth.User{UserID: "user_ab12cd", Username: "alice", Password: "secret"}

	t.Run("valid credentials", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepo{user: stored})

		out, err := uc.Login(ctx, auth.CredentialsInput{Username: "alice", Password: "secret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.UserID != "user_ab12cd" {
			t.Errorf("user ID = %q", out.UserID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepo{user: stored})

		if _, err := uc.Login(ctx, auth.CredentialsInput{Username: "alice", Password: "nope"}); err != auth.ErrInvalidCredentials {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepo{})

		if _, err := uc.Login(ctx, auth.CredentialsInput{Username: "bob", Password: "x"}); err != auth.ErrInvalidCredentials {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}
