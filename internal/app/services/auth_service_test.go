package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/pkg/apperrors"
	"github.com/olamide/gradekeeper/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "gradekeeper-test",
	})
}

func TestRoleForUsername(t *testing.T) {
	tests := []struct {
		username string
		want     models.Role
	}{
		{"ADM001", models.RoleAdmin},
		{"STU24015", models.RoleStudent},
		{"TCH24003", models.RoleTeacher},
		{"parent@example.com", models.RoleGuardian},
		{"stu24015", models.RoleGuardian}, // prefixes are case-sensitive
		{"", models.RoleGuardian},
	}
	for _, tc := range tests {
		if got := RoleForUsername(tc.username); got != tc.want {
			t.Errorf("RoleForUsername(%q) = %q, want %q", tc.username, got, tc.want)
		}
	}
}

func TestSignIn(t *testing.T) {
	hash, err := auth.HashPassword("s3cretpass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	student := &models.Student{
		ID:           7,
		FirstName:    "Jane",
		LastName:     "Doe",
		StudentID:    "STU24007",
		StudentClass: "JSS1",
		Password:     hash,
	}
	svc := NewAuthService(newFakePrincipalStore(student), testJWTService())

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.SignIn(context.Background(), &dto.SignInRequest{
			Username: "STU24007",
			Password: "s3cretpass",
		})
		if err != nil {
			t.Fatalf("SignIn: %v", err)
		}
		if resp.AccessToken == "" {
			t.Error("expected a non-empty access token")
		}
		if resp.TokenType != "bearer" {
			t.Errorf("token type = %q, want bearer", resp.TokenType)
		}
		if resp.Role != models.RoleStudent {
			t.Errorf("role = %q, want student", resp.Role)
		}
		if resp.Name != "Doe Jane" {
			t.Errorf("name = %q, want %q", resp.Name, "Doe Jane")
		}
		if resp.ID != "STU24007" {
			t.Errorf("id = %q, want STU24007", resp.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.SignIn(context.Background(), &dto.SignInRequest{
			Username: "STU24007",
			Password: "wrongpass",
		})
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.SignIn(context.Background(), &dto.SignInRequest{
			Username: "STU24999",
			Password: "s3cretpass",
		})
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("guardian signs in by email", func(t *testing.T) {
		guardian := &models.Guardian{ID: 3, Name: "Mrs Ade", Email: "ade@example.com", Password: hash}
		svc := NewAuthService(newFakePrincipalStore(guardian), testJWTService())

		resp, err := svc.SignIn(context.Background(), &dto.SignInRequest{
			Username: "ade@example.com",
			Password: "s3cretpass",
		})
		if err != nil {
			t.Fatalf("SignIn: %v", err)
		}
		if resp.Role != models.RoleGuardian {
			t.Errorf("role = %q, want parent", resp.Role)
		}
	})
}

func TestChangePassword(t *testing.T) {
	hash, err := auth.HashPassword("oldpassword")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	teacher := &models.Teacher{ID: 4, Name: "Mr Bello", TeacherID: "TCH24004", Password: hash}

	t.Run("wrong old password", func(t *testing.T) {
		store := newFakePrincipalStore(teacher)
		svc := NewAuthService(store, testJWTService())

		err := svc.ChangePassword(context.Background(), teacher, &dto.ChangePasswordRequest{
			OldPassword:     "notit",
			NewPassword:     "newpassword",
			ConfirmPassword: "newpassword",
		})
		if !errors.Is(err, apperrors.ErrIncorrectPassword) {
			t.Errorf("err = %v, want ErrIncorrectPassword", err)
		}
		if len(store.updated) != 0 {
			t.Error("password must not be updated on failure")
		}
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		store := newFakePrincipalStore(teacher)
		svc := NewAuthService(store, testJWTService())

		err := svc.ChangePassword(context.Background(), teacher, &dto.ChangePasswordRequest{
			OldPassword:     "oldpassword",
			NewPassword:     "newpassword",
			ConfirmPassword: "differently",
		})
		if !errors.Is(err, apperrors.ErrPasswordMismatch) {
			t.Errorf("err = %v, want ErrPasswordMismatch", err)
		}
		if len(store.updated) != 0 {
			t.Error("password must not be updated on failure")
		}
	})

	t.Run("success stores a fresh hash", func(t *testing.T) {
		store := newFakePrincipalStore(teacher)
		svc := NewAuthService(store, testJWTService())

		err := svc.ChangePassword(context.Background(), teacher, &dto.ChangePasswordRequest{
			OldPassword:     "oldpassword",
			NewPassword:     "newpassword",
			ConfirmPassword: "newpassword",
		})
		if err != nil {
			t.Fatalf("ChangePassword: %v", err)
		}
		newHash, ok := store.updated[fmt.Sprintf("%s/%d", models.RoleTeacher, teacher.ID)]
		if !ok {
			t.Fatal("expected an updated hash for the teacher")
		}
		if !auth.CheckPassword(newHash, "newpassword") {
			t.Error("stored hash does not verify against the new password")
		}
	})
}
