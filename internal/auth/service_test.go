package auth

import "testing"

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryStaffRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test Coordinator", "staff@example.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	staff := repo.staff["staff@example.com"]
	if staff == nil {
		t.Fatalf("staff account not found")
	}

	if staff.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := NewInMemoryStaffRepository()
	service := NewService(repo)

	if _, err := service.Register("A", "dup@example.com", "secret123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Register("B", "dup@example.com", "secret456"); err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}
}

func TestLogin(t *testing.T) {
	repo := NewInMemoryStaffRepository()
	service := NewService(repo)

	if _, err := service.Register("Owner", "owner@example.com", "secret123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Login("owner@example.com", "secret123"); err != nil {
		t.Fatalf("login should succeed: %v", err)
	}
	if _, err := service.Login("owner@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Login("nobody@example.com", "secret123"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
