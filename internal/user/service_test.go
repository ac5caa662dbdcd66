package user

import (
	"strings"
	"testing"
)

func TestRegister_HashesPasswordAndStripsAdmin(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	created, err := svc.Register(User{Email: "a@b.c", Password: "hunter22", FirstName: "A", IsAdmin: true})
	if err != nil {
		t.Fatal(err)
	}
	if created.Password == "hunter22" {
		t.Fatal("password stored in plain text")
	}
	if !strings.HasPrefix(created.Password, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", created.Password)
	}
	// signup can never mint an admin
	if created.IsAdmin {
		t.Fatal("expected IsAdmin to be forced off")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	if _, err := svc.Register(User{Email: "a@b.c", Password: "x", FirstName: "A"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register(User{Email: "a@b.c", Password: "y", FirstName: "B"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	if _, err := svc.Register(User{Email: "a@b.c", Password: "hunter22", FirstName: "A"}); err != nil {
		t.Fatal(err)
	}

	u, err := svc.Authenticate("a@b.c", "hunter22")
	if err != nil {
		t.Fatal(err)
	}
	if u.Email != "a@b.c" {
		t.Fatalf("unexpected user %+v", u)
	}

	if _, err := svc.Authenticate("a@b.c", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@b.c", "hunter22"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
