package service

import (
	"context"
	"errors"
	"testing"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	factory := newFakeFactory()
	svc := NewAuthService(factory, nil, nopLogger{})

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alex@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	token, err := jwt.Parse(login.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["user_id"] != reg.Id.String() {
		t.Errorf("user_id claim = %v, want %s", claims["user_id"], reg.Id)
	}
	if claims["username"] != "alex" || claims["email"] != "alex@example.com" {
		t.Errorf("identity claims = %v / %v", claims["username"], claims["email"])
	}

	if factory.store.users[0].PasswordHash == "correct horse" {
		t.Error("password stored in plain text")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	factory := newFakeFactory()
	svc := NewAuthService(factory, nil, nopLogger{})

	req := &dto.RegisterRequest{Username: "alex", Email: "alex@example.com", Password: "correct horse"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, err := svc.Register(context.Background(), req)

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindBadRequest {
		t.Errorf("err = %v, want bad request for duplicate email", err)
	}
	if len(factory.store.users) != 1 {
		t.Errorf("store has %d users, want 1", len(factory.store.users))
	}
}

func TestLoginWrongPassword(t *testing.T) {
	factory := newFakeFactory()
	svc := NewAuthService(factory, nil, nopLogger{})

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "correct horse",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alex@example.com",
		Password: "wrong horse",
	})

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindUnauthorized {
		t.Errorf("err = %v, want unauthorized", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	factory := newFakeFactory()
	svc := NewAuthService(factory, nil, nopLogger{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindUnauthorized {
		t.Errorf("err = %v, want unauthorized for unknown email", err)
	}
}

func TestMe(t *testing.T) {
	factory := newFakeFactory()
	svc := NewAuthService(factory, nil, nopLogger{})

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	me, err := svc.Me(context.Background(), reg.Id)
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if me.Username != "alex" || me.Email != "alex@example.com" {
		t.Errorf("Me() = %+v", me)
	}

	if _, err := svc.Me(context.Background(), uuid.New()); err == nil {
		t.Error("Me() with unknown id should fail")
	}
}
