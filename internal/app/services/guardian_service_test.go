package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/pkg/auth"
)

func TestGuardianRegister(t *testing.T) {
	store := newFakeGuardianStore()
	svc := NewGuardianService(store)

	req := &dto.RegisterGuardianRequest{
		Title:    "Mrs",
		Name:     "Ade",
		Email:    "ade@example.com",
		Gender:   "female",
		Address:  "12 School Road",
		MobileNo: "08030000000",
		Password: "password123",
		Children: []string{"STU24001", "STU24002"},
	}
	guardian, err := svc.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !auth.CheckPassword(guardian.Password, req.Password) {
		t.Error("stored hash does not verify against the password")
	}
	if got := store.children[guardian.ID]; !reflect.DeepEqual(got, req.Children) {
		t.Errorf("children = %v, want %v", got, req.Children)
	}
}

func TestGuardianDelete(t *testing.T) {
	store := newFakeGuardianStore()
	svc := NewGuardianService(store)

	if err := svc.Delete(context.Background(), 4); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != 4 {
		t.Errorf("deleted = %v, want [4]", store.deleted)
	}
}
