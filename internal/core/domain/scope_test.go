package domain

import (
	"errors"
	"testing"
)

func TestAdminManaged(t *testing.T) {
	policy := AdminManaged(RoleUser)

	cases := []struct {
		name    string
		actor   *Actor
		action  Action
		wantErr error
	}{
		{"admin create", &Actor{ID: "a1", Role: RoleAdmin}, ActionCreate, nil},
		{"admin delete", &Actor{ID: "a1", Role: RoleAdmin}, ActionDelete, nil},
		{"reader list", &Actor{ID: "u1", Role: RoleUser}, ActionList, nil},
		{"reader create", &Actor{ID: "u1", Role: RoleUser}, ActionCreate, ErrForbidden},
		{"reader delete", &Actor{ID: "u1", Role: RoleUser}, ActionDelete, ErrForbidden},
		{"zone list", &Actor{ID: "z1", Role: RoleZone}, ActionList, ErrForbidden},
		{"nil actor", nil, ActionList, ErrUnauthorized},
	}

	for _, tc := range cases {
		scope, err := policy(tc.actor, tc.action)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
			continue
		}
		if err == nil && scope.Restricted() {
			t.Errorf("%s: expected unrestricted scope, got %+v", tc.name, scope)
		}
	}
}

func TestOwnerScoped_OwnerGetsOwnRecordsOnly(t *testing.T) {
	policy := OwnerScoped(RoleZone)

	for _, action := range []Action{ActionCreate, ActionList, ActionDelete} {
		scope, err := policy(&Actor{ID: "zone_a", Role: RoleZone}, action)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", action, err)
		}
		if !scope.Restricted() || scope.OwnerID != "zone_a" {
			t.Errorf("%s: expected scope owned by zone_a, got %+v", action, scope)
		}
	}
}

func TestOwnerScoped_Admin(t *testing.T) {
	policy := OwnerScoped(RoleZone)
	admin := &Actor{ID: "a1", Role: RoleAdmin}

	if _, err := policy(admin, ActionCreate); !errors.Is(err, ErrForbidden) {
		t.Errorf("admin create: expected ErrForbidden, got %v", err)
	}
	scope, err := policy(admin, ActionList)
	if err != nil || scope.Restricted() {
		t.Errorf("admin list: expected unrestricted scope, got %+v, %v", scope, err)
	}
}

func TestOwnerScoped_OtherRolesForbidden(t *testing.T) {
	policy := OwnerScoped(RoleZone)

	if _, err := policy(&Actor{ID: "u1", Role: RoleUser}, ActionList); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if _, err := policy(&Actor{Role: RoleZone}, ActionList); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("zone without id: expected ErrUnauthorized, got %v", err)
	}
}

func TestZoneStatus_CanSignIn(t *testing.T) {
	allowed := map[ZoneStatus]bool{
		ZoneStatusActive:   true,
		ZoneStatusAccepted: true,
		ZoneStatusPending:  false,
		ZoneStatusRejected: false,
		ZoneStatusInactive: false,
	}
	for status, want := range allowed {
		if got := status.CanSignIn(); got != want {
			t.Errorf("%s: expected %v, got %v", status, want, got)
		}
	}
}
