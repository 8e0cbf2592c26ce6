package services

import (
	"errors"
	"testing"
	"time"
)

func TestSubscriptionActivateAndVerify(t *testing.T) {
	svc := NewSubscriptionService("test-secret")
	now := time.Now()

	for _, plan := range []string{PlanMonthly, PlanYearly} {
		t.Run(plan, func(t *testing.T) {
			token, ent, err := svc.Activate(plan, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ent.Plan != plan || !ent.ExpiresAt.After(now) {
				t.Fatalf("entitlement = %#v", ent)
			}

			got, err := svc.Verify(token)
			if err != nil {
				t.Fatalf("verify failed: %v", err)
			}
			if got.Plan != plan {
				t.Fatalf("verified plan = %q, want %q", got.Plan, plan)
			}
		})
	}
}

func TestSubscriptionUnknownPlan(t *testing.T) {
	svc := NewSubscriptionService("test-secret")
	if _, _, err := svc.Activate("lifetime", time.Now()); err == nil {
		t.Fatal("expected an error for an unknown plan")
	}
}

func TestSubscriptionExpiredToken(t *testing.T) {
	svc := NewSubscriptionService("test-secret")

	token, _, err := svc.Activate(PlanMonthly, time.Now().Add(-60*24*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidEntitlement) {
		t.Fatalf("expected ErrInvalidEntitlement, got %v", err)
	}
}

func TestSubscriptionWrongSecret(t *testing.T) {
	token, _, err := NewSubscriptionService("secret-a").Activate(PlanMonthly, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewSubscriptionService("secret-b").Verify(token); !errors.Is(err, ErrInvalidEntitlement) {
		t.Fatalf("expected ErrInvalidEntitlement, got %v", err)
	}
}

func TestSubscriptionGarbageToken(t *testing.T) {
	svc := NewSubscriptionService("test-secret")
	if _, err := svc.Verify("not.a.token"); !errors.Is(err, ErrInvalidEntitlement) {
		t.Fatalf("expected ErrInvalidEntitlement, got %v", err)
	}
}
