package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Subscription plans. Activation is mocked: there is no payment processor,
// activating a plan always succeeds and mints a local entitlement token.
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

var ErrInvalidEntitlement = errors.New("invalid or expired entitlement")

// Entitlement describes an active (mock) subscription.
type Entitlement struct {
	Plan      string    `json:"plan"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SubscriptionService struct {
	secret []byte
}

func NewSubscriptionService(secret string) *SubscriptionService {
	return &SubscriptionService{secret: []byte(secret)}
}

func planDuration(plan string) (time.Duration, error) {
	switch plan {
	case PlanMonthly:
		return 30 * 24 * time.Hour, nil
	case PlanYearly:
		return 365 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown plan %q", plan)
	}
}

// Activate mints an HS256 entitlement token for the given plan.
func (s *SubscriptionService) Activate(plan string, now time.Time) (string, *Entitlement, error) {
	d, err := planDuration(plan)
	if err != nil {
		return "", nil, err
	}

	expiresAt := now.Add(d)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"plan": plan,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign entitlement: %w", err)
	}
	return signed, &Entitlement{Plan: plan, ExpiresAt: expiresAt}, nil
}

// Verify parses an entitlement token and returns the active entitlement.
func (s *SubscriptionService) Verify(tokenString string) (*Entitlement, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidEntitlement
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidEntitlement
	}
	plan, _ := claims["plan"].(string)
	if plan == "" {
		return nil, ErrInvalidEntitlement
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidEntitlement
	}
	return &Entitlement{Plan: plan, ExpiresAt: exp.Time}, nil
}
