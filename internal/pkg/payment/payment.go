package payment

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"carhive/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrAuthorizationDeclined = errors.New("payment authorization declined")

// AuthorizationRequest carries what a gateway needs to authorize a charge.
// Amount is in whole currency units.
type AuthorizationRequest struct {
	CarID       uuid.UUID
	UserID      uuid.UUID
	Amount      int64
	Currency    string
	Description string
}

// Authorization is the gateway's confirmation. TransactionRef is the opaque
// reference persisted on the booking.
type Authorization struct {
	TransactionRef string
}

// Authorizer sits between pricing and reservation in the booking flow. A real
// integration authorizes here and captures out of band; the simulated
// implementation always succeeds.
type Authorizer interface {
	Authorize(ctx context.Context, req AuthorizationRequest) (Authorization, error)
}

type Simulated struct {
	clock clock.Clock
}

func NewSimulated(clk clock.Clock) *Simulated {
	return &Simulated{clock: clk}
}

func (s *Simulated) Authorize(_ context.Context, _ AuthorizationRequest) (Authorization, error) {
	return Authorization{TransactionRef: "sim_" + s.referenceCode()}, nil
}

func (s *Simulated) referenceCode() string {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return fmt.Sprintf("%08X", s.clock.Now().UnixNano()%100000000)
	}
	return fmt.Sprintf("%08X", binary.BigEndian.Uint32(buf[:]))
}
