package payment

import (
	"context"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// StripeGateway authorizes through Stripe PaymentIntents. Amounts are
// converted from whole currency units to the minor unit Stripe expects.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(apiKey string) *StripeGateway {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) Authorize(ctx context.Context, req AuthorizationRequest) (Authorization, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:        stripe.Int64(req.Amount * 100),
		Currency:      stripe.String(req.Currency),
		Description:   stripe.String(req.Description),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
	}
	params.AddMetadata("car_id", req.CarID.String())
	params.AddMetadata("user_id", req.UserID.String())

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return Authorization{}, ErrAuthorizationDeclined
	}

	return Authorization{TransactionRef: intent.ID}, nil
}
