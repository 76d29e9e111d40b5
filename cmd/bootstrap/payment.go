package bootstrap

import (
	"log/slog"

	"carhive/internal/pkg/clock"
	"carhive/internal/pkg/config"
	"carhive/internal/pkg/payment"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewPaymentAuthorizer,
	),
)

// NewPaymentAuthorizer selects the gateway by config. Anything other than
// "stripe" falls back to the simulated authorizer.
func NewPaymentAuthorizer(cfg config.Config, clk clock.Clock) payment.Authorizer {
	if cfg.Payment.Provider == "stripe" {
		if cfg.Payment.StripeAPIKey == "" {
			panic("PAYMENT_PROVIDER=stripe requires STRIPE_API_KEY")
		}
		slog.Info("payment authorizer initialized", "provider", "stripe")
		return payment.NewStripeGateway(cfg.Payment.StripeAPIKey)
	}

	slog.Info("payment authorizer initialized", "provider", "simulated")
	return payment.NewSimulated(clk)
}
