package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ad402/payverify/internal/payverify"

	"github.com/urfave/cli/v3"
)

// ErrPaymentRejected is returned by the verify command when the transaction
// is not the expected payment.
var ErrPaymentRejected = errors.New("payment rejected")

// verifyCommand returns a CLI command that verifies one payment and prints
// the result as JSON.
//
// Usage example:
//
//	payverify verify --network mantle --tx 0x88df... --amount 0.25 --recipient 0x8ba1... --payer 0x742d...
func verifyCommand(verifier payverify.Service) *cli.Command {
	return &cli.Command{
		Name:        "verify",
		Description: "Checks a transaction against the expected amount, payer and recipient.",
		Usage:       "Verifies a payment transaction. Exits with an error when the payment is rejected.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "network",
				Usage:    "Network name (e.g., mantle, mantle-sepolia)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "tx",
				Usage:    "Transaction hash",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "Expected amount in human units (e.g., 0.25)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "recipient",
				Usage:    "Expected recipient address",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "payer",
				Usage:    "Expected payer address",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "rail",
				Usage: "Payment rail (native or token); defaults to the network's rail",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			result, err := verifier.Verify(ctx, payverify.Request{
				TransactionHash:   c.String("tx"),
				Network:           c.String("network"),
				ExpectedAmount:    c.String("amount"),
				ExpectedRecipient: c.String("recipient"),
				ExpectedPayer:     c.String("payer"),
				Rail:              payverify.Rail(c.String("rail")),
			})
			if err != nil {
				return err
			}

			if err := printJSON(c.Root().Writer, result); err != nil {
				return err
			}

			if !result.Verified {
				return fmt.Errorf("%w: %s", ErrPaymentRejected, result.Error)
			}
			return nil
		},
	}
}

type confirmationsOutput struct {
	Network          string `json:"network"`
	TransactionHash  string `json:"transactionHash"`
	Confirmations    uint64 `json:"confirmations"`
	MinConfirmations uint64 `json:"minConfirmations"`
	Confirmed        bool   `json:"confirmed"`
}

// confirmationsCommand returns a CLI command that prints how many blocks were
// mined on top of a transaction.
//
// Usage example:
//
//	payverify confirmations --network mantle --tx 0x88df... --min 12
func confirmationsCommand(verifier payverify.Service) *cli.Command {
	return &cli.Command{
		Name:        "confirmations",
		Description: "Reports the confirmation depth of a transaction.",
		Usage:       "Prints the number of confirmations and whether the minimum is reached.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "network",
				Usage:    "Network name (e.g., mantle, mantle-sepolia)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "tx",
				Usage:    "Transaction hash",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:  "min",
				Usage: "Minimum confirmations",
				Value: payverify.DefaultMinConfirmations,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				network          = c.String("network")
				hash             = c.String("tx")
				minConfirmations = c.Uint64("min")
			)

			if minConfirmations == 0 {
				minConfirmations = payverify.DefaultMinConfirmations
			}

			confirmations, err := verifier.Confirmations(ctx, hash, network)
			if err != nil {
				return err
			}

			return printJSON(c.Root().Writer, confirmationsOutput{
				Network:          network,
				TransactionHash:  hash,
				Confirmations:    confirmations,
				MinConfirmations: minConfirmations,
				Confirmed:        confirmations >= minConfirmations,
			})
		},
	}
}

// networksCommand returns a CLI command that lists the supported networks.
//
// Usage example:
//
//	payverify networks
func networksCommand(verifier payverify.Service) *cli.Command {
	return &cli.Command{
		Name:        "networks",
		Description: "Lists the networks payments can be verified on.",
		Usage:       "Prints the supported networks as JSON.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return printJSON(c.Root().Writer, verifier.Networks())
		},
	}
}
