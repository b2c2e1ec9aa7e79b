package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/urfave/cli/v2"

	"github.com/eurofurence/paystakk/internal/config"
	"github.com/eurofurence/paystakk/internal/logging"
	"github.com/eurofurence/paystakk/internal/sandbox"
	"github.com/eurofurence/paystakk/internal/server"
	"github.com/eurofurence/paystakk/pkg/paystack"
)

const (
	flagConfig = "config"
	flagAPIURL = "api-url"
)

// the loaded configuration travels in the app metadata, set up in Before
const metadataConfig = "config"

func newApp() *cli.App {
	return &cli.App{
		Name:  "paystakk",
		Usage: "Talk to the Paystack api, or run a local sandbox of it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Usage:   "yaml configuration file, defaults apply when not given",
				EnvVars: []string{"PAYSTAKK_CONFIG"},
			},
			&cli.StringFlag{
				Name:    flagAPIURL,
				Usage:   "overrides paystack.api_base_url",
				EnvVars: []string{"PAYSTAKK_API_URL"},
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			balanceCommand(),
			customerCommand(),
			transactionCommand(),
			pageCommand(),
			sandboxCommand(),
		},
	}
}

func setup(c *cli.Context) error {
	conf := config.Default()
	if filename := c.String(flagConfig); filename != "" {
		var err error
		conf, err = config.LoadFile(filename)
		if err != nil {
			return err
		}
	}
	if apiURL := c.String(flagAPIURL); apiURL != "" {
		conf.Paystack.APIBaseURL = apiURL
	}

	if err := config.Validate(conf, logging.NoCtx().Error); err != nil {
		return err
	}
	if err := logging.Setup(conf.Logging.Severity, conf.Logging.Style); err != nil {
		return err
	}

	if conf.Paystack.Keys().SecretKey() == "" {
		aulogging.Logger.NoCtx().Warn().Printf("no secret key configured, set %s or paystack.secret_key", paystack.SecretKeyEnv)
	}

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[metadataConfig] = conf
	return nil
}

func configFrom(c *cli.Context) *config.Application {
	conf, ok := c.App.Metadata[metadataConfig].(*config.Application)
	if !ok {
		return config.Default()
	}
	return conf
}

// printResult writes the response as indented json and fails the command on status false.
func printResult(c *cli.Context, result paystack.Result, err error) error {
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(c.App.Writer)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(result); err != nil {
		return err
	}

	if !result.Status {
		return fmt.Errorf("request failed: %s", result.Message)
	}
	return nil
}

func balanceCommand() *cli.Command {
	return &cli.Command{
		Name:  "balance",
		Usage: "show the balances of the integration",
		Action: func(c *cli.Context) error {
			tc, err := paystack.NewTransferControl(configFrom(c).Paystack.Options())
			if err != nil {
				return err
			}
			result, err := tc.GetBalance(c.Context)
			return printResult(c, result, err)
		},
	}
}

func customerCommand() *cli.Command {
	return &cli.Command{
		Name:  "customer",
		Usage: "manage customers",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				ArgsUsage: "<email>",
				Usage:     "create a customer",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "first-name"},
					&cli.StringFlag{Name: "last-name"},
					&cli.StringFlag{Name: "phone"},
				},
				Action: func(c *cli.Context) error {
					customer, err := paystack.NewCustomer(configFrom(c).Paystack.Options())
					if err != nil {
						return err
					}
					result, err := customer.CreateCustomer(c.Context, paystack.CreateCustomerRequest{
						Email:     c.Args().First(),
						FirstName: c.String("first-name"),
						LastName:  c.String("last-name"),
						Phone:     c.String("phone"),
					})
					return printResult(c, result, err)
				},
			},
			{
				Name:      "fetch",
				ArgsUsage: "<email_or_code>",
				Usage:     "fetch a customer",
				Action: func(c *cli.Context) error {
					customer, err := paystack.NewCustomer(configFrom(c).Paystack.Options())
					if err != nil {
						return err
					}
					result, err := customer.FetchCustomer(c.Context, c.Args().First())
					return printResult(c, result, err)
				},
			},
		},
	}
}

func transactionCommand() *cli.Command {
	return &cli.Command{
		Name:  "transaction",
		Usage: "initialize and verify transactions",
		Subcommands: []*cli.Command{
			{
				Name:      "initialize",
				ArgsUsage: "<email> <amount>",
				Usage:     "start a checkout, amount in major units",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "reference"},
					&cli.StringFlag{Name: "currency"},
					&cli.StringFlag{Name: "callback-url"},
				},
				Action: func(c *cli.Context) error {
					amount, err := parseAmount(c.Args().Get(1))
					if err != nil {
						return err
					}
					transaction, err := paystack.NewTransaction(configFrom(c).Paystack.Options())
					if err != nil {
						return err
					}
					result, err := transaction.InitializeTransaction(c.Context, paystack.InitializeTransactionRequest{
						Email:       c.Args().First(),
						Amount:      amount,
						Reference:   c.String("reference"),
						Currency:    c.String("currency"),
						CallbackURL: c.String("callback-url"),
					})
					return printResult(c, result, err)
				},
			},
			{
				Name:      "verify",
				ArgsUsage: "<reference>",
				Usage:     "verify a transaction",
				Action: func(c *cli.Context) error {
					transaction, err := paystack.NewTransaction(configFrom(c).Paystack.Options())
					if err != nil {
						return err
					}
					result, err := transaction.VerifyTransaction(c.Context, c.Args().First())
					return printResult(c, result, err)
				},
			},
			{
				Name:  "list",
				Usage: "list transactions",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status"},
					&cli.StringFlag{Name: "customer"},
					&cli.IntFlag{Name: "page"},
					&cli.IntFlag{Name: "per-page"},
				},
				Action: func(c *cli.Context) error {
					transaction, err := paystack.NewTransaction(configFrom(c).Paystack.Options())
					if err != nil {
						return err
					}
					result, err := transaction.ListTransactions(c.Context, paystack.ListTransactionsRequest{
						Pagination: paystack.Pagination{PerPage: c.Int("per-page"), Page: c.Int("page")},
						Status:     c.String("status"),
						Customer:   c.String("customer"),
					})
					return printResult(c, result, err)
				},
			},
		},
	}
}

func pageCommand() *cli.Command {
	return &cli.Command{
		Name:  "page",
		Usage: "manage payment pages",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				ArgsUsage: "<name>",
				Usage:     "create a payment page and print its url",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "slug"},
					&cli.Float64Flag{Name: "amount", Usage: "fixed amount in major units"},
				},
				Action: func(c *cli.Context) error {
					page, err := paystack.NewPaymentPage(configFrom(c).Paystack.Options())
					if err != nil {
						return err
					}
					result, err := page.CreatePage(c.Context, paystack.CreatePageRequest{
						Name:        c.Args().First(),
						Description: c.String("description"),
						Slug:        c.String("slug"),
						Amount:      c.Float64("amount"),
					})
					if err := printResult(c, result, err); err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, page.PageURL())
					return err
				},
			},
		},
	}
}

func sandboxCommand() *cli.Command {
	return &cli.Command{
		Name:  "sandbox",
		Usage: "serve an in-memory imitation of the api, protected by the configured secret key",
		Action: func(c *cli.Context) error {
			conf := configFrom(c)

			ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer cancel()

			secretKey := conf.Paystack.Keys().SecretKey()
			if secretKey == "" {
				return errors.New("the sandbox needs a secret key to check requests against")
			}

			handler := sandbox.NewHandler(sandbox.NewStore(conf.Sandbox.CheckoutURL))
			srv := server.NewServer(ctx, &conf.Sandbox, server.CreateRouter(secretKey, handler))
			return server.Serve(ctx, srv)
		},
	}
}

func parseAmount(value string) (float64, error) {
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount '%s'", value)
	}
	return amount, nil
}
