// widgetdemo drives the purchase protection widget from the command line.
//
// Usage:
//
//	widgetdemo serve-fake --port 8081 --api-key demo
//	widgetdemo quote --currency USD --amount 49.95 --amount 12 --choose out
//	widgetdemo preference show
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/MarcGrol/wfpwidget/lib/myconfig"
	"github.com/MarcGrol/wfpwidget/lib/myhttpclient"
	"github.com/MarcGrol/wfpwidget/lib/mylog"
	"github.com/MarcGrol/wfpwidget/lib/mystore"
	"github.com/MarcGrol/wfpwidget/lib/mytime"
	"github.com/MarcGrol/wfpwidget/lib/myuuid"
	"github.com/MarcGrol/wfpwidget/services/fakequote"
	"github.com/MarcGrol/wfpwidget/services/prefstore"
	"github.com/MarcGrol/wfpwidget/services/quote"
	"github.com/MarcGrol/wfpwidget/services/quoteclient"
	"github.com/MarcGrol/wfpwidget/services/widget"
)

func main() {
	app := &cli.App{
		Name:  "widgetdemo",
		Usage: "Fetch purchase protection quotes and record the shopper's choice",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a yaml config file (WFP_* environment variables override it)",
			},
		},
		Commands: []*cli.Command{
			serveFakeCommand(),
			quoteCommand(),
			preferenceCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(cCtx *cli.Context) (myconfig.Config, error) {
	cfg, err := myconfig.Load(cCtx.String("config"))
	if err != nil {
		return myconfig.Config{}, err
	}
	mylog.SetLevel(cfg.Log.Level)
	return cfg, nil
}

func serveFakeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve-fake",
		Usage: "Run an in-memory quote service to point the widget at",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Value:   "8080",
				EnvVars: []string{"PORT"},
			},
			&cli.StringFlag{
				Name:  "api-key",
				Usage: "Only accept this api key (any non-empty key when omitted)",
			},
			&cli.DurationFlag{
				Name:  "latency",
				Usage: "Delay every quote by this duration",
			},
			&cli.StringFlag{
				Name:  "rate",
				Value: "0.02",
				Usage: "Price as a fraction of the cart subtotal",
			},
		},
		Action: runServeFake,
	}
}

func runServeFake(cCtx *cli.Context) error {
	c := cCtx.Context

	rules := fakequote.DefaultRules()
	rules.Latency = cCtx.Duration("latency")
	rate, err := decimal.NewFromString(cCtx.String("rate"))
	if err != nil {
		return fmt.Errorf("invalid rate '%s': %w", cCtx.String("rate"), err)
	}
	rules.Rate = rate

	quoteStore, quoteCleanup, err := mystore.NewInMemoryStore[quote.QuoteResponse](c)
	if err != nil {
		return err
	}
	defer quoteCleanup()

	eventStore, eventCleanup, err := mystore.NewInMemoryStore[quote.Event](c)
	if err != nil {
		return err
	}
	defer eventCleanup()

	router := mux.NewRouter()
	service := fakequote.NewService(quoteStore, eventStore, mytime.RealNower{}, myuuid.RealUUIDer{}, rules, cCtx.String("api-key"))
	err = service.RegisterEndpoints(c, router)
	if err != nil {
		return err
	}

	return startWebServerBlocking(cCtx.String("port"), router)
}

func startWebServerBlocking(port string, router *mux.Router) error {
	log.Printf("Starting fake quote service on port %s (try http://localhost:%s%s)", port, port, quoteclient.QuotesPath)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		return fmt.Errorf("error starting webserver on port %s: %w", port, err)
	}
	return nil
}

func quoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "Request a quote through the widget and print the resulting state",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "cart",
				Usage: "Path to a quote request in JSON; overrides --currency and --amount",
			},
			&cli.StringFlag{
				Name:  "currency",
				Value: "USD",
			},
			&cli.StringSliceFlag{
				Name:  "amount",
				Usage: "Final price of a line item, repeat for more items",
				Value: cli.NewStringSlice("49.95"),
			},
			&cli.StringFlag{
				Name:  "domain",
				Usage: "Region of the legal texts: US or EU",
			},
			&cli.BoolFlag{
				Name:  "default-opted-in",
				Usage: "Start out opted in before any quote arrives",
			},
			&cli.StringFlag{
				Name:  "choose",
				Usage: "Simulate the shopper choosing 'in' or 'out' once the quote is shown",
			},
			&cli.DurationFlag{
				Name:  "wait",
				Value: 15 * time.Second,
				Usage: "Give up waiting for the quote after this duration",
			},
		},
		Action: runQuote,
	}
}

func runQuote(cCtx *cli.Context) error {
	c := cCtx.Context

	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	req, err := composeRequest(cCtx)
	if err != nil {
		return err
	}

	prefs, cleanup, err := openPreferences(c, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	client := quoteclient.New(cfg, myhttpclient.New(cfg.RequestTimeout, mylog.New("http")), mytime.RealNower{}, myuuid.RealUUIDer{}, mylog.New("quoteclient"))

	done := make(chan widget.State, 1)
	w := widget.New(client, prefs, mytime.RealNower{}, mylog.New("widget"), cfg, widget.Options{
		Domain:         widget.Domain(cCtx.String("domain")),
		DefaultOptedIn: cCtx.Bool("default-opted-in"),
		Events:         client,
		OnChangeValue: func(v widget.Value) {
			log.Printf("Opted in: %v", v.OptedIn)
		},
		OnStateChange: func(s widget.State) {
			if s.Status == widget.LoadingStatusSuccess || s.Status == widget.LoadingStatusFailed {
				select {
				case done <- s:
				default:
				}
			}
		},
	})
	defer w.Close()

	w.Setup(req)

	var state widget.State
	select {
	case state = <-done:
	case <-time.After(cCtx.Duration("wait")):
		w.Cancel()
		return fmt.Errorf("no quote within %s", cCtx.Duration("wait"))
	}

	switch cCtx.String("choose") {
	case "":
	case "in":
		w.OnChangeOptedIn(true)
	case "out":
		w.OnChangeOptedIn(false)
	default:
		return fmt.Errorf("invalid choice '%s', use 'in' or 'out'", cCtx.String("choose"))
	}
	w.Close()
	if cCtx.String("choose") != "" {
		state = w.State()
	}

	return printJSON(state)
}

func composeRequest(cCtx *cli.Context) (quote.QuoteRequest, error) {
	if path := cCtx.String("cart"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return quote.QuoteRequest{}, fmt.Errorf("error reading cart %s: %w", path, err)
		}
		req := quote.QuoteRequest{}
		err = json.Unmarshal(data, &req)
		if err != nil {
			return quote.QuoteRequest{}, fmt.Errorf("error parsing cart %s: %w", path, err)
		}
		return req, nil
	}

	uuider := myuuid.RealUUIDer{}
	req := quote.QuoteRequest{
		SessionID:       uuider.Create(),
		CartID:          uuider.Create(),
		Type:            "seel-worry-free-purchase",
		DeviceCategory:  "desktop",
		DevicePlatform:  "cli",
		ShippingAddress: quote.Address{Country: "US", State: "NY", City: "New York", Zipcode: "10001"},
	}
	for i, amount := range cCtx.StringSlice("amount") {
		price, err := decimal.NewFromString(amount)
		if err != nil {
			return quote.QuoteRequest{}, fmt.Errorf("invalid amount '%s': %w", amount, err)
		}
		price64, _ := price.Float64()
		req.LineItems = append(req.LineItems, quote.LineItem{
			LineItemID:       fmt.Sprintf("li-%d", i+1),
			ProductID:        fmt.Sprintf("product-%d", i+1),
			ProductTitle:     fmt.Sprintf("Product %d", i+1),
			Currency:         cCtx.String("currency"),
			Price:            price64,
			FinalPrice:       price,
			Quantity:         1,
			RequiresShipping: true,
		})
	}
	return req, nil
}

func openPreferences(c context.Context, cfg myconfig.Config) (prefstore.PreferenceStore, func(), error) {
	store, cleanup, err := mystore.New[prefstore.Entry](c, cfg.Store)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening %s preference store: %w", cfg.Store.Backend, err)
	}
	return prefstore.New(store, mylog.New("prefstore")), cleanup, nil
}

func preferenceCommand() *cli.Command {
	return &cli.Command{
		Name:  "preference",
		Usage: "Inspect or reset the persisted opt-in choice",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Action: runPreferenceShow,
			},
			{
				Name:   "clear",
				Action: runPreferenceClear,
			},
		},
	}
}

type preferenceView struct {
	OptedIn   *bool      `json:"opted_in,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Live      bool       `json:"live"`
}

func runPreferenceShow(cCtx *cli.Context) error {
	c := cCtx.Context

	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	prefs, cleanup, err := openPreferences(c, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	view := preferenceView{}
	if optedIn, found := prefs.GetOptIn(c); found {
		view.OptedIn = &optedIn
	}
	if expiresAt := prefs.GetOptOutExpiry(c); expiresAt > 0 {
		t := mytime.FromMillis(expiresAt).UTC()
		view.ExpiresAt = &t
	}
	view.Live = prefs.Load(c, time.Now()) != nil

	return printJSON(view)
}

func runPreferenceClear(cCtx *cli.Context) error {
	c := cCtx.Context

	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	prefs, cleanup, err := openPreferences(c, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	prefs.Clear(c)
	return nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
