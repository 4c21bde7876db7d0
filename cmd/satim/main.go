package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"satim-gateway/application"
	"satim-gateway/domain/constants"
	"satim-gateway/domain/entities/satim"
	"satim-gateway/domain/request_params"
	"satim-gateway/domain/value_objects"
	"satim-gateway/utils/configs"
	"satim-gateway/utils/gen_ids"
	"satim-gateway/utils/gpooling"
	logger2 "satim-gateway/utils/logger"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

const usage = `usage: satim <command> [flags]

commands:
  register  [-order-number N] -amount A -return-url U -udf1 V [-fail-url U] [-description D] [-currency C] [-language L]
  confirm   [-language L] ORDER_ID...
  refund    -order-id ID -amount A
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	config, err := configs.LoadConfig()
	if err != nil {
		panic(err)
	}
	lg, _ := logger2.NewLogger(config.ENV)
	defer lg.Sync()

	pool_go_routine, err := gpooling.NewPooling(config.MaxPoolSize, lg)
	if err != nil {
		panic(err)
	}
	defer pool_go_routine.Release()

	app := application.NewSatimApplication(config, lg, nil, pool_go_routine)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, app, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		lg.With(zap.Error(err)).Error("satim command failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, app *application.SatimApplication, command string, args []string, out io.Writer) error {
	switch command {
	case "register":
		return register(ctx, app, args, out)
	case "confirm":
		return confirm(ctx, app, args, out)
	case "refund":
		return refund(ctx, app, args, out)
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func register(ctx context.Context, app *application.SatimApplication, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fields := request_params.RegisterRequest{}
	var currency, language string
	fs.StringVar(&fields.OrderNumber, "order-number", "", "merchant order number, generated when empty")
	fs.Float64Var(&fields.Amount, "amount", 0, "amount in DZD, two decimals")
	fs.StringVar(&fields.ReturnURL, "return-url", "", "url SATIM redirects to after payment")
	fs.StringVar(&fields.FailURL, "fail-url", "", "url SATIM redirects to on failure")
	fs.StringVar(&fields.Description, "description", "", "order description")
	fs.StringVar(&fields.Udf1, "udf1", "", "merchant reference")
	fs.StringVar(&currency, "currency", "", "currency code or name")
	fs.StringVar(&language, "language", "", "EN, FR or AR")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fields.OrderNumber == "" {
		fields.OrderNumber = gen_ids.GetIdOrderNumber()
	}
	if currency != "" {
		fields.Currency = constants.ResolveCurrency(currency)
	}
	if language != "" {
		fields.Language = constants.ResolveLanguage(language)
	}

	request, err := request_params.MakeRegisterRequest(fields)
	if err != nil {
		return err
	}
	res, err := app.Register(ctx, request)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "registered: %v\n", res.Registered())
	return printJSON(out, res)
}

func confirm(ctx context.Context, app *application.SatimApplication, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("confirm", flag.ContinueOnError)
	language := fs.String("language", "", "EN, FR or AR")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("confirm needs at least one order id")
	}
	if *language != "" {
		app.SetLanguage(constants.ResolveLanguage(*language))
	}

	results := app.ConfirmOrders(ctx, fs.Args())
	successful := 0
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintf(out, "%s\terror\t%v\n", result.OrderID, result.Err)
			continue
		}
		if result.Response.Successful() {
			successful++
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", result.OrderID, result.Response.Outcome(), amount(result.Response))
	}
	fmt.Fprintf(out, "%s of %s orders captured\n", humanize.Comma(int64(successful)), humanize.Comma(int64(len(results))))
	return nil
}

func refund(ctx context.Context, app *application.SatimApplication, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("refund", flag.ContinueOnError)
	fields := request_params.RefundRequest{}
	fs.StringVar(&fields.OrderID, "order-id", "", "SATIM order id")
	fs.Float64Var(&fields.Amount, "amount", 0, "amount to refund, two decimals")
	if err := fs.Parse(args); err != nil {
		return err
	}

	request, err := request_params.MakeRefundRequest(fields)
	if err != nil {
		return err
	}
	res, err := app.Refund(ctx, request)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "refunded: %v (%s)\n", res.Refunded(), humanize.CommafWithDigits(fields.Amount, 2))
	return printJSON(out, res)
}

func amount(res *satim.ConfirmResponse) string {
	if !res.Amount.Valid {
		return "-"
	}
	currency := constants.CurrencyFallback()
	if res.Currency != nil {
		currency = *res.Currency
	}
	return value_objects.FormatMoney(res.Amount.Decimal, currency)
}

func printJSON(out io.Writer, v interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
