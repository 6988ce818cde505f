package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"
	"github.com/viant/bearer"
	"github.com/viant/bearer/token"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Run parses args and executes the selected command, writing to stdout
func Run(args []string) error {
	return RunWithOutput(context.Background(), args, os.Stdout)
}

// RunWithOutput parses args and executes the selected command, writing to w
func RunWithOutput(ctx context.Context, args []string, w io.Writer) error {
	options := &Options{Inspect: &InspectOptions{}, Decode: &DecodeOptions{}}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}
	if parser.Active == nil {
		return fmt.Errorf("command is required")
	}
	switch parser.Active.Name {
	case "inspect":
		return inspect(ctx, options.Inspect, w)
	case "decode":
		return decode(options.Decode, w)
	}
	return fmt.Errorf("unsupported command: %v", parser.Active.Name)
}

func inspect(ctx context.Context, options *InspectOptions, w io.Writer) error {
	tok, err := loadToken(ctx, options)
	if err != nil {
		return err
	}
	rt, err := bearer.NewTransport(ctx, &options.ClientOptions, token.Static(tok))
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(options.Method), options.URL, nil)
	if err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	forwarded, outcome, err := rt.Decide(req)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "outcome: %v\n", outcome)
	fmt.Fprintf(w, "%v %v\n", forwarded.Method, forwarded.URL)
	if value := forwarded.Header.Get(rt.HeaderName()); value != "" {
		fmt.Fprintf(w, "%v: %v\n", rt.HeaderName(), value)
	}
	return nil
}

func loadToken(ctx context.Context, options *InspectOptions) (string, error) {
	if options.Token != "" || options.TokenURL == "" {
		return options.Token, nil
	}
	data, err := afs.New().DownloadWithURL(ctx, options.TokenURL)
	if err != nil {
		return "", fmt.Errorf("failed to read token %v: %w", options.TokenURL, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func decode(options *DecodeOptions, w io.Writer) error {
	helper := &token.Helper{Offset: options.Offset}
	claims, err := helper.Decode(options.Token)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(claims, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	expiry, err := helper.ExpirationTime(options.Token)
	if err != nil {
		return err
	}
	if expiry == nil {
		fmt.Fprintln(w, "expires: never")
	} else {
		fmt.Fprintf(w, "expires: %v\n", expiry.UTC().Format(time.RFC3339))
	}
	fmt.Fprintf(w, "expired: %v\n", helper.IsExpired(options.Token))
	return nil
}
