package cli

import "github.com/viant/bearer"

type Options struct {
	Inspect *InspectOptions `command:"inspect" description:"show how a request would be forwarded, no network access"`
	Decode  *DecodeOptions  `command:"decode" description:"print JWT claims and expiry"`
}

type InspectOptions struct {
	bearer.ClientOptions
	URL      string `short:"u" long:"url" description:"target url" required:"true"`
	Method   string `short:"m" long:"method" description:"http method" default:"GET"`
	Token    string `short:"t" long:"token" description:"bearer token"`
	TokenURL string `short:"f" long:"token-file" description:"token file URL"`
}

type DecodeOptions struct {
	Token  string `short:"t" long:"token" description:"jwt token" required:"true"`
	Offset int64  `short:"o" long:"offset" description:"expiry offset in seconds"`
}
