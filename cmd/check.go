package cmd

import (
	"fmt"

	"github.com/sahib/wsmq/config"
	"github.com/sahib/wsmq/transport"
	"github.com/urfave/cli/v2"
)

var CommandCheck = &cli.Command{
	Name:    "check",
	Action:  HandleCheck,
	Aliases: []string{"c"},
	Usage:   "Validate a messaging endpoint configuration",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "endpoint",
			Aliases: []string{"e"},
			Usage:   "The endpoint URI to connect to (ws:// or wss://)",
			EnvVars: []string{"WSMQ_ENDPOINT"},
		},
		&cli.IntFlag{
			Name:    "schema-version",
			Aliases: []string{"s"},
			Usage:   "The schema version embedded in the websocket path",
			Value:   int(config.LatestSchemaVersion),
			EnvVars: []string{"WSMQ_SCHEMA_VERSION"},
		},
		&cli.BoolFlag{
			Name:  "no-reconnect",
			Usage: "Disable reconnecting on connection loss",
		},
		&cli.StringFlag{
			Name:    "proxy-host",
			Usage:   "Host of an HTTP proxy to tunnel through",
			EnvVars: []string{"WSMQ_PROXY_HOST"},
		},
		&cli.IntFlag{
			Name:    "proxy-port",
			Usage:   "Port of the HTTP proxy",
			Value:   3128,
			EnvVars: []string{"WSMQ_PROXY_PORT"},
		},
		&cli.StringFlag{
			Name:    "ca-file",
			Usage:   "Path to a PEM bundle of trusted CA certificates",
			EnvVars: []string{"WSMQ_CA_FILE"},
		},
	},
}

func HandleCheck(ctx *cli.Context) error {
	builder := config.NewBuilder().
		Endpoint(ctx.String("endpoint")).
		SchemaVersion(config.SchemaVersion(ctx.Int("schema-version"))).
		ReconnectEnabled(!ctx.Bool("no-reconnect"))

	if host := ctx.String("proxy-host"); host != "" {
		builder.Proxy(&config.ProxyConfig{
			Host: host,
			Port: ctx.Int("proxy-port"),
		})
	}

	if caFile := ctx.String("ca-file"); caFile != "" {
		builder.TrustStore(&config.TrustStoreConfig{
			Location: caFile,
		})
	}

	cfg, err := builder.Build()
	if err != nil {
		return err
	}

	// also make sure the dialer inputs (proxy, trust store) materialize:
	if _, err := transport.Dialer(cfg, transport.DefaultOptions()); err != nil {
		return err
	}

	fmt.Printf("endpoint:       %s\n", cfg.EndpointURI())
	fmt.Printf("schema version: %s\n", cfg.SchemaVersion())
	fmt.Printf("reconnect:      %v\n", cfg.ReconnectEnabled())

	if proxy, ok := cfg.Proxy(); ok {
		fmt.Printf("proxy:          %s\n", proxy.URL())
	}

	if trustStore, ok := cfg.TrustStore(); ok {
		fmt.Printf("trust store:    %s\n", trustStore.Location)
	}

	return nil
}
