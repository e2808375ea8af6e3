package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jingkaihe/skillet/pkg/logger"
	"github.com/jingkaihe/skillet/pkg/telemetry"
	"github.com/jingkaihe/skillet/pkg/version"
)

var tracer = telemetry.Tracer("skillet.cli")

// tracingShutdown flushes the span processor; set when tracing is enabled.
var tracingShutdown func(context.Context) error

func init() {
	rootCmd.PersistentFlags().Bool("tracing-enabled", false, "Enable OpenTelemetry tracing")
	rootCmd.PersistentFlags().String("tracing-sampler", "ratio", "Tracing sampler type (always, never, ratio)")
	rootCmd.PersistentFlags().Float64("tracing-ratio", 1, "Tracing sampling ratio (0.0-1.0)")

	viper.BindPFlag("tracing.enabled", rootCmd.PersistentFlags().Lookup("tracing-enabled"))
	viper.BindPFlag("tracing.sampler", rootCmd.PersistentFlags().Lookup("tracing-sampler"))
	viper.BindPFlag("tracing.ratio", rootCmd.PersistentFlags().Lookup("tracing-ratio"))
}

func initTracing(ctx context.Context) (func(context.Context) error, error) {
	cfg := telemetry.Config{
		Enabled:        viper.GetBool("tracing.enabled"),
		ServiceName:    "skillet",
		ServiceVersion: version.Get().Version,
		SamplerType:    viper.GetString("tracing.sampler"),
		SamplerRatio:   viper.GetFloat64("tracing.ratio"),
	}

	shutdown, err := telemetry.InitTracer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Enabled {
		logger.G(ctx).WithField("sampler", cfg.SamplerType).Debug("tracing initialized")
	}
	return shutdown, nil
}

func shutdownTracing() {
	if tracingShutdown == nil {
		return
	}
	if err := tracingShutdown(context.Background()); err != nil {
		logger.G(context.Background()).WithError(err).Debug("failed to shut down tracing")
	}
}

// withTracing wraps a command's Run so each invocation produces a root span
// annotated with the command path and its non-sensitive flag values.
func withTracing(cmd *cobra.Command) *cobra.Command {
	if cmd.Run == nil {
		return cmd
	}

	run := cmd.Run
	cmd.Run = func(c *cobra.Command, args []string) {
		ctx, span := tracer.Start(c.Context(), "cli."+c.Name(),
			trace.WithAttributes(
				attribute.String("cli.command", c.CommandPath()),
				attribute.StringSlice("cli.args", args),
			),
		)
		defer span.End()

		c.Flags().Visit(func(f *pflag.Flag) {
			if isSensitiveFlag(f.Name) {
				return
			}
			span.SetAttributes(attribute.String("cli.flag."+f.Name, f.Value.String()))
		})

		c.SetContext(ctx)
		run(c, args)
	}
	return cmd
}

func isSensitiveFlag(name string) bool {
	for _, fragment := range []string{"password", "token", "key", "secret"} {
		if strings.Contains(name, fragment) {
			return true
		}
	}
	return false
}
