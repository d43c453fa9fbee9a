package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"clawpic/internal/adapters/generator"
	"clawpic/internal/adapters/relay"
	"clawpic/internal/config"
	"clawpic/internal/core/domain"
	"clawpic/internal/core/port"
	"clawpic/internal/core/service"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var opts struct {
	Mode              string
	ReferenceImageURL string
	ImageCount        int
	Transport         string
}

var rootCmd = &cobra.Command{
	Use:   "clawpic <prompt> <channel> [caption] [aspect-ratio] [output-format]",
	Short: "Generate an image with grok-imagine and relay it through an openclaw gateway",
	Args:  cobra.RangeArgs(2, 5),
	RunE:  run,
	// Errors are logged once in Execute instead of cobra's own printer.
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&opts.Mode, "mode", "m", "auto", "selfie mode: auto, mirror or direct")
	rootCmd.Flags().StringVarP(&opts.ReferenceImageURL, "reference-image", "r", "", "reference image URL, switches to the edit endpoint")
	rootCmd.Flags().IntVarP(&opts.ImageCount, "count", "n", domain.DefaultImageCount, "number of images to request (1-4)")
	rootCmd.Flags().StringVarP(&opts.Transport, "transport", "t", "", "relay transport: cli, http or auto (default from config)")
}

func run(cmd *cobra.Command, args []string) error {
	// Arg count errors above still print usage, runtime errors should not.
	cmd.SilenceUsage = true

	if err := config.Load(); err != nil {
		return err
	}

	switch viper.GetString("log.level") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	runID, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("could not create run id: %w", err)
	}

	l := log.With().Str("runId", runID.String()).Logger()

	mode, err := domain.ParseMode(opts.Mode)
	if err != nil {
		return err
	}

	request := service.Request{
		UserContext:       args[0],
		Mode:              mode,
		Channel:           args[1],
		ReferenceImageURL: opts.ReferenceImageURL,
		ImageCount:        opts.ImageCount,
	}

	if len(args) > 2 {
		request.Caption = args[2]
	}
	if len(args) > 3 {
		request.AspectRatio = args[3]
	}
	if len(args) > 4 {
		request.OutputFormat = args[4]
	}

	grok := generator.NewGrok(
		viper.GetString("fal.generate_url"),
		viper.GetString("fal.edit_url"),
		viper.GetString("fal.api_key"))

	messageRelay, err := resolveRelay()
	if err != nil {
		return err
	}

	pipeline := service.NewPipeline(grok, messageRelay)

	summary, err := pipeline.GenerateAndSend(cmd.Context(), request)
	if err != nil {
		return err
	}

	l.Info().Str("imageUrl", summary.ImageURL).Msg("image relayed")

	return json.NewEncoder(os.Stdout).Encode(summary)
}

// resolveRelay picks the gateway transport. Selection is explicit config,
// except for "auto" which probes for the gateway binary on PATH and falls
// back to HTTP when it is missing.
func resolveRelay() (port.MessageRelay, error) {
	transport := opts.Transport
	if transport == "" {
		transport = viper.GetString("relay.transport")
	}

	binary := viper.GetString("relay.command")

	if transport == "auto" {
		if relay.Available(binary) {
			transport = "cli"
		} else {
			log.Debug().Str("binary", binary).Msg("gateway binary not found, using http transport")
			transport = "http"
		}
	}

	switch transport {
	case "cli":
		return relay.NewCLI(binary), nil
	case "http":
		return relay.NewHTTP(viper.GetString("gateway.url"), viper.GetString("gateway.token")), nil
	default:
		return nil, fmt.Errorf("unknown relay transport: %s", transport)
	}
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("clawpic failed")
		os.Exit(1)
	}
}
