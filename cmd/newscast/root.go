package main

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"

	"github.com/larrywang1/ai-newscast/application/ports/inbound"
	"github.com/larrywang1/ai-newscast/application/ports/outbound"
	"github.com/larrywang1/ai-newscast/application/services"
	"github.com/larrywang1/ai-newscast/config"
	"github.com/larrywang1/ai-newscast/domain"
	"github.com/larrywang1/ai-newscast/infrastructure/adapters"
)

const (
	defaultMaxStories     = 6
	synthesisPoolSize     = 8
	defaultOutputDir      = "out"
	defaultEpisodeMinutes = 5
)

func newRootCommand() *cobra.Command {
	var personasFlag string
	var minutesFlag int
	var topicsFlag string
	var profanityFlag bool
	var outFlag string

	rootCmd := &cobra.Command{
		Use:           "newscast",
		Short:         "Generate a two-host news podcast episode",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEpisode(cmd, personasFlag, minutesFlag, topicsFlag, profanityFlag, outFlag)
		},
	}

	rootCmd.Flags().StringVar(&personasFlag, "personas", "", "Path to the two-host persona file")
	rootCmd.Flags().IntVar(&minutesFlag, "minutes", defaultEpisodeMinutes, "Target episode length in minutes")
	rootCmd.Flags().StringVar(&topicsFlag, "topics", "", "Topic keywords to filter headlines")
	rootCmd.Flags().BoolVar(&profanityFlag, "profanity", false, "Allow profanity in the dialogue")
	rootCmd.Flags().StringVar(&outFlag, "out", defaultOutputDir, "Output directory for episode artifacts")
	_ = rootCmd.MarkFlagRequired("personas")

	return rootCmd
}

func runEpisode(cmd *cobra.Command, personasPath string, minutes int, topics string, profanity bool, outputDir string) error {
	// API credentials come from the environment; .env files are a convenience.
	_ = godotenv.Load()

	logger := adapters.NewZerologWrapper()

	hostA, hostB, err := config.LoadPersonas(personasPath)
	if err != nil {
		return err
	}

	newsAPIConfig, err := config.GetNewsAPIConfig()
	if err != nil {
		return err
	}
	gptConfig, err := config.GetGptConfig()
	if err != nil {
		return err
	}
	cartesiaConfig, err := config.GetCartesiaConfig()
	if err != nil {
		return err
	}

	workerPool, err := ants.NewPool(synthesisPoolSize)
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer workerPool.Release()

	fetcher := adapters.NewContentFetcher(logger)
	storySource := adapters.NewNewsAPISource(fetcher, newsAPIConfig, logger)
	scriptGenerator := adapters.NewOpenAIScriptGenerator(gptConfig, logger)
	synthesizer := adapters.NewCartesiaSynthesizer(fetcher, cartesiaConfig, logger)
	encoder := adapters.NewFFMPEGEpisodeEncoder(logger)

	var publisher outbound.EpisodePublisherPort
	if s3Config, err := config.GetS3Config(); err == nil {
		publisher, err = adapters.NewS3EpisodePublisher(logger, s3Config)
		if err != nil {
			return err
		}
	} else {
		logger.Debug("Episode bucket not configured, publishing disabled")
	}

	curator := services.NewStoryCurator(logger)
	writer := services.NewScriptwriter(logger, scriptGenerator)
	assembler := services.NewTimelineAssembler(logger, synthesizer, workerPool, cartesiaConfig.SampleRate)
	exporter := services.NewEpisodeExporter(logger, encoder, outputDir)
	pipeline := services.NewEpisodePipeline(logger, storySource, curator, writer, assembler, exporter, publisher)

	err = pipeline.Run(cmd.Context(), inbound.RunEpisodeParams{
		HostA:            hostA,
		HostB:            hostB,
		Minutes:          minutes,
		Topics:           topics,
		ProfanityAllowed: profanity,
		MaxStories:       defaultMaxStories,
		PauseSeconds:     services.DefaultPauseSeconds,
	})
	if errors.Is(err, domain.ErrNoStories) {
		// Expected empty state, not a failure: exit cleanly with no artifacts.
		fmt.Fprintln(cmd.OutOrStdout(), "No stories fetched. Exiting.")
		return nil
	}
	return err
}
