package main

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"story-video-service/application/ports/outbound"
	"story-video-service/application/services"
	"story-video-service/config"
	"story-video-service/infrastructure/adapters"
	"story-video-service/infrastructure/gin_interface/controllers"
)

func main() {
	_ = godotenv.Load()

	gptConfig, err := config.GetGptConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get gpt config")
	}

	dalleConfig, err := config.GetDalleConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dalle config")
	}

	ttsConfig, err := config.GetTtsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get tts config")
	}

	videoConfig, err := config.GetVideoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get video config")
	}

	logger := adapters.NewZerologWrapper("story-video-service")

	panicHandler := func(p interface{}) {
		logger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(64, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	contentFetcher := adapters.NewContentFetcher(logger)

	textGenerator := adapters.NewChatTextGenerator(contentFetcher, gptConfig, logger)
	imageGenerator := adapters.NewDalleImageGenerator(contentFetcher, dalleConfig, logger)
	speechSynthesizer := adapters.NewSpeechSynthesizer(contentFetcher, ttsConfig, logger)

	videoCompiler := adapters.NewFFmpegVideoCompiler(logger, contentFetcher)
	workspace := adapters.NewScratchWorkspace(logger, videoConfig.WorkDir)

	// Uploads are optional: without a bucket the video stays local only.
	var videoPublisher outbound.VideoPublisherPort
	if s3Config, err := config.GetS3Config(); err != nil {
		logger.Warn("object store not configured, uploads disabled")
	} else {
		sess := session.Must(session.NewSession(&aws.Config{Region: aws.String(s3Config.Region)}))
		videoPublisher = adapters.NewS3VideoPublisher(logger, s3.New(sess), s3Config)
	}

	promptEnhancer := services.NewPromptEnhancer(logger, textGenerator)
	styleExtractor := services.NewStyleExtractor(logger, textGenerator)
	storySegmenter := services.NewStorySegmenter(logger, textGenerator)
	imageBatch := services.NewImageBatchGenerator(logger, imageGenerator, workerPool, videoConfig.ImageConcurrency)
	narrationGenerator := services.NewNarrationGenerator(logger, speechSynthesizer, videoConfig.TotalDurationSeconds)

	pipeline := services.NewGenerationPipeline(logger, promptEnhancer, styleExtractor, storySegmenter,
		imageBatch, narrationGenerator, videoCompiler, videoPublisher, workspace, videoConfig.TotalDurationSeconds)

	controller := controllers.NewVideoGenerationController(logger, workerPool, pipeline)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	controller.RegisterRoutes(router)

	if err := router.Run(":8080"); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
