package service

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var voiceoverRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storytrip_voiceover_requests_total",
		Help: "Voiceover synthesis attempts by outcome.",
	},
	[]string{"status"},
)

// Synthesizer is the text-to-speech backend; *tts.Client implements it.
type Synthesizer interface {
	Configured() bool
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// VoiceoverGenerator produces narration audio. It never fails: any problem
// yields nil audio.
type VoiceoverGenerator interface {
	GenerateVoiceover(ctx context.Context, text string) []byte
}

type voiceoverGenerator struct {
	synth  Synthesizer
	logger *zap.Logger
}

var _ VoiceoverGenerator = (*voiceoverGenerator)(nil)

func NewVoiceoverGenerator(synth Synthesizer, logger *zap.Logger) VoiceoverGenerator {
	return &voiceoverGenerator{
		synth:  synth,
		logger: logger.Named("VoiceoverGenerator"),
	}
}

func (g *voiceoverGenerator) GenerateVoiceover(ctx context.Context, text string) []byte {
	if g.synth == nil || !g.synth.Configured() {
		g.logger.Warn("ElevenLabs API key or voice ID missing, skipping voiceover")
		voiceoverRequestsTotal.WithLabelValues("skipped").Inc()
		return nil
	}

	start := time.Now()
	audio, err := g.synth.Synthesize(ctx, text)
	if err != nil {
		g.logger.Error("Voiceover synthesis failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		voiceoverRequestsTotal.WithLabelValues("error").Inc()
		return nil
	}

	voiceoverRequestsTotal.WithLabelValues("success").Inc()
	g.logger.Info("Voiceover synthesized",
		zap.Int("audio_bytes", len(audio)),
		zap.Duration("duration", time.Since(start)),
	)
	return audio
}
