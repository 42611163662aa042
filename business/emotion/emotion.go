// Package emotion turns remote emotion predictions into a Result that never
// fails across the call boundary.
package emotion

import (
	"context"

	"github.com/superfeelapi/goEmotionDetector/foundation/external/emotionPredict"
	"go.uber.org/zap"
)

// Predictor is the remote classification service.
type Predictor interface {
	EmotionPredict(ctx context.Context, text string) (emotionPredict.Emotion, error)
}

type Detector struct {
	logger    *zap.SugaredLogger
	predictor Predictor
}

func NewDetector(logger *zap.SugaredLogger, predictor Predictor) *Detector {
	return &Detector{
		logger:    logger,
		predictor: predictor,
	}
}

// Analyze makes exactly one call to the predictor. Any error collapses into
// Failure; the text is passed through untouched.
func (d *Detector) Analyze(ctx context.Context, text string) Result {
	e, err := d.predictor.EmotionPredict(ctx, text)
	if err != nil {
		d.logger.Warnw("emotion: Analyze", "ERROR", err)
		return Failure{}
	}

	scores := fromPrediction(e)
	return Success{
		Scores:   scores,
		Dominant: scores.Dominant(),
	}
}
