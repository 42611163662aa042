package emotion

import "github.com/superfeelapi/goEmotionDetector/foundation/external/emotionPredict"

// Emotion names one of the five tracked categories.
type Emotion string

const (
	Anger   Emotion = "anger"
	Disgust Emotion = "disgust"
	Fear    Emotion = "fear"
	Joy     Emotion = "joy"
	Sadness Emotion = "sadness"
)

// Order is the fixed enumeration used for output and for breaking ties.
var Order = [...]Emotion{Anger, Disgust, Fear, Joy, Sadness}

type Scores struct {
	Anger   float64
	Disgust float64
	Fear    float64
	Joy     float64
	Sadness float64
}

func fromPrediction(e emotionPredict.Emotion) Scores {
	return Scores{
		Anger:   e.Anger,
		Disgust: e.Disgust,
		Fear:    e.Fear,
		Joy:     e.Joy,
		Sadness: e.Sadness,
	}
}

func (s Scores) Get(e Emotion) float64 {
	switch e {
	case Anger:
		return s.Anger
	case Disgust:
		return s.Disgust
	case Fear:
		return s.Fear
	case Joy:
		return s.Joy
	case Sadness:
		return s.Sadness
	}
	return 0
}

// Dominant returns the emotion with the highest score. On a tie the first one
// in Order wins.
func (s Scores) Dominant() Emotion {
	dominant := Order[0]
	best := s.Get(dominant)
	for _, e := range Order[1:] {
		if v := s.Get(e); v > best {
			dominant, best = e, v
		}
	}
	return dominant
}

// =====================================================================================================================

// Result is either Success or Failure.
type Result interface {
	result()
}

type Success struct {
	Scores   Scores
	Dominant Emotion
}

// Failure carries no cause: every failure looks the same to the caller.
type Failure struct{}

func (Success) result() {}
func (Failure) result() {}

// Record is the flat JSON view of a Result. Either every field is set or
// every field is null.
type Record struct {
	Anger           *float64 `json:"anger"`
	Disgust         *float64 `json:"disgust"`
	Fear            *float64 `json:"fear"`
	Joy             *float64 `json:"joy"`
	Sadness         *float64 `json:"sadness"`
	DominantEmotion *Emotion `json:"dominant_emotion"`
}

func ToRecord(r Result) Record {
	s, ok := r.(Success)
	if !ok {
		return Record{}
	}
	dominant := s.Dominant
	return Record{
		Anger:           &s.Scores.Anger,
		Disgust:         &s.Scores.Disgust,
		Fear:            &s.Scores.Fear,
		Joy:             &s.Scores.Joy,
		Sadness:         &s.Scores.Sadness,
		DominantEmotion: &dominant,
	}
}
