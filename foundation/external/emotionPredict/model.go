package emotionPredict

type RawDocument struct {
	Text string `json:"text"`
}

type Request struct {
	RawDocument RawDocument `json:"raw_document"`
}

// Response keys. Lookups are exact: encoding/json would otherwise accept any
// casing of these names.
const (
	keyPredictions = "emotionPredictions"
	keyEmotion     = "emotion"
)

var scoreKeys = [...]string{"anger", "disgust", "fear", "joy", "sadness"}

// Emotion is a fully validated prediction: all five scores were present.
type Emotion struct {
	Anger   float64
	Disgust float64
	Fear    float64
	Joy     float64
	Sadness float64
}
