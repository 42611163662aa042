package handlers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/superfeelapi/goEmotionDetector/business/emotion"
	"golang.org/x/text/unicode/norm"
)

const (
	msgInvalidText = "Invalid text! Please try again!"
	msgNumericText = "Please enter a valid text!"
)

// checkText rejects input that is not worth a remote call: absent, blank, or
// made only of digits. Full-width and other compatibility digits count.
func checkText(text string) (string, bool) {
	trimmed := strings.TrimSpace(norm.NFKC.String(text))
	if trimmed == "" {
		return msgInvalidText, false
	}

	numeric := true
	for _, r := range trimmed {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return msgNumericText, false
	}

	return "", true
}

func formatResponse(s emotion.Success) string {
	return fmt.Sprintf(
		"For the given statement, the system response is "+
			"'anger': %s, 'disgust': %s, 'fear': %s, 'joy': %s and 'sadness': %s.<br>"+
			"The dominant emotion is %s.",
		formatScore(s.Scores.Anger),
		formatScore(s.Scores.Disgust),
		formatScore(s.Scores.Fear),
		formatScore(s.Scores.Joy),
		formatScore(s.Scores.Sadness),
		s.Dominant,
	)
}

// formatScore prints the shortest representation that round-trips. Whole
// numbers keep a ".0" and very small or very large magnitudes use an exponent.
func formatScore(v float64) string {
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
