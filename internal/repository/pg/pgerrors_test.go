package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify_Nil(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetriable, classifier.Classify(nil))
}

func TestPostgresErrorClassifier_Classify_NonPQError(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetriable, classifier.Classify(errors.New("plain error")))
}

func TestPostgresErrorClassifier_Classify_Retriable(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	codes := []pq.ErrorCode{
		"08000", "08001", "08003", "08004", "08006", "08007",
		"40000", "40001", "40P01",
		"57P03",
	}
	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			result := classifier.Classify(&pq.Error{Code: code})
			assert.Equal(t, Retriable, result)
		})
	}
}

func TestPostgresErrorClassifier_Classify_NonRetriable(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	codes := []pq.ErrorCode{"22001", "23505", "42601", "42P01"}
	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			result := classifier.Classify(&pq.Error{Code: code})
			assert.Equal(t, NonRetriable, result)
		})
	}
}

func TestPostgresErrorClassifier_Classify_WrappedPQError(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	wrapped := fmt.Errorf("create coupon: %w", &pq.Error{Code: "08006"})

	assert.Equal(t, Retriable, classifier.Classify(wrapped))
}
