package retryablehttp

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRetryableClient_Defaults(t *testing.T) {
	client := NewRetryableClient(RetryConfig{})

	assert.Equal(t, 3, client.retryConfig.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, client.retryConfig.BaseDelay)
	assert.Equal(t, 5*time.Second, client.retryConfig.MaxDelay)
	assert.Equal(t, 100*time.Millisecond, client.retryConfig.MaxJitter)
	assert.Equal(t, 10*time.Second, client.retryConfig.Timeout)
}

func TestIsRetryable_NetworkError(t *testing.T) {
	client := NewRetryableClient(RetryConfig{})

	assert.True(t, client.isRetryable(nil, fmt.Errorf("network error")))
}

func TestIsRetryable_StatusCodes(t *testing.T) {
	client := NewRetryableClient(RetryConfig{})

	for _, code := range []int{500, 502, 503, 504, 599, 429, 408} {
		t.Run(fmt.Sprintf("Status_%d", code), func(t *testing.T) {
			resp := httptest.NewRecorder()
			resp.WriteHeader(code)
			assert.True(t, client.isRetryable(resp.Result(), nil))
		})
	}

	for _, code := range []int{200, 201, 400, 401, 403, 404} {
		t.Run(fmt.Sprintf("Status_%d", code), func(t *testing.T) {
			resp := httptest.NewRecorder()
			resp.WriteHeader(code)
			assert.False(t, client.isRetryable(resp.Result(), nil))
		})
	}
}

func TestBackoffDelay_Calculation(t *testing.T) {
	client := &RetryableClient{retryConfig: RetryConfig{
		BaseDelay: 100 * time.Millisecond,
		MaxDelay:  2 * time.Second,
		MaxJitter: 50 * time.Millisecond,
	}}

	delay0 := client.backoffDelay(0)
	assert.GreaterOrEqual(t, delay0, 100*time.Millisecond)
	assert.Less(t, delay0, 150*time.Millisecond)

	delay3 := client.backoffDelay(3)
	assert.GreaterOrEqual(t, delay3, 800*time.Millisecond)
	assert.LessOrEqual(t, delay3, 2*time.Second+50*time.Millisecond)
}

func TestDo_SuccessFirstTry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewRetryableClient(RetryConfig{})
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)

	result, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestDo_RetryServerError(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewRetryableClient(RetryConfig{MaxRetries: 1})
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)

	result, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, int32(2), attempts)
}

func TestDo_MaxRetriesExceeded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewRetryableClient(RetryConfig{MaxRetries: 1})
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)

	result, err := client.Do(context.Background(), req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "последняя попытка failed")
	assert.NotNil(t, result)
}

func TestDo_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewRetryableClient(RetryConfig{})
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)

	result, err := client.Do(ctx, req)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestDo_RequestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewRetryableClient(RetryConfig{
		MaxRetries: 1,
		BaseDelay:  10 * time.Millisecond,
		MaxJitter:  time.Millisecond,
		Timeout:    50 * time.Millisecond,
	})
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)

	result, err := client.Do(context.Background(), req)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRetryConfig_CustomValues(t *testing.T) {
	config := RetryConfig{
		MaxRetries: 5,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   30 * time.Second,
		MaxJitter:  200 * time.Millisecond,
		Timeout:    time.Second,
	}

	client := NewRetryableClient(config)
	assert.Equal(t, config, client.retryConfig)
}
