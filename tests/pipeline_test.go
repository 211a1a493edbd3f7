package tests

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/async"
	"github.com/ib-77/outcome/pkg/outcome/stream"
)

// TestURLPipeline runs the URL processing stages directly without HTTP requests
func TestURLPipeline(t *testing.T) {
	urls := []string{
		// Valid URLs by structure (we won't actually fetch them)
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",

		// Invalid URLs by structure
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processRequest(urls)

	validCount := 0
	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		} else {
			validCount++
		}
	}

	assert.Equal(t, len(urls), len(results))
	assert.Equal(t, 2, invalidCount)
	assert.Equal(t, 3, validCount)
}

func TestURLPipeline_Sequence(t *testing.T) {
	ctx := context.Background()

	all := async.Sequence([]async.Task[int]{
		titleLengthTask("https://www.example.com"),
		titleLengthTask("https://www.test.org"),
	}).Run(ctx)

	assert.True(t, all.IsSuccess())
	assert.Len(t, all.Value(), 2)

	// the first invalid URL short-circuits the whole chain
	bad := async.Sequence([]async.Task[int]{
		titleLengthTask("invalid-url"),
		titleLengthTask("https://www.example.com"),
	}).Run(ctx)

	assert.True(t, bad.IsFailure())
}

func TestURLPipeline_Errs(t *testing.T) {
	ctx := context.Background()

	errs := async.Errs([]async.Task[int]{
		titleLengthTask("invalid-url"),
		titleLengthTask("https://www.example.com"),
		titleLengthTask("ftp://nope"),
	}).Run(ctx)

	assert.True(t, errs.IsSuccess())
	assert.Len(t, errs.Value(), 2)
}

func processRequest(urls []string) []string {
	ctx := context.Background()

	settled := stream.Gather(stream.Run(ctx, stream.Source(ctx, urls...), titleLengthTask, 2))

	out := make([]string, 0, len(settled))
	for _, r := range settled {
		out = append(out, outcome.Match(r,
			func(err error) string { return "invalid" },
			func(n int) string { return fmt.Sprintf("title length: %d", n) }))
	}
	return out
}

func titleLengthTask(url string) async.Task[int] {
	return async.New(func(ctx context.Context, h *async.Helpers) (int, error) {
		validated := async.Await(h, validateURL(url))
		title, err := mockFetchTitle(ctx, validated)
		return len(async.Check(h, title, err)), nil
	})
}

// mockFetchTitle simulates fetching a title without making HTTP requests
func mockFetchTitle(_ context.Context, url string) (string, error) {
	return "Mock Page Title for " + url, nil
}

func validateURL(url string) outcome.Outcome[string] {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return outcome.Failure[string](fmt.Errorf("URL must start with http:// or https://"))
	}
	return outcome.Success(url)
}
