package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractListingText_PrefersJobDescriptionBlock(t *testing.T) {
	html := `<html><body>
		<div class="sidebar">Related jobs you may like</div>
		<div class="job-description">
			<h2>Backend Engineer</h2>
			<p>Build services in Go and Postgres.</p>
		</div>
		<footer>Copyright 2026</footer>
	</body></html>`

	text, err := ExtractListingText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Build services in Go and Postgres.")
	assert.NotContains(t, text, "Related jobs")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractListingText_RemovesNoiseInsideListing(t *testing.T) {
	html := `<html><body><main>
		<script>trackVisit();</script>
		<p>Looking for a Data Scientist.</p>
		<div class="ad">Buy our course</div>
	</main></body></html>`

	text, err := ExtractListingText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Looking for a Data Scientist.")
	assert.NotContains(t, text, "trackVisit")
	assert.NotContains(t, text, "Buy our course")
}

func TestExtractListingText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain page with a listing.</p></body></html>`

	text, err := ExtractListingText(html)
	require.NoError(t, err)

	assert.Equal(t, "Plain page with a listing.", text)
}

func TestExtractListingText_SelectorOrderWins(t *testing.T) {
	html := `<html><body>
		<main>General page content.</main>
		<div class="job-description">The actual listing.</div>
	</body></html>`

	text, err := ExtractListingText(html)
	require.NoError(t, err)

	assert.Equal(t, "The actual listing.", text)
	assert.NotContains(t, text, "General page content")
}
