package generation_test

import (
	"strings"
	"testing"

	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionTemplate(t *testing.T) {
	for _, action := range domain.Actions() {
		tmpl, err := generation.ActionTemplate(action)
		require.NoError(t, err, "every action should have a registered template")
		assert.NotEmpty(t, tmpl)
		assert.Contains(t, tmpl, `"content"`, "every template should demand the JSON contract")
	}

	_, err := generation.ActionTemplate(domain.Action("expand"))
	assert.ErrorIs(t, err, generation.ErrUnknownTemplate)
}

func TestRender(t *testing.T) {
	rendered, err := generation.Render("Tone: {tone}, Topic: {topic}", map[string]string{
		"tone":  "Bold",
		"topic": "AI",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tone: Bold, Topic: AI", rendered)
}

func TestRenderMissingVariable(t *testing.T) {
	_, err := generation.Render("Tone: {tone}", map[string]string{})
	assert.ErrorIs(t, err, generation.ErrMissingVariable)
	assert.Contains(t, err.Error(), "{tone}")
}

func TestRenderLeavesJSONBracesAlone(t *testing.T) {
	tmpl := "Respond with:\n{\n  \"content\": \"...\"\n}\nTone: {tone}"
	rendered, err := generation.Render(tmpl, map[string]string{"tone": "Warm"})
	require.NoError(t, err)
	assert.Contains(t, rendered, "{\n  \"content\": \"...\"\n}")
	assert.Contains(t, rendered, "Tone: Warm")
}

func TestRenderDoesNotExpandBracesInValues(t *testing.T) {
	rendered, err := generation.Render("Draft: {text}", map[string]string{
		"text": "my post mentions {tone} literally",
	})
	require.NoError(t, err)
	assert.Equal(t, "Draft: my post mentions {tone} literally", rendered)
}

func TestRenderAction(t *testing.T) {
	brand := generation.BrandContext{
		Tone:   "Warm & Authentic",
		Topics: "AI, Leadership",
		Goal:   "Become a Top Voice",
	}

	tests := []struct {
		action domain.Action
		// placeholder each action's template uses for the draft text
		wantsBrand bool
	}{
		{domain.ActionContinue, true},
		{domain.ActionRephrase, true},
		{domain.ActionGrammar, false},
		{domain.ActionEngagement, true},
		{domain.ActionShorter, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			rendered, err := generation.RenderAction(tt.action, brand, "My draft text.")
			require.NoError(t, err)

			assert.Contains(t, rendered, "My draft text.")
			assert.False(t, strings.Contains(rendered, "{current_text}"))
			assert.False(t, strings.Contains(rendered, "{text_to_rephrase}"))
			assert.False(t, strings.Contains(rendered, "{text}"))

			if tt.wantsBrand {
				assert.Contains(t, rendered, "Warm & Authentic")
			} else {
				// Grammar correction deliberately ignores the blueprint.
				assert.NotContains(t, rendered, "Warm & Authentic")
			}
		})
	}
}

func TestRenderActionShorterOmitsGoal(t *testing.T) {
	// The shorter template carries tone and topics but no goal line.
	rendered, err := generation.RenderAction(domain.ActionShorter, generation.BrandContext{
		Tone:   "Direct",
		Topics: "Engineering",
		Goal:   "Hire great people",
	}, "A long draft.")
	require.NoError(t, err)
	assert.NotContains(t, rendered, "Hire great people")
}

func TestDefaultBrandContext(t *testing.T) {
	def := generation.DefaultBrandContext()
	assert.Equal(t, "Professional", def.Tone)
	assert.Equal(t, "General professional topics", def.Topics)
	assert.Equal(t, "Build thought leadership", def.Goal)
}
