package jira

import (
	"encoding/json"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestADFDocumentShape(t *testing.T) {
	raw, err := json.Marshal(ADFDocument("Hello world"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "doc",
		"version": 1,
		"content": [
			{"type": "paragraph", "content": [{"type": "text", "text": "Hello world"}]}
		]
	}`, string(raw))
}

func TestADFToPlainText(t *testing.T) {
	tests := []struct {
		name string
		adf  any
		want string
	}{
		{
			name: "NilValue",
			adf:  nil,
			want: "",
		},
		{
			name: "PlainStringPassesThrough",
			adf:  "already plain",
			want: "already plain",
		},
		{
			name: "UnexpectedScalar",
			adf:  float64(42),
			want: "",
		},
		{
			name: "SingleParagraph",
			adf: map[string]any{
				"type": "doc", "version": float64(1),
				"content": []any{
					map[string]any{"type": "paragraph", "content": []any{
						map[string]any{"type": "text", "text": "Hello"},
					}},
				},
			},
			want: "Hello",
		},
		{
			name: "ParagraphsAndHardBreak",
			adf: map[string]any{
				"type": "doc",
				"content": []any{
					map[string]any{"type": "paragraph", "content": []any{
						map[string]any{"type": "text", "text": "line one"},
						map[string]any{"type": "hardBreak"},
						map[string]any{"type": "text", "text": "line two"},
					}},
					map[string]any{"type": "paragraph", "content": []any{
						map[string]any{"type": "text", "text": "second paragraph"},
					}},
				},
			},
			want: "line one\nline two\nsecond paragraph",
		},
		{
			name: "BulletList",
			adf: map[string]any{
				"type": "doc",
				"content": []any{
					map[string]any{"type": "bulletList", "content": []any{
						map[string]any{"type": "listItem", "content": []any{
							map[string]any{"type": "paragraph", "content": []any{
								map[string]any{"type": "text", "text": "first"},
							}},
						}},
						map[string]any{"type": "listItem", "content": []any{
							map[string]any{"type": "paragraph", "content": []any{
								map[string]any{"type": "text", "text": "second"},
							}},
						}},
					}},
				},
			},
			want: "- first\n- second",
		},
		{
			name: "OrderedListNumbering",
			adf: map[string]any{
				"type": "doc",
				"content": []any{
					map[string]any{"type": "orderedList", "content": []any{
						map[string]any{"type": "listItem", "content": []any{
							map[string]any{"type": "text", "text": "alpha"},
						}},
						map[string]any{"type": "listItem", "content": []any{
							map[string]any{"type": "text", "text": "beta"},
						}},
					}},
				},
			},
			want: "1. alpha\n2. beta",
		},
		{
			name: "MentionAndInlineCard",
			adf: map[string]any{
				"type": "doc",
				"content": []any{
					map[string]any{"type": "paragraph", "content": []any{
						map[string]any{"type": "mention", "attrs": map[string]any{"text": "@jane"}},
						map[string]any{"type": "text", "text": " see "},
						map[string]any{"type": "inlineCard", "attrs": map[string]any{"url": "https://example.com"}},
					}},
				},
			},
			want: "@jane see https://example.com",
		},
		{
			name: "UnknownNodeKeepsChildText",
			adf: map[string]any{
				"type": "doc",
				"content": []any{
					map[string]any{"type": "panel", "content": []any{
						map[string]any{"type": "paragraph", "content": []any{
							map[string]any{"type": "text", "text": "inside a panel"},
						}},
					}},
				},
			},
			want: "inside a panel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ADFToPlainText(tt.adf))
		})
	}
}

func TestADFRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("wrapping then flattening returns the original text", prop.ForAll(
		func(text string) bool {
			return ADFToPlainText(ADFDocument(text)) == text
		},
		gen.AlphaString().SuchThat(func(s string) bool { return s != "" }),
	))

	properties.TestingRun(t)
}
