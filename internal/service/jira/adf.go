package jira

import (
	"fmt"
	"strings"
)

// ADFDocument wraps plain text in a minimal Atlassian Document Format
// document: a single paragraph holding a single text node. REST API v3
// requires comment bodies in this shape.
func ADFDocument(text string) map[string]any {
	return map[string]any{
		"type":    "doc",
		"version": 1,
		"content": []any{
			map[string]any{
				"type": "paragraph",
				"content": []any{
					map[string]any{"type": "text", "text": text},
				},
			},
		},
	}
}

// ADFToPlainText flattens an Atlassian Document Format value into plain
// text. Descriptions and comment bodies come back from API v3 in ADF;
// a plain string passes through unchanged. Unknown node types contribute
// the text of their children so nothing readable is silently lost.
func ADFToPlainText(adf any) string {
	switch v := adf.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		var sb strings.Builder
		writeADFNode(&sb, v, 0)
		return strings.TrimRight(sb.String(), "\n")
	default:
		return ""
	}
}

func writeADFNode(sb *strings.Builder, node map[string]any, depth int) {
	nodeType, _ := node["type"].(string)

	switch nodeType {
	case "text":
		text, _ := node["text"].(string)
		sb.WriteString(text)
	case "hardBreak":
		sb.WriteString("\n")
	case "rule":
		sb.WriteString("---\n")
	case "paragraph", "heading", "codeBlock":
		writeADFChildren(sb, node, depth)
		sb.WriteString("\n")
	case "bulletList", "orderedList":
		writeADFListItems(sb, node, depth, nodeType == "orderedList")
	case "mention", "emoji":
		if attrs, ok := node["attrs"].(map[string]any); ok {
			if text, ok := attrs["text"].(string); ok {
				sb.WriteString(text)
			}
		}
	case "inlineCard":
		if attrs, ok := node["attrs"].(map[string]any); ok {
			if url, ok := attrs["url"].(string); ok {
				sb.WriteString(url)
			}
		}
	default:
		writeADFChildren(sb, node, depth)
	}
}

func writeADFChildren(sb *strings.Builder, node map[string]any, depth int) {
	content, ok := node["content"].([]any)
	if !ok {
		return
	}
	for _, child := range content {
		if childMap, ok := child.(map[string]any); ok {
			writeADFNode(sb, childMap, depth)
		}
	}
}

func writeADFListItems(sb *strings.Builder, node map[string]any, depth int, ordered bool) {
	content, ok := node["content"].([]any)
	if !ok {
		return
	}
	indent := strings.Repeat("  ", depth)
	for i, item := range content {
		itemMap, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if ordered {
			sb.WriteString(fmt.Sprintf("%s%d. ", indent, i+1))
		} else {
			sb.WriteString(indent + "- ")
		}
		var itemBuf strings.Builder
		writeADFChildren(&itemBuf, itemMap, depth+1)
		sb.WriteString(strings.TrimRight(itemBuf.String(), "\n"))
		sb.WriteString("\n")
	}
}
