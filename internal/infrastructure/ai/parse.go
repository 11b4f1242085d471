package ai

import "strings"

// extractJSON extrae el primer valor JSON (objeto o lista) de un texto libre.
// Los modelos suelen envolver el JSON en cercas markdown o añadir prosa
// alrededor; las cercas ausentes se toleran y el JSON malformado lo reporta
// el json.Unmarshal del caller.
func extractJSON(text string) string {
	text = stripFences(text)

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return ""
	}
	var end int
	if text[start] == '[' {
		end = strings.LastIndex(text, "]")
	} else {
		end = strings.LastIndex(text, "}")
	}
	if end <= start {
		return ""
	}
	return strings.TrimSpace(text[start : end+1])
}

// stripFences quita el bloque de código markdown (```json … ``` o ``` … ```)
// si existe; si no hay cercas devuelve el texto recortado tal cual.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	idx := strings.Index(text, "```")
	if idx == -1 {
		return text
	}
	// Quitar la línea de apertura (```json o ```)
	after := text[idx+3:]
	if nl := strings.Index(after, "\n"); nl != -1 {
		after = after[nl+1:]
	}
	// Quitar el cierre ```
	if close := strings.LastIndex(after, "```"); close != -1 {
		after = after[:close]
	}
	return strings.TrimSpace(after)
}
