package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Los modelos devuelven el JSON de formas variadas: pelado, con cercas
// markdown, con prosa alrededor. extractJSON debe recuperar el valor en
// todos los casos y devolver vacío cuando no hay JSON.
func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "lista pelada",
			in:   `[{"risk": "a", "decision": "b"}]`,
			want: `[{"risk": "a", "decision": "b"}]`,
		},
		{
			name: "objeto pelado",
			in:   `{"best_decision": "reordenar"}`,
			want: `{"best_decision": "reordenar"}`,
		},
		{
			name: "cerca markdown con etiqueta json",
			in:   "```json\n[{\"risk\": \"a\"}]\n```",
			want: `[{"risk": "a"}]`,
		},
		{
			name: "cerca markdown sin etiqueta",
			in:   "```\n{\"best_decision\": \"x\"}\n```",
			want: `{"best_decision": "x"}`,
		},
		{
			name: "prosa antes y después",
			in:   "Here is the analysis:\n[{\"risk\": \"a\"}]\nHope this helps!",
			want: `[{"risk": "a"}]`,
		},
		{
			name: "sin JSON",
			in:   "no puedo ayudar con eso",
			want: "",
		},
		{
			name: "vacío",
			in:   "",
			want: "",
		},
		{
			name: "corchete de apertura sin cierre",
			in:   "resultado: [incompleto",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractJSON(tc.in))
		})
	}
}

func TestStripFences_SinCercas_DevuelveRecortado(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, stripFences("  {\"a\": 1}  \n"))
}

func TestStripFences_CercaSinCierre_Tolerada(t *testing.T) {
	// Respuesta truncada por el upstream: se devuelve lo que hay tras la apertura.
	assert.Equal(t, `{"a": 1}`, stripFences("```json\n{\"a\": 1}"))
}
