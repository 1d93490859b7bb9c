// Package extract recupera objetos JSON embebidos en texto libre devuelto por un LLM.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNotFound indica que el texto no contiene un objeto JSON reconocible.
	ErrNotFound = errors.New("no json object found")
	// ErrMalformed indica que se encontro un objeto pero no se pudo parsear.
	ErrMalformed = errors.New("malformed structured output")
)

var (
	flatObjectRe = regexp.MustCompile(`(?s)\{[^{}]*\}`)
	fenceStartRe = regexp.MustCompile("(?is)^\\s*```(?:json)?\\s*")
	fenceEndRe   = regexp.MustCompile("(?is)\\s*```(?:json)?\\s*$")
)

// Result agrupa el objeto extraido y la prosa que lo precede.
// Viaja por la cadena de llamadas en lugar de guardarse en estado global.
type Result struct {
	Object   string
	Thinking string
}

// Balanced devuelve el primer objeto de nivel superior con llaves balanceadas.
// Las llaves dentro de strings no cuentan.
func Balanced(input string) (string, error) {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return "", ErrNotFound
	}

	inString := false
	escape := false
	depth := 0

	for i := start; i < len(input); i++ {
		ch := input[i]

		if inString {
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1], nil
			}
		}
	}

	return "", ErrNotFound
}

// Flat devuelve el primer objeto de nivel superior sin llaves anidadas.
// Un objeto que contiene otro objeto no cuenta como plano.
func Flat(input string) (string, error) {
	return firstTopLevel(flatObjectRe, input)
}

// FlatWithKeys es como Flat pero exige que el objeto contenga las claves en ese orden.
func FlatWithKeys(input string, keys ...string) (string, error) {
	var b strings.Builder
	b.WriteString(`(?s)\{[^{}]*`)
	for _, k := range keys {
		b.WriteString(regexp.QuoteMeta(`"` + k + `"`))
		b.WriteString(`[^{}]*`)
	}
	b.WriteString(`\}`)

	re, err := regexp.Compile(b.String())
	if err != nil {
		return "", fmt.Errorf("compile key pattern: %w", err)
	}
	return firstTopLevel(re, input)
}

// firstTopLevel devuelve el primer match que no cae dentro de un objeto balanceado.
// Una llave abierta en la prosa que nunca se cierra no anida lo que viene despues.
func firstTopLevel(re *regexp.Regexp, input string) (string, error) {
	objects := balancedSpans(input)
	for _, loc := range re.FindAllStringIndex(input, -1) {
		if !enclosed(objects, loc[0], loc[1]) {
			return input[loc[0]:loc[1]], nil
		}
	}
	return "", ErrNotFound
}

type span struct{ open, close int }

// balancedSpans lista los pares {...} que cierran, ignorando llaves dentro de strings.
func balancedSpans(input string) []span {
	var (
		spans    []span
		stack    []int
		inString bool
		escape   bool
	)
	for i := 0; i < len(input); i++ {
		ch := input[i]
		if inString {
			switch {
			case escape:
				escape = false
			case ch == '\\':
				escape = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			// Solo hay strings JSON dentro de un objeto; las comillas de la prosa no cuentan.
			if len(stack) > 0 {
				inString = true
			}
		case '{':
			stack = append(stack, i)
		case '}':
			if len(stack) > 0 {
				spans = append(spans, span{open: stack[len(stack)-1], close: i})
				stack = stack[:len(stack)-1]
			}
		}
	}
	return spans
}

func enclosed(objects []span, start, end int) bool {
	for _, o := range objects {
		if o.open < start && o.close >= end-1 {
			return true
		}
	}
	return false
}

// Sanitize reemplaza saltos de linea y tabs literales por espacios.
// Los modelos suelen meter saltos crudos dentro de strings, lo cual no es JSON valido.
func Sanitize(span string) string {
	return strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(span)
}

// Decode sanitiza el objeto y lo parsea en out.
func Decode(span string, out any) error {
	if err := json.Unmarshal([]byte(Sanitize(span)), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// Thinking devuelve la prosa previa al ultimo objeto JSON del texto.
func Thinking(input string) string {
	idx := strings.LastIndexByte(input, '{')
	if idx <= 0 {
		return ""
	}
	return StripFences(input[:idx])
}

// StripFences quita fences ```json ... ``` y BOM, dejando el contenido usable.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = strings.TrimPrefix(s, "\uFEFF")
	s = fenceStartRe.ReplaceAllString(s, "")
	s = fenceEndRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ParseFlat extrae el objeto plano y la prosa previa en un unico valor.
func ParseFlat(input string) (Result, error) {
	obj, err := Flat(input)
	if err != nil {
		return Result{}, err
	}
	return Result{Object: obj, Thinking: Thinking(input)}, nil
}

// ParseBalanced extrae el objeto balanceado y la prosa previa en un unico valor.
func ParseBalanced(input string) (Result, error) {
	obj, err := Balanced(input)
	if err != nil {
		return Result{}, err
	}
	return Result{Object: obj, Thinking: Thinking(input)}, nil
}
