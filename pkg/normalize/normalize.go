// Package normalize formas canónicas de los textos que se guardan en minúsculas
// (emails y distritos).
package normalize

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower minúsculas Unicode independientes del idioma.
// Un Caser no se comparte entre goroutines; se crea uno por llamada.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Email forma en que se guardan y buscan los emails.
func Email(email string) string {
	return Lower(email)
}
