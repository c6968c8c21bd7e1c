// Package skills normalizes skill names and measures similarity between
// candidate and required skill sets.
package skills

import (
	"strings"
	"unicode"
)

// canonicalNames maps common skill name variants to canonical names. Lookups
// are case-insensitive; unresolved names pass through lowercased.
var canonicalNames = map[string]string{
	"golang":              "go",
	"go lang":             "go",
	"js":                  "javascript",
	"ts":                  "typescript",
	"py":                  "python",
	"python3":             "python",
	"k8s":                 "kubernetes",
	"react.js":            "react",
	"reactjs":             "react",
	"vue.js":              "vue",
	"vuejs":               "vue",
	"angularjs":           "angular",
	"node":                "node.js",
	"nodejs":              "node.js",
	"postgres":            "postgresql",
	"psql":                "postgresql",
	"mongo":               "mongodb",
	"elastic":             "elasticsearch",
	"tf":                  "terraform",
	"gcp":                 "google cloud",
	"amazon web services": "aws",
	"ms sql":              "sql server",
	"mssql":               "sql server",
	"c sharp":             "c#",
	"csharp":              "c#",
	"cpp":                 "c++",
	"rabbit mq":           "rabbitmq",
	"sklearn":             "scikit-learn",
	"tensor flow":         "tensorflow",
	"ci/cd":               "cicd",
	"ci cd":               "cicd",
}

// Normalize maps a skill name to its canonical comparison form. The result
// is lowercase with internal whitespace collapsed; names absent from the
// synonym table pass through unchanged apart from case.
func Normalize(name string) string {
	key := strings.Join(strings.Fields(strings.ToLower(name)), " ")
	if key == "" {
		return ""
	}
	if canonical, ok := canonicalNames[key]; ok {
		return canonical
	}
	return key
}

// tokenize splits a canonical skill name into comparison tokens. Letters,
// digits and the symbols of names like "c++" or "c#" stick together;
// everything else separates.
func tokenize(name string) []string {
	return strings.FieldsFunc(Normalize(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
}
